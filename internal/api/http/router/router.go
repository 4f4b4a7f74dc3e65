package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Alijeyrad/complaintdesk/config"
	"github.com/Alijeyrad/complaintdesk/internal/api/http/handler"
	"github.com/Alijeyrad/complaintdesk/internal/service/complaint"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	ComplaintSvc complaint.Service
	DB           *gorm.DB      `optional:"true"`
	Redis        *redis.Client `optional:"true"`
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	complaintH := handler.NewComplaintHandler(r.p.ComplaintSvc)

	api := app.Group("/api/v1")
	r.registerComplaintRoutes(api, complaintH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.ready(c.Context()) },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

// ready pings the backing stores that are configured.
func (r *Router) ready(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if r.p.DB != nil {
		sqlDB, err := r.p.DB.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			return false
		}
	}
	if r.p.Redis != nil {
		if err := r.p.Redis.Ping(ctx).Err(); err != nil {
			return false
		}
	}
	return true
}
