package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/complaintdesk/config"
	"github.com/Alijeyrad/complaintdesk/internal/repo"
	"github.com/Alijeyrad/complaintdesk/internal/service/complaint"
	"github.com/Alijeyrad/complaintdesk/internal/service/notification"
	"github.com/Alijeyrad/complaintdesk/pkg/constants"
	"github.com/Alijeyrad/complaintdesk/pkg/email"
	"github.com/Alijeyrad/complaintdesk/pkg/observability"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideSink,
		ProvideDispatcher,
		ProvideComplaintService,
	),
)

// ProvideSink picks the delivery path for complaint events.
func ProvideSink(cfg *config.Config, mailer *email.Client, nc *nats.Conn) (notification.Sink, error) {
	switch cfg.NotificationTransport() {
	case config.TransportNats:
		if nc == nil {
			return nil, fmt.Errorf("notification transport %q needs nats.url", config.TransportNats)
		}
		return notification.NewNatsSink(nc, cfg.Nats.SubjectPrefix), nil
	case config.TransportLog:
		return notification.LogSink{}, nil
	default:
		if !mailer.IsEnabled() {
			slog.Warn("email disabled; complaint notifications will only be logged")
			return notification.LogSink{}, nil
		}
		return notification.NewEmailSink(mailer, appName(cfg)), nil
	}
}

func ProvideDispatcher(lc fx.Lifecycle, cfg *config.Config, sink notification.Sink, metrics *observability.ComplaintMetrics) *notification.Dispatcher {
	d := notification.NewDispatcher(sink, notificationTimeout(cfg), metrics)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining pending notifications")
			return d.Drain(ctx)
		},
	})
	return d
}

func ProvideComplaintService(store repo.Store, d *notification.Dispatcher, metrics *observability.ComplaintMetrics) complaint.Service {
	return complaint.New(store, d, metrics)
}

func notificationTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Notification.TimeoutSeconds) * time.Second
}

func appName(cfg *config.Config) string {
	if cfg.Observability.ServiceName != "" {
		return cfg.Observability.ServiceName
	}
	return constants.AppName
}
