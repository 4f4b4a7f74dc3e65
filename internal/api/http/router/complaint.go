package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/complaintdesk/internal/api/http/handler"
)

func (r *Router) registerComplaintRoutes(api fiber.Router, ch *handler.ComplaintHandler) {
	complaints := api.Group("/complaints")

	complaints.Get("/", ch.List)
	complaints.Post("/", ch.Create)
	complaints.Get("/stats", ch.Stats)

	c := complaints.Group("/:id")
	c.Get("/", ch.Get)
	c.Put("/", ch.Update)
	c.Patch("/", ch.Update)
	c.Delete("/", ch.Delete)
}
