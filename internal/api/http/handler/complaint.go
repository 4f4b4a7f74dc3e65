package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/complaintdesk/internal/service/complaint"
	"github.com/Alijeyrad/complaintdesk/pkg/reqctx"
)

type ComplaintHandler struct {
	svc complaint.Service
}

func NewComplaintHandler(svc complaint.Service) *ComplaintHandler {
	return &ComplaintHandler{svc: svc}
}

func mapComplaintError(c fiber.Ctx, err error) error {
	var ve *complaint.ValidationError
	switch {
	case errors.As(err, &ve):
		return invalid(c, "validation failed", ve.Fields)
	case errors.Is(err, complaint.ErrNotFound):
		return notFound(c, err.Error())
	default:
		slog.ErrorContext(c.Context(), "complaint request failed",
			append(reqctx.LogAttrs(c.Context()), "method", c.Method(), "path", c.Path(), "err", err)...)
		return internalError(c)
	}
}

// GET /complaints
func (h *ComplaintHandler) List(c fiber.Ctx) error {
	var q struct {
		Status   string `query:"status"`
		Priority string `query:"priority"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query")
	}

	list, err := h.svc.List(c.Context(), complaint.ListRequest{Status: q.Status, Priority: q.Priority})
	if err != nil {
		return mapComplaintError(c, err)
	}
	return ok(c, list)
}

// GET /complaints/stats
func (h *ComplaintHandler) Stats(c fiber.Ctx) error {
	sum, err := h.svc.Summarize(c.Context())
	if err != nil {
		return mapComplaintError(c, err)
	}
	return ok(c, sum)
}

// POST /complaints
func (h *ComplaintHandler) Create(c fiber.Ctx) error {
	var body complaint.CreateRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cm, err := h.svc.Create(c.Context(), body)
	if err != nil {
		return mapComplaintError(c, err)
	}
	return created(c, cm)
}

// GET /complaints/:id
func (h *ComplaintHandler) Get(c fiber.Ctx) error {
	cm, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapComplaintError(c, err)
	}
	return ok(c, cm)
}

// PUT|PATCH /complaints/:id
func (h *ComplaintHandler) Update(c fiber.Ctx) error {
	var body complaint.UpdateRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cm, err := h.svc.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return mapComplaintError(c, err)
	}
	return ok(c, cm)
}

// DELETE /complaints/:id
func (h *ComplaintHandler) Delete(c fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapComplaintError(c, err)
	}
	return ok(c, fiber.Map{})
}
