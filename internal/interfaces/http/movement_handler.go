package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/pkg/metrics"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos (protegido).
type MovementHandler struct {
	uc      *inventory.MovementUseCase
	metrics *metrics.Metrics
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{uc: uc, metrics: m}
}

// RecordEntry POST /api/movements/entries
func (h *MovementHandler) RecordEntry(c *fiber.Ctx) error {
	return h.record(c, entity.MovementEntry)
}

// RecordExit POST /api/movements/exits
// Responde 409 con requested/available si la salida dejaría el stock en negativo.
func (h *MovementHandler) RecordExit(c *fiber.Ctx) error {
	return h.record(c, entity.MovementExit)
}

func (h *MovementHandler) record(c *fiber.Ctx, kind string) error {
	var in dto.RecordMovementRequest
	if resp := parseAndValidate(c, &in); resp != nil {
		h.metrics.MovementsRejected.WithLabelValues("validation").Inc()
		return resp
	}
	var out *dto.MovementResponse
	var err error
	if kind == entity.MovementEntry {
		out, err = h.uc.RecordEntry(c.Context(), in)
	} else {
		out, err = h.uc.RecordExit(c.Context(), in)
	}
	if err != nil {
		h.metrics.MovementsRejected.WithLabelValues(rejectionReason(err)).Inc()
		return respondError(c, err)
	}
	h.metrics.MovementsAccepted.WithLabelValues(kind).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/movements[?product_id=...]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	var out *dto.MovementListResponse
	var err error
	if productID != "" {
		out, err = h.uc.ListByProduct(productID)
	} else {
		out, err = h.uc.List()
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/movements/:id
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "validation"
	}
}
