package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP.
// Los errores estructurados (ConflictError, InsufficientStockError) llevan su
// detalle en el cuerpo para que el cliente construya el mensaje sin rederivar nada.
func respondError(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	var conflictErr *domain.ConflictError
	switch {
	case errors.As(err, &stockErr):
		requested := stockErr.Requested
		available := stockErr.Available
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:      "INSUFFICIENT_STOCK",
			Message:   "stock insuficiente para la salida solicitada",
			Requested: &requested,
			Available: &available,
		})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:       "CONFLICT",
			Message:    conflictMessage(conflictErr.Dependency),
			Dependency: conflictErr.Dependency,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func conflictMessage(dependency string) string {
	switch dependency {
	case domain.DependencyProducts:
		return "no se puede eliminar: todavía tiene productos"
	case domain.DependencyMovements:
		return "no se puede eliminar: todavía tiene movimientos"
	default:
		return "conflicto con el estado actual"
	}
}
