package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/pkg/validator"
)

// parseAndValidate parsea el body JSON y aplica los tags `validate` del DTO.
// Devuelve una respuesta 400 ya escrita cuando algo falla, o nil si todo pasa.
func parseAndValidate(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fails := validator.ValidateStruct(out); fails != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fmt.Sprintf("campo %s incumple la regla %s", fails[0].FailedField, fails[0].Tag),
		})
	}
	return nil
}
