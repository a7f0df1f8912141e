package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
)

// writeError traduce el tipo de error de dominio a status HTTP con cuerpo ErrorResponse.
// Validación -> 400, NotFound -> 404, Conflict -> 409, resto -> 500.
func writeError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	var status int
	switch kind {
	case domain.KindValidation:
		status = fiber.StatusBadRequest
	case domain.KindNotFound:
		status = fiber.StatusNotFound
	case domain.KindConflict:
		status = fiber.StatusConflict
	default:
		status = fiber.StatusInternalServerError
		// el middleware de log lo registra con el detalle
		c.Locals(localsErrorKey, err)
		return c.Status(status).JSON(dto.ErrorResponse{Code: kind.String(), Message: "error interno"})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: kind.String(), Message: messageOf(err)})
}

func messageOf(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
