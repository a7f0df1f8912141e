package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Asignaciones-api/pkg/logger"
)

const localsErrorKey = "internal_error"

// RequestLogger registra cada petición: 5xx como Error (con la causa), 4xx como
// Debug y el resto como Info. Los errores de negocio no se registran como fallos.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// deja que el ErrorHandler de fiber fije el status antes de leerlo
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
			if err, ok := c.Locals(localsErrorKey).(error); ok {
				ev = ev.Err(err)
			} else if chainErr != nil {
				ev = ev.Err(chainErr)
			}
		case status >= fiber.StatusBadRequest:
			ev = log.Debug()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return nil
	}
}
