package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/pkg/logger"
)

// RequestLogger emite un evento por petición con método, ruta, estado y latencia.
// El username solo aparece si la ruta pasó por AuthMiddleware.
func RequestLogger(log *logger.Logger) fiber.Handler {
	l := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error().Err(err)
		}
		if u := GetUsername(c); u != "" {
			ev = ev.Str("username", u)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición")
		return err
	}
}
