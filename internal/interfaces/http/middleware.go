package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/pkg/metrics"
)

// RequestLogger registra una línea por petición (method, path, status, latencia, store_id)
// y alimenta las métricas HTTP si m no es nil. 5xx se registra como error.
func RequestLogger(log zerolog.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Deja que el ErrorHandler escriba la respuesta para conocer el status final.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		latency := time.Since(start)

		// Ruta registrada (/api/products/:id) y no la URL, para acotar la cardinalidad.
		route := c.Route().Path
		if m != nil {
			m.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(latency.Seconds())
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
			if err, ok := c.Locals(localError).(error); ok {
				ev = ev.Err(err)
			}
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", latency).
			Str("store_id", GetStoreID(c)).
			Msg("request")
		return nil
	}
}
