// Package middleware holds the Fiber middleware shared by the API server
package middleware

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"

	log "github.com/celestiaorg/courses/internal/logger"
)

// Logger returns a middleware that logs HTTP requests
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		stop := time.Now()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		fields := log.Fields{
			"timestamp":  stop.Format("2006/01/02 - 15:04:05"),
			"status":     status,
			"latency":    stop.Sub(start).String(),
			"ip":         c.IP(),
			"method":     c.Method(),
			"path":       c.Path(),
			"handler":    c.Route().Name,
			"request_id": RequestIDFromCtx(c),
		}
		if status >= fiber.StatusInternalServerError {
			log.ErrorWithFields("Request", fields)
		} else {
			log.InfoWithFields("Request", fields)
		}

		return err
	}
}
