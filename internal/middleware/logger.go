package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"star-home/internal/pkg/logger"
)

// RequestLogger writes one line per request. Errors from the chain are
// rendered first so the logged status is the one the client receives.
func RequestLogger() fiber.Handler {
	log := logger.LogWithContext("http", "request")

	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		if c.Path() == "/health" {
			return nil
		}

		log.WithFields(logrus.Fields{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
		}).Info("HTTP request")

		return nil
	}
}
