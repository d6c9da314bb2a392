package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CacheControl sets HTTP cache headers on slow-changing GET responses,
// such as the geographic reference lists.
func CacheControl(maxAgeSeconds int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == fiber.MethodGet && c.Response().StatusCode() == fiber.StatusOK {
			c.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAgeSeconds))
		}

		return err
	}
}

// NoCache disables caching on sensitive responses
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		return c.Next()
	}
}
