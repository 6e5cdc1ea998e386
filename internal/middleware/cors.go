package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CORS allows the configured frontend origin; with no configured origin every
// origin is allowed, matching the permissive setup the frontend expects.
func CORS(allowedOrigin string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}
		if allowedOrigin == "" || origin == allowedOrigin {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		}
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
