package middleware

import (
	"strings"

	"portfolio-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userIDLocal = "user_id"

// TokenValidator decodes a bearer token into a user id (auth.TokenService in
// production, a stub in tests).
type TokenValidator interface {
	Validate(token string) (uint, error)
}

// Protected ensures the request carries a valid bearer token. The decoded
// user id is placed in Locals for downstream handlers.
func Protected(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return response.Unauthorized(c, "Missing authorization header")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return response.Unauthorized(c, "Invalid authorization header format")
		}
		userID, err := tokens.Validate(parts[1])
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}
		c.Locals(userIDLocal, userID)
		return c.Next()
	}
}

// GetUserID returns the authenticated user id from Locals (0 if absent).
func GetUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(userIDLocal).(uint); ok {
		return id
	}
	return 0
}
