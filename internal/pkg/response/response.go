package response

import (
	"github.com/gofiber/fiber/v2"
)

// The API uses two small JSON envelopes: auth and portfolio routes answer
// with a "msg" field, the stock/quote routes with an "error" field. Both
// carry a single short machine-readable message.

// MsgBody is the {"msg": ...} shape.
type MsgBody struct {
	Msg string `json:"msg"`
}

// ErrBody is the {"error": ...} shape used by the quote endpoints.
type ErrBody struct {
	Error string `json:"error"`
}

// Msg sends a message envelope with the given status code.
func Msg(c *fiber.Ctx, statusCode int, msg string) error {
	return c.Status(statusCode).JSON(MsgBody{Msg: msg})
}

// Err sends an error envelope with the given status code.
func Err(c *fiber.Ctx, statusCode int, msg string) error {
	return c.Status(statusCode).JSON(ErrBody{Error: msg})
}

// Unauthorized sends 401 with the message envelope. Used by the auth
// middleware so all auth failures look the same.
func Unauthorized(c *fiber.Ctx, msg string) error {
	return Msg(c, fiber.StatusUnauthorized, msg)
}
