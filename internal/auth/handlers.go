package auth

import (
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers bundles the auth HTTP handlers.
type Handlers struct {
	Service *Service
	Tokens  *TokenService
}

type credentialsRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// requiredFieldError reports the first missing field, before any value check.
func (r *credentialsRequest) requiredFieldError() string {
	if r.Username == nil || *r.Username == "" {
		return "username is required"
	}
	if r.Password == nil || *r.Password == "" {
		return "password is required"
	}
	return ""
}

// Register POST /api/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Msg(c, fiber.StatusBadRequest, "Request body must be JSON")
	}
	if msg := req.requiredFieldError(); msg != "" {
		return response.Msg(c, fiber.StatusBadRequest, msg)
	}

	_, err := h.Service.Register(c.Context(), *req.Username, *req.Password)
	switch err {
	case nil:
		return response.Msg(c, fiber.StatusCreated, "Registration successful")
	case ErrUsernamePasswordRequired, ErrUsernameTaken:
		return response.Msg(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("registration failed")
		return response.Msg(c, fiber.StatusInternalServerError, "Registration failed")
	}
}

// Login POST /api/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Msg(c, fiber.StatusBadRequest, "Request body must be JSON")
	}
	if msg := req.requiredFieldError(); msg != "" {
		return response.Msg(c, fiber.StatusBadRequest, msg)
	}

	user, err := h.Service.Login(c.Context(), *req.Username, *req.Password)
	switch err {
	case nil:
	case ErrUsernamePasswordRequired, ErrInvalidCredentials:
		return response.Msg(c, fiber.StatusUnauthorized, "Invalid username or password")
	default:
		log.Error().Err(err).Msg("login failed")
		return response.Msg(c, fiber.StatusInternalServerError, "Login failed")
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("token issue failed")
		return response.Msg(c, fiber.StatusInternalServerError, "Login failed")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"access_token": token})
}

// DebugToken GET /api/debug-token — echoes the authenticated user id.
func (h *Handlers) DebugToken(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user_id":     userID,
		"token_valid": true,
	})
}
