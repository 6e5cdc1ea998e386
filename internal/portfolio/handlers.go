package portfolio

import (
	"strconv"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers bundles the portfolio HTTP handlers.
type Handlers struct {
	Service *Service
}

// List GET /api/portfolio
func (h *Handlers) List(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	holdings, err := h.Service.ListEnriched(c.Context(), userID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("portfolio load failed")
		return response.Err(c, fiber.StatusInternalServerError, "Failed to get portfolio")
	}
	return c.Status(fiber.StatusOK).JSON(holdings)
}

type addRequest struct {
	Symbol   *string  `json:"symbol"`
	Shares   *int     `json:"shares"`
	AvgPrice *float64 `json:"avgPrice"`
}

// requiredFieldError reports the first missing field; presence is checked
// before any value-range rule.
func (r *addRequest) requiredFieldError() string {
	if r.Symbol == nil {
		return "symbol is required"
	}
	if r.Shares == nil {
		return "shares is required"
	}
	if r.AvgPrice == nil {
		return "avgPrice is required"
	}
	return ""
}

// Add POST /api/portfolio
func (h *Handlers) Add(c *fiber.Ctx) error {
	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Msg(c, fiber.StatusBadRequest, "Request body must be JSON")
	}
	if msg := req.requiredFieldError(); msg != "" {
		return response.Msg(c, fiber.StatusBadRequest, msg)
	}

	userID := middleware.GetUserID(c)
	_, err := h.Service.Add(c.Context(), userID, *req.Symbol, *req.Shares, *req.AvgPrice)
	switch err {
	case nil:
		return response.Msg(c, fiber.StatusCreated, "Stock added successfully")
	case ErrSymbolEmpty, ErrSharesNotPositive, ErrPriceNotPositive:
		return response.Msg(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Uint("user_id", userID).Msg("add holding failed")
		return response.Msg(c, fiber.StatusInternalServerError, "Failed to add stock")
	}
}

// Delete DELETE /api/portfolio/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.Msg(c, fiber.StatusBadRequest, "Invalid holding id")
	}

	userID := middleware.GetUserID(c)
	switch err := h.Service.Delete(c.Context(), userID, uint(id)); err {
	case nil:
		return response.Msg(c, fiber.StatusOK, "Stock deleted successfully")
	case ErrNotFound:
		return response.Msg(c, fiber.StatusNotFound, err.Error())
	case ErrNotOwner:
		return response.Msg(c, fiber.StatusForbidden, err.Error())
	default:
		log.Error().Err(err).Uint("user_id", userID).Msg("delete holding failed")
		return response.Msg(c, fiber.StatusInternalServerError, "Failed to delete stock")
	}
}
