package market

import (
	"portfolio-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the quote HTTP handlers.
type Handlers struct {
	Service *Service
}

// PopularStocks GET /api/popular-stocks
func (h *Handlers) PopularStocks(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Service.Popular(c.Context()))
}

// SearchStock GET /api/search-stock?symbol=
func (h *Handlers) SearchStock(c *fiber.Ctx) error {
	symbol := c.Query("symbol")
	if symbol == "" {
		return response.Err(c, fiber.StatusBadRequest, "Symbol parameter is required")
	}
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return response.Err(c, fiber.StatusBadRequest, "Symbol cannot be empty")
	}

	q, err := h.Service.Search(c.Context(), symbol)
	if err != nil {
		return response.Err(c, fiber.StatusNotFound, "Stock not found")
	}
	return c.Status(fiber.StatusOK).JSON(q)
}

// StockHistory GET /api/stock-history?symbol=
func (h *Handlers) StockHistory(c *fiber.Ctx) error {
	symbol := c.Query("symbol")
	if symbol == "" {
		return response.Err(c, fiber.StatusBadRequest, "Symbol parameter is required")
	}
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return response.Err(c, fiber.StatusBadRequest, "Symbol cannot be empty")
	}

	bars, err := h.Service.HistoryBars(c.Context(), symbol)
	if err != nil {
		return response.Err(c, fiber.StatusNotFound, "No historical data found")
	}
	return c.Status(fiber.StatusOK).JSON(bars)
}
