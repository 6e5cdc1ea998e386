package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// DBPinger is optional for the health check. If nil, the database dependency
// is omitted from the response.
type DBPinger interface {
	Ping() error
}

// Handlers serves the health endpoint.
type Handlers struct {
	DB DBPinger
}

// Check GET /api/health
func (h *Handlers) Check(c *fiber.Ctx) error {
	body := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if h.DB != nil {
		dbStatus := "connected"
		if err := h.DB.Ping(); err != nil {
			dbStatus = "error"
		}
		body["database"] = dbStatus
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
