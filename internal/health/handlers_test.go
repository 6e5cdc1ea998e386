package health

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (s *stubPinger) Ping() error { return s.err }

func checkHealth(t *testing.T, h *Handlers) map[string]interface{} {
	t.Helper()
	app := fiber.New()
	app.Get("/api/health", h.Check)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestHealth_NoDB(t *testing.T) {
	body := checkHealth(t, &Handlers{})
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotContains(t, body, "database")
}

func TestHealth_DBConnected(t *testing.T) {
	body := checkHealth(t, &Handlers{DB: &stubPinger{}})
	assert.Equal(t, "connected", body["database"])
}

func TestHealth_DBError(t *testing.T) {
	body := checkHealth(t, &Handlers{DB: &stubPinger{err: errors.New("down")}})
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "error", body["database"])
}
