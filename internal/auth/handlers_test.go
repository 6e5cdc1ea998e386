package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthApp(t *testing.T) (*fiber.App, *Handlers) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	h := &Handlers{
		Service: &Service{DB: db},
		Tokens:  &TokenService{Secret: []byte("test-secret"), TTL: time.Hour},
	}
	app := fiber.New()
	app.Post("/api/register", h.Register)
	app.Post("/api/login", h.Login)
	return app, h
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, string) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestRegisterEndpoint_Success(t *testing.T) {
	app, _ := setupAuthApp(t)

	code, body := postJSON(t, app, "/api/register", map[string]string{
		"username": "alice",
		"password": "pw123456",
	})
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Contains(t, body, "Registration successful")
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	app, _ := setupAuthApp(t)

	code, body := postJSON(t, app, "/api/register", map[string]string{"password": "pw"})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "username is required")

	code, body = postJSON(t, app, "/api/register", map[string]string{"username": "alice"})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "password is required")
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	app, _ := setupAuthApp(t)

	creds := map[string]string{"username": "alice", "password": "pw123456"}
	code, _ := postJSON(t, app, "/api/register", creds)
	require.Equal(t, fiber.StatusCreated, code)

	code, body := postJSON(t, app, "/api/register", creds)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "Username already exists")
}

func TestLoginEndpoint_ReturnsAccessToken(t *testing.T) {
	app, h := setupAuthApp(t)

	code, _ := postJSON(t, app, "/api/register", map[string]string{
		"username": "alice",
		"password": "pw123456",
	})
	require.Equal(t, fiber.StatusCreated, code)

	code, body := postJSON(t, app, "/api/login", map[string]string{
		"username": "alice",
		"password": "pw123456",
	})
	require.Equal(t, fiber.StatusOK, code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.NotEmpty(t, payload["access_token"])

	userID, err := h.Tokens.Validate(payload["access_token"])
	require.NoError(t, err)
	assert.NotZero(t, userID)
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	app, _ := setupAuthApp(t)

	code, _ := postJSON(t, app, "/api/register", map[string]string{
		"username": "alice",
		"password": "pw123456",
	})
	require.Equal(t, fiber.StatusCreated, code)

	code, body := postJSON(t, app, "/api/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Contains(t, body, "Invalid username or password")
}
