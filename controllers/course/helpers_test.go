package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"courseapi/config"
	"courseapi/database"
	authRoutes "courseapi/routers/authRoutes"
	courseRoutes "courseapi/routers/courseRoutes"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	cfg := &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		DBDriver:  "sqlite",
		DBName:    fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, db, cfg)
	courseRoutes.SetupCourseRoutes(app, db, cfg)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeObject(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed
}

// registerAndLogin creates a user through the API and returns a session token
func registerAndLogin(t *testing.T, app *fiber.App, username, password, role string) string {
	t.Helper()

	payload := fiber.Map{"username": username, "password": password}
	if role != "" {
		payload["role"] = role
	}
	status, _ := doRequest(t, app, "POST", "/api/register", "", payload)
	require.Equal(t, fiber.StatusOK, status)

	status, raw := doRequest(t, app, "POST", "/api/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	require.Equal(t, fiber.StatusOK, status)

	token, ok := decodeObject(t, raw)["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}
