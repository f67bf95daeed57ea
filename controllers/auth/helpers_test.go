package authController_test

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
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
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

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}
