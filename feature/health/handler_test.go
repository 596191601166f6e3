package health

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"todo-sync/core/records/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Store, *Handler) {
	t.Helper()
	store := new(mocks.Store)
	feature := NewFeature(store, zap.NewNop(), "test")
	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, store, feature.handler
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleHealth(t *testing.T) {
	app, _, h := setupTestApp(t)
	h.now = func() time.Time { return h.started.Add(90 * time.Second) }

	status, body := get(t, app, "/healthz")

	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 90, body["uptime_seconds"])
	assert.Equal(t, "test", body["stage"])
}

func TestHandleReady(t *testing.T) {
	t.Run("Ready", func(t *testing.T) {
		app, store, _ := setupTestApp(t)
		store.On("Ping", mock.Anything).Return(nil)

		status, body := get(t, app, "/readyz")

		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["ready"])
	})

	t.Run("NotReady", func(t *testing.T) {
		app, store, _ := setupTestApp(t)
		store.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		status, body := get(t, app, "/readyz")

		assert.Equal(t, 503, status)
		assert.Equal(t, false, body["ready"])
		assert.Equal(t, "connection refused", body["error"])
	})
}

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Store), zap.NewNop(), "dev")

	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())
}
