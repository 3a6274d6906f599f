package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"faultapi/internal/fixture"
	serviceMocks "faultapi/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mockSvc := new(serviceMocks.MockMessageService)
	app := fiber.New()
	app.Get("/health", HealthCheck(db, mockSvc))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)
		mockSvc.On("Total", mock.Anything).Return(2, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, float64(2), body["messages"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("unhealthy ping", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})

	t.Run("unhealthy count", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)
		mockSvc.On("Total", mock.Anything).Return(0, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSchemaRoute(t *testing.T) {
	eps, err := fixture.Parse("crash,success,teapot")
	require.NoError(t, err)

	app := fiber.New()
	h, err := Schema("127.0.0.1:8888", eps)
	require.NoError(t, err)
	app.Get("/swagger.yaml", h)

	req := httptest.NewRequest(http.MethodGet, "/swagger.yaml", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	b, _ := io.ReadAll(resp.Body)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(b, &doc))

	assert.Equal(t, "2.0", doc["swagger"])
	assert.Equal(t, "127.0.0.1:8888", doc["host"])

	paths := doc["paths"].(map[string]any)
	assert.Len(t, paths, 3)
	assert.Contains(t, paths, "/crash")
	assert.Contains(t, paths, "/teapot")
	assert.NotContains(t, paths, "/failure")
}

func TestRegisterRoutes(t *testing.T) {
	newApp := func(t *testing.T, list string) *fiber.App {
		t.Helper()
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		eps, err := fixture.Parse(list)
		require.NoError(t, err)

		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		mockSvc := new(serviceMocks.MockMessageService)
		require.NoError(t, RegisterRoutes(app, db, mockSvc, "127.0.0.1:8888", eps))
		return app
	}

	t.Run("only enabled endpoints are routed", func(t *testing.T) {
		app := newApp(t, "success")

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/success", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/failure", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("not found route", func(t *testing.T) {
		app := newApp(t, "success")

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		app := newApp(t, "success")

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/success", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})

	t.Run("service routes are always on", func(t *testing.T) {
		app := newApp(t, "success")

		for _, path := range []string{"/swagger.yaml", "/docs", "/healthz"} {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		}
	})
}
