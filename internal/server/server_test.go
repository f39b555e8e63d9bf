package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gopang/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	// --- Setup ---
	e := echo.New()

	// 1. Capture log output
	// We temporarily redirect slog's output to a buffer to inspect it.
	var logBuffer bytes.Buffer
	// Create a new logger that writes to our buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	logger := slog.New(handler)
	// Store the original default logger and defer its restoration
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	// 2. Set up the error handler we want to test
	setupErrorHandling(e)

	// 3. Define a route that will always produce an unhandled error
	e.GET("/test-unhandled-error", func(c echo.Context) error {
		// This is the kind of error that should trigger our stack trace logging.
		return errors.New("a deliberate unhandled error occurred")
	})

	// --- Act ---
	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// --- Assert ---
	// First, check that the HTTP response is correct (a 500 error)
	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	// Now, check the captured log output
	logOutput := logBuffer.String()

	// Assert that the log contains the key pieces of information
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")

	// A good stack trace will contain the path to the Go runtime and this test file.
	// This is a strong indicator that a real stack trace was captured.
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_HTTPErrorIsNotLogged(t *testing.T) {
	e := echo.New()
	var logBuffer bytes.Buffer
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuffer, nil)))
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)
	e.GET("/bad", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, logBuffer.String(), "Internal Server Error (Unhandled)")
}

func testConfig() *config.Config {
	return &config.Config{
		AppAddr:       ":0",
		AppEnv:        config.EnvTest,
		SessionSecret: "server-test-session-secret",
		AssetsMode:    config.AssetsEmbed,
		StateTTL:      time.Hour,
		RateLimit:     100,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(testConfig())
	require.NoError(t, err)
	s.RegisterRoutes()
	t.Cleanup(func() { _ = s.bus.Close() })
	return s
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func TestNew_RejectsUnknownAssetsDirectory(t *testing.T) {
	cfg := testConfig()
	cfg.AssetsMode = config.AssetsDisk
	cfg.AssetsDir = t.TempDir() + "/missing"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestServer_InfrastructureRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/static/gopang.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bg-eco-gradient")

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gopang_ui_sessions")
}

func TestServer_SinglePageFlow(t *testing.T) {
	s := newTestServer(t)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="view-home"`)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	for _, ck := range cookies {
		assert.True(t, ck.HttpOnly)
	}

	req := httptest.NewRequest(http.MethodPost, "/navigate/process", nil)
	req.Header.Set("HX-Request", "true")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = serve(s, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Step 3 of 5")
	assert.Equal(t, 1, s.Store().Len())
}

func TestServer_RegistersEveryPage(t *testing.T) {
	s := newTestServer(t)

	registered := map[string]bool{}
	for _, r := range s.E.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /", "POST /navigate/:id", "POST /collect/draft", "POST /collect/submit",
		"POST /products/learn-more", "GET /collect", "GET /process", "GET /products",
		"GET /about", "POST /menu/toggle", "GET /health", "GET /metrics",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
