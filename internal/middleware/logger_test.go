package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/gopang/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.FromContext(context.Background()))
}

func TestLogger_AddsRequestAttributes(t *testing.T) {
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(original)

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.POST("/navigate/:id", func(c echo.Context) error {
		middleware.FromContext(c.Request().Context()).Info("handled")
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/navigate/about", nil))

	out := buf.String()
	assert.Contains(t, out, "request_id="+rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "route=/navigate/:id")
}
