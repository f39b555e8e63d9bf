package server

import (
	"errors"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gopang/internal/middleware"
)

// setupErrorHandling installs the central error handler. echo.HTTPError
// values are expected and answered as they are; anything else is logged
// with a stack trace before the default 500 response.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Path(),
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
