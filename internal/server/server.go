package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/gopang/internal/app"
	"github.com/nfrund/gopang/internal/assets"
	"github.com/nfrund/gopang/internal/config"
	"github.com/nfrund/gopang/internal/handlers"
	"github.com/nfrund/gopang/internal/middleware"
	"github.com/nfrund/gopang/internal/pubsub"
	"github.com/nfrund/gopang/internal/rendering"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	injector *do.RootScope
	store    *app.Store
	bus      *pubsub.Bus
	assets   *assets.Assets
}

// New creates a new Server instance. Routes are not registered yet; call
// RegisterRoutes before Start.
func New(cfg config.Provider) (*Server, error) {
	injector := newInjector(cfg)

	// Resolving the handler dependencies builds every service, so a broken
	// asset directory fails here rather than on the first request.
	if _, err := do.Invoke[handlers.Dependencies](injector); err != nil {
		return nil, err
	}
	store := do.MustInvoke[*app.Store](injector)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	if r, ok := do.MustInvoke[rendering.Renderer](injector).(echo.Renderer); ok {
		e.Renderer = r
	}
	setupErrorHandling(e)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			middleware.FromContext(c.Request().Context()).Debug("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	// Configure and use session middleware. The cookie only carries the UI
	// session id.
	cookies := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.GetStateTTL().Seconds()),
		HttpOnly: true,
		Secure:   cfg.GetAppEnv() == config.EnvProduction,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(cookies))

	slog.Info("server configured",
		"env", cfg.GetAppEnv(),
		"assets", cfg.GetAssetsMode(),
		"state_ttl", cfg.GetStateTTL(),
	)

	return &Server{
		E:        e,
		Cfg:      cfg,
		injector: injector,
		store:    store,
		bus:      do.MustInvoke[*pubsub.Bus](injector),
		assets:   do.MustInvoke[*assets.Assets](injector),
	}, nil
}

// Store is a getter for the UI state store, useful for testing.
func (s *Server) Store() *app.Store {
	return s.store
}
