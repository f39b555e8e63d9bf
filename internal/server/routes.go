package server

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gopang/internal/app"
	"github.com/nfrund/gopang/internal/handlers"
	"github.com/nfrund/gopang/internal/metrics"
	"github.com/nfrund/gopang/internal/middleware"
	"github.com/nfrund/gopang/internal/navigation"
	"github.com/samber/do/v2"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	deps := do.MustInvoke[handlers.Dependencies](s.injector)
	m := do.MustInvoke[*metrics.Metrics](s.injector)

	shellHandler := handlers.NewShellHandler(deps)
	collectHandler := handlers.NewCollectHandler(deps)
	productsHandler := handlers.NewProductsHandler(deps)
	siteHandler := handlers.NewSiteHandler(deps)

	limit := s.Cfg.GetRateLimit()
	rateLimiter := middleware.RateLimiter(limit, int(math.Ceil(limit))*2)

	s.E.StaticFS("/static", s.assets.FS())

	// Everything below reads or writes UI state.
	ui := s.E.Group("", middleware.UIState(do.MustInvoke[*app.Store](s.injector)))

	// Single-page shell.
	ui.GET("/", shellHandler.ShellGet)
	ui.POST("/navigate/:id", shellHandler.NavigatePost, rateLimiter)
	ui.POST("/collect/draft", collectHandler.DraftPost, rateLimiter)
	ui.POST("/collect/submit", collectHandler.SubmitPost, rateLimiter)
	ui.POST("/products/learn-more", productsHandler.LearnMorePost, rateLimiter)

	// Router-based shell.
	for _, v := range navigation.AllViews() {
		if v == navigation.Home {
			continue
		}
		ui.GET(navigation.Path(v), siteHandler.PageGet(v))
	}
	ui.POST("/menu/toggle", siteHandler.MenuTogglePost, rateLimiter)

	s.E.GET("/metrics", echo.WrapHandler(m.Handler()))
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
