package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gopang/internal/app"
	"github.com/nfrund/gopang/internal/metrics"
	"github.com/nfrund/gopang/internal/middleware"
	"github.com/nfrund/gopang/internal/navigation"
	"github.com/nfrund/gopang/web/src/templates/components"
)

// SiteHandler serves the router-based shell: one route per page and the
// navbar's mobile menu.
type SiteHandler struct {
	deps Dependencies
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(deps Dependencies) *SiteHandler {
	return &SiteHandler{deps: deps}
}

// PageGet returns the handler for the routed page v. Arriving on a page
// means a navbar link was followed, which closes the menu.
func (h *SiteHandler) PageGet(v navigation.ViewID) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := middleware.UISession(c)
		if err != nil {
			return err
		}

		var snap app.Snapshot
		sess.Do(func(s *app.State) {
			s.OpenRoute(v)
			snap = s.Snapshot()
		})

		h.deps.Metrics.ViewRenders.WithLabelValues(string(v), metrics.ShellSite).Inc()
		return h.deps.Renderer.RenderPage(c, http.StatusOK, h.deps.document(v.Label(), app.RenderSite(v, snap)))
	}
}

// MenuTogglePost flips the mobile menu and returns the re-rendered navbar.
func (h *SiteHandler) MenuTogglePost(c echo.Context) error {
	sess, err := middleware.UISession(c)
	if err != nil {
		return err
	}

	var open bool
	sess.Do(func(s *app.State) { open = s.ToggleMenu() })
	h.deps.Events.MenuToggled(sess.ID, open)

	return h.deps.Renderer.RenderPage(c, http.StatusOK, components.Navbar(open))
}
