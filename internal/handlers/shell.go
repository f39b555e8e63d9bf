package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gopang/internal/app"
	"github.com/nfrund/gopang/internal/metrics"
	"github.com/nfrund/gopang/internal/middleware"
	"github.com/nfrund/gopang/internal/navigation"
)

// ShellHandler serves the single-page shell and its navigation events.
type ShellHandler struct {
	deps Dependencies
}

// NewShellHandler creates a new ShellHandler.
func NewShellHandler(deps Dependencies) *ShellHandler {
	return &ShellHandler{deps: deps}
}

// ShellGet renders the whole document. A full load mounts the shell from
// scratch, so the session starts over on the home view.
func (h *ShellHandler) ShellGet(c echo.Context) error {
	sess, err := middleware.UISession(c)
	if err != nil {
		return err
	}

	var snap app.Snapshot
	sess.Do(func(s *app.State) {
		s.Reset()
		snap = s.Snapshot()
	})
	return h.renderDocument(c, snap)
}

// NavigatePost stores the :id parameter as the current page. Any value is
// accepted; unknown ids render the home view. htmx callers get the #app
// fragment, everyone else the whole document.
func (h *ShellHandler) NavigatePost(c echo.Context) error {
	sess, err := middleware.UISession(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	var snap app.Snapshot
	sess.Do(func(s *app.State) {
		s.Navigate(id)
		snap = s.Snapshot()
	})

	middleware.FromContext(c.Request().Context()).Debug("navigate", "id", id, "view", navigation.Resolve(snap.CurrentPage))

	if !isHTMX(c) {
		return h.renderDocument(c, snap)
	}
	h.countRender(snap)
	return h.deps.Renderer.RenderPage(c, http.StatusOK, app.Render(snap))
}

func (h *ShellHandler) renderDocument(c echo.Context, snap app.Snapshot) error {
	h.countRender(snap)
	return h.deps.Renderer.RenderPage(c, http.StatusOK, h.deps.document("", app.Render(snap)))
}

func (h *ShellHandler) countRender(snap app.Snapshot) {
	view := navigation.Resolve(snap.CurrentPage)
	h.deps.Metrics.ViewRenders.WithLabelValues(string(view), metrics.ShellSPA).Inc()
}
