// Package handlers is the HTTP surface of both shells.
package handlers

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/gopang/internal/activity"
	"github.com/nfrund/gopang/internal/metrics"
	"github.com/nfrund/gopang/internal/rendering"
	"github.com/nfrund/gopang/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// AssetVersioner reports the current version of the static assets.
type AssetVersioner interface {
	Version() string
}

// Dependencies holds the services shared by the UI handlers.
type Dependencies struct {
	Renderer rendering.Renderer
	Metrics  *metrics.Metrics
	Events   *activity.Emitter
	Assets   AssetVersioner
}

// isHTMX reports whether the request was issued by htmx and therefore
// expects a fragment.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func (d Dependencies) document(title string, body ...g.Node) templ.Component {
	var version string
	if d.Assets != nil {
		version = d.Assets.Version()
	}
	return layouts.Base(layouts.Props{Title: title, AssetVersion: version}, body...)
}
