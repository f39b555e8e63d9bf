package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Props carries the per-response head values.
type Props struct {
	// Title is the page name; empty uses SiteTitle.
	Title string
	// AssetVersion is appended to static asset URLs so browsers refetch them
	// after a change.
	AssetVersion string
}

// Base wraps body in the full HTML document shared by both shells. The
// document is a templ component so it renders with the request context;
// the views inside it stay gomponents nodes.
func Base(props Props, body ...g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return document(props, body).Render(w)
	})
}

func document(props Props, body []g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(props.Title),
		Description: SiteDescription,
		Language:    "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Script(h.Src("https://cdn.tailwindcss.com")),
			h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
			h.Link(h.Rel("stylesheet"), h.Href(staticURL("/static/gopang.css", props.AssetVersion))),
		},
		Body: []g.Node{
			h.Class("font-sans antialiased"),
			h.Main(h.Class("min-h-screen"), g.Group(body)),
		},
	})
}

func staticURL(path, version string) string {
	if version == "" {
		return path
	}
	return path + "?v=" + version
}
