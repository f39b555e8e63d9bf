// Package components holds the shared building blocks of the screens.
package components

import (
	"github.com/nfrund/gopang/internal/navigation"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// AppTarget is the element id the single-page shell swaps on navigation.
const AppTarget = "app"

// Navigate returns the attributes a control needs to switch the visible
// view. Views receive it from their parent instead of building the request
// themselves.
type Navigate func(id navigation.ViewID) g.Node

// PostNavigate asks the server to store id and swaps the whole shell with
// the response.
func PostNavigate(id navigation.ViewID) g.Node {
	return g.Group{
		hx.Post("/navigate/" + string(id)),
		hx.Target("#" + AppTarget),
		hx.Swap("outerHTML"),
	}
}

// Inert wires a button to an endpoint that answers without content, so the
// page does not change.
func Inert(endpoint string) g.Node {
	return g.Group{
		Type("button"),
		hx.Post(endpoint),
		hx.Swap("none"),
	}
}
