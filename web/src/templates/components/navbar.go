package components

import (
	"github.com/nfrund/gopang/internal/icons"
	"github.com/nfrund/gopang/internal/navigation"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// NavbarID is the element id swapped when the mobile menu toggles.
const NavbarID = "site-nav"

// Navbar is the top bar of the router-based shell. The mobile link block is
// only rendered while open is true.
func Navbar(open bool) g.Node {
	toggleGlyph := "menu"
	if open {
		toggleGlyph = "x"
	}

	return Nav(
		ID(NavbarID),
		Class("fixed top-0 left-0 right-0 z-50 bg-white shadow-md"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex justify-between items-center h-16"),
				A(
					Href("/"),
					Class("flex items-center space-x-2"),
					Div(Class("bg-green-500 p-2 rounded-full"), icons.Icon("leaf", 24, "text-white")),
					Span(Class("text-xl font-bold text-green-700"), g.Text("Gopang")),
				),
				Div(
					Class("hidden md:flex space-x-8"),
					navLinks("text-gray-700 hover:text-green-600 font-medium transition-colors"),
				),
				Button(
					Type("button"),
					ID("menu-toggle"),
					Class("md:hidden p-2 rounded-lg hover:bg-gray-100"),
					hx.Post("/menu/toggle"),
					hx.Target("#"+NavbarID),
					hx.Swap("outerHTML"),
					icons.Icon(toggleGlyph, 24, "text-gray-700"),
				),
			),
		),
		g.If(open,
			Div(
				ID("mobile-menu"),
				Class("md:hidden bg-white border-t border-gray-200"),
				Div(
					Class("px-4 py-4 space-y-3"),
					navLinks("block px-4 py-2 text-gray-700 hover:bg-green-50 hover:text-green-600 rounded-lg font-medium transition-colors"),
				),
			),
		),
	)
}

func navLinks(class string) g.Node {
	return g.Map(navigation.Links(), func(l navigation.Link) g.Node {
		return A(Href(l.Href), Class(class), g.Text(l.Label))
	})
}
