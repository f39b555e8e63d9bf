package pages

import (
	"github.com/nfrund/gopang/internal/icons"
	"github.com/nfrund/gopang/web/src/templates/components"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AboutPage describes the initiative.
func AboutPage() g.Node {
	return Div(
		ID("view-about"),
		Class("min-h-screen bg-gradient-to-b from-white to-green-50 pb-20"),
		Div(
			Class("px-6 pt-8"),
			H1(Class("text-2xl font-bold text-gray-800 mb-6"), g.Text("About Gopang")),
			Div(
				Class("bg-white rounded-2xl shadow-lg p-6 mb-6"),
				Div(
					Class("flex items-center mb-4"),
					Div(Class("bg-green-100 rounded-full p-3 mr-3"), icons.Icon("users", 24, "text-green-600")),
					H2(Class("text-lg font-semibold text-gray-800"), g.Text("What is Gotong Pangan?")),
				),
				P(
					Class("text-sm text-gray-700 leading-relaxed"),
					g.Text("Gopang (Gotong Pangan) is a community-driven initiative that transforms food waste into valuable resources through Black Soldier Fly (BSF) bioconversion. We believe in the power of collective action to create sustainable solutions for waste management."),
				),
			),
			Div(
				Class("bg-gradient-to-br from-green-50 to-brown-50 rounded-2xl p-6 mb-6"),
				H3(Class("text-lg font-semibold text-gray-800 mb-3"), g.Text("Circular Economy")),
				P(
					Class("text-sm text-gray-700 leading-relaxed mb-4"),
					g.Text("We promote a circular economy where waste becomes a resource. By converting organic waste into high-value products like fertilizer and animal feed, we close the loop and reduce environmental impact."),
				),
				Div(Class("flex items-center justify-center"), icons.Icon("recycle", 48, "text-green-600")),
			),
			Div(
				Class("bg-white rounded-2xl shadow-lg p-6 mb-6"),
				H3(Class("text-lg font-semibold text-gray-800 mb-3"), g.Text("Community Collaboration")),
				P(
					Class("text-sm text-gray-700 leading-relaxed"),
					g.Text("Together, we're building a network of conscious citizens who understand that every piece of food waste is an opportunity. Through education, participation, and shared benefits, we create lasting change."),
				),
			),
			components.SiteFooter(),
		),
	)
}
