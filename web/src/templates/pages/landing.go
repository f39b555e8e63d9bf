// Package pages holds the five screens. Each is a pure function of the state
// it is handed.
package pages

import (
	"github.com/nfrund/gopang/internal/icons"
	"github.com/nfrund/gopang/internal/navigation"
	"github.com/nfrund/gopang/web/src/templates/components"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type howStep struct {
	glyph string
	text  string
}

var howItWorks = []howStep{
	{"recycle", "Collect Food Waste"},
	{"weight", "Record & Weigh"},
	{"package", "BSF Processing"},
	{"shopping-bag", "Create Products"},
	{"truck", "Distribution & Sales"},
}

// LandingPage is the home screen. Its call to action moves to the Collect
// view through onNavigate.
func LandingPage(onNavigate components.Navigate) g.Node {
	return Div(
		ID("view-home"),
		Class("min-h-screen bg-gradient-to-b from-green-50 via-white to-green-50 pb-20"),
		Div(
			Class("bg-gradient-to-r from-green-600 to-green-700 text-white px-6 pt-8 pb-12 rounded-b-3xl shadow-lg"),
			Div(
				Class("flex items-center justify-center mb-4"),
				icons.Icon("leaf", 32, "mr-2"),
				H1(Class("text-2xl font-bold"), g.Text("Gopang")),
			),
			P(Class("text-sm text-center text-green-100"), g.Text("Gotong Pangan")),
		),
		Div(
			Class("px-6 -mt-8"),
			Div(
				Class("bg-white rounded-2xl shadow-xl p-6 mb-6"),
				H2(
					Class("hero text-xl font-bold text-gray-800 mb-3 text-center"),
					g.Text(`"From Our Waste,`), Br(), g.Text(`For Our Future."`),
				),
				P(
					Class("text-sm text-gray-600 text-center leading-relaxed"),
					g.Text("Transform your food waste into valuable resources through sustainable Black Soldier Fly processing. Join us in building a circular economy for a greener tomorrow."),
				),
			),
			Div(
				Class("bg-gradient-to-br from-green-50 to-brown-50 rounded-2xl p-6 mb-6"),
				H3(Class("text-lg font-semibold text-gray-800 mb-4 text-center"), g.Text("How It Works")),
				Div(
					Class("space-y-3"),
					g.Map(howItWorks, func(s howStep) g.Node {
						return Div(
							Class("flex items-center bg-white rounded-xl p-3 shadow-sm"),
							Div(Class("bg-green-100 rounded-full p-2 mr-3"), icons.Icon(s.glyph, 20, "text-green-600")),
							Span(Class("text-sm font-medium text-gray-700"), g.Text(s.text)),
						)
					}),
				),
			),
			Button(
				Type("button"),
				ID("get-started"),
				Class("w-full bg-gradient-to-r from-green-600 to-green-700 text-white py-4 rounded-xl font-semibold shadow-lg hover:shadow-xl transition-all flex items-center justify-center"),
				onNavigate(navigation.Collect),
				g.Text("Get Started"),
				icons.Icon("arrow-right", 20, "ml-2"),
			),
		),
	)
}
