package components

import (
	"strconv"

	"github.com/nfrund/gopang/internal/icons"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// ProcessCardProps configures a ProcessCard.
type ProcessCardProps struct {
	Glyph       icons.Glyph
	Title       string
	Description string
	// Step is the 1-based ordinal shown in the corner badge; 0 hides it.
	Step   int
	Active bool
}

// ProcessCard shows one pipeline stage, emphasised when active.
func ProcessCard(p ProcessCardProps) g.Node {
	return Div(
		c.Classes{
			"process-card relative flex flex-col items-center text-center p-6 rounded-xl transition-all duration-300": true,
			"active bg-green-50 border-2 border-green-500 shadow-lg scale-105":                                        p.Active,
			"bg-white border border-gray-200 shadow-md hover:shadow-lg":                                               !p.Active,
		},
		g.If(p.Step > 0,
			Div(
				c.Classes{
					"absolute -top-3 -left-3 w-8 h-8 rounded-full flex items-center justify-center text-white font-bold text-sm": true,
					"bg-green-500": p.Active,
					"bg-gray-400":  !p.Active,
				},
				g.Text(strconv.Itoa(p.Step)),
			),
		),
		Div(
			Class("w-16 h-16 rounded-full flex items-center justify-center mb-4 "+iconTone(p.Active)),
			p.Glyph.Render(32, ""),
		),
		H3(
			c.Classes{
				"text-lg font-semibold mb-2": true,
				"text-green-700":             p.Active,
				"text-gray-800":              !p.Active,
			},
			g.Text(p.Title),
		),
		P(Class("text-sm text-gray-600 leading-relaxed"), g.Text(p.Description)),
	)
}

func iconTone(active bool) string {
	if active {
		return "bg-green-500 text-white"
	}
	return "bg-brown-100 text-amber-700"
}

// ProductCardProps configures a ProductCard.
type ProductCardProps struct {
	Glyph       icons.Glyph
	Name        string
	Description string
	Benefits    []string
}

// ProductCard shows a catalog entry with its benefits in the given order.
func ProductCard(p ProductCardProps) g.Node {
	return Div(
		Class("product-card bg-white rounded-xl shadow-md hover:shadow-xl transition-all duration-300 overflow-hidden border border-gray-100"),
		Div(
			Class("bg-eco-gradient p-6 flex justify-center"),
			Div(
				Class("w-20 h-20 bg-white rounded-full flex items-center justify-center"),
				p.Glyph.Render(40, "text-green-600"),
			),
		),
		Div(
			Class("p-6"),
			H3(Class("text-xl font-bold text-gray-800 mb-2"), g.Text(p.Name)),
			P(Class("text-gray-600 text-sm mb-4 leading-relaxed"), g.Text(p.Description)),
			Div(
				Class("space-y-2"),
				H4(Class("text-sm font-semibold text-green-700 mb-2"), g.Text("Benefits:")),
				Ul(
					Class("benefits space-y-1"),
					g.Map(p.Benefits, func(b string) g.Node {
						return Li(
							Class("flex items-start space-x-2"),
							Span(Class("text-green-500 mt-1"), g.Text("•")),
							Span(Class("text-gray-600 text-sm"), g.Text(b)),
						)
					}),
				),
			),
		),
		Div(
			Class("px-6 pb-6"),
			Button(
				Inert("/products/learn-more"),
				Name("product"),
				Value(p.Name),
				Class("w-full bg-green-500 hover:bg-green-600 text-white font-medium py-2 px-4 rounded-lg transition-colors"),
				g.Text("Learn More"),
			),
		),
	)
}

// SiteFooter closes the About screen.
func SiteFooter() g.Node {
	return Footer(
		Class("bg-gradient-to-b from-green-50 to-green-100 py-8 px-6 text-center"),
		Div(
			Class("flex items-center justify-center mb-2"),
			icons.Icon("leaf", 20, "text-green-600 mr-2"),
			Span(Class("text-sm font-semibold text-green-800"), g.Text("Gopang")),
		),
		P(Class("text-xs text-green-700 italic"), g.Text(`"Empowering communities, one waste at a time."`)),
	)
}
