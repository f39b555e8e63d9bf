package pages

import (
	"github.com/nfrund/gopang/internal/catalog"
	"github.com/nfrund/gopang/internal/icons"
	"github.com/nfrund/gopang/web/src/templates/components"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ProductsPage lists the catalog.
func ProductsPage(products []catalog.Product) g.Node {
	return Div(
		ID("view-products"),
		Class("min-h-screen bg-gradient-to-b from-green-50 to-white pb-20"),
		Div(
			Class("px-6 pt-8"),
			H1(Class("text-2xl font-bold text-gray-800 mb-2"), g.Text("Our Products")),
			P(Class("text-sm text-gray-600 mb-6"), g.Text("Sustainable outputs from waste transformation")),
			Div(
				Class("grid grid-cols-2 gap-4"),
				g.Map(products, func(p catalog.Product) g.Node {
					return components.ProductCard(components.ProductCardProps{
						Glyph:       icons.Default().MustLookup(p.Glyph),
						Name:        p.Name,
						Description: p.Description,
						Benefits:    p.Benefits,
					})
				}),
			),
			Div(
				Class("bg-gradient-to-r from-green-600 to-green-700 rounded-2xl p-6 mt-6 text-white"),
				H3(Class("font-semibold mb-2"), g.Text("100% Natural")),
				P(
					Class("text-sm text-green-50 leading-relaxed"),
					g.Text("All our products are created through natural biological processes, free from harmful chemicals."),
				),
			),
		),
	)
}
