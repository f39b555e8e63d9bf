package components

import (
	"github.com/nfrund/gopang/internal/icons"
	"github.com/nfrund/gopang/internal/navigation"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// TabBar is the fixed bottom navigation of the single-page shell. Each button
// reports its view through onNavigate.
func TabBar(current navigation.ViewID, onNavigate Navigate) g.Node {
	return Nav(
		ID("tab-bar"),
		Class("fixed bottom-0 left-0 right-0 bg-white border-t border-green-100 shadow-lg z-50 max-w-md mx-auto"),
		Div(
			Class("flex justify-around items-center h-16 px-2"),
			g.Map(navigation.Tabs(), func(t navigation.Tab) g.Node {
				return Button(
					Type("button"),
					Data("view", string(t.View)),
					c.Classes{
						"flex flex-col items-center justify-center flex-1 py-2 transition-colors": true,
						"text-green-600": t.View == current,
						"text-gray-400":  t.View != current,
					},
					onNavigate(t.View),
					icons.Icon(t.Glyph, 20, ""),
					Span(Class("text-xs mt-1"), g.Text(t.Label)),
				)
			}),
		),
	)
}
