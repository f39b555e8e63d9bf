package pages

import (
	"strconv"

	"github.com/nfrund/gopang/internal/icons"
	"github.com/nfrund/gopang/internal/process"
	"github.com/nfrund/gopang/web/src/templates/components"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// ProcessPage shows the pipeline with tr.Active highlighted.
func ProcessPage(tr process.Tracker) g.Node {
	steps := process.Steps()

	indicators := make([]g.Node, 0, len(steps))
	cards := make([]g.Node, 0, len(steps))
	for i, s := range steps {
		var mark g.Node = g.Text(strconv.Itoa(i + 1))
		if tr.Status(i) == process.Completed {
			mark = icons.Icon("check-circle", 16, "")
		}
		indicators = append(indicators, Div(
			Class("flex-1 flex items-center"),
			Div(
				Data("status", tr.Status(i).String()),
				c.Classes{
					"step-indicator w-8 h-8 rounded-full flex items-center justify-center": true,
					"bg-green-600 text-white":   tr.Reached(i),
					"bg-gray-200 text-gray-400": !tr.Reached(i),
				},
				mark,
			),
			g.If(i < len(steps)-1,
				Div(c.Classes{
					"flex-1 h-1 mx-1": true,
					"bg-green-600":    tr.ConnectorFilled(i),
					"bg-gray-200":     !tr.ConnectorFilled(i),
				}),
			),
		))
		cards = append(cards, components.ProcessCard(components.ProcessCardProps{
			Glyph:       icons.Default().MustLookup(s.Glyph),
			Title:       s.Title,
			Description: s.Description,
			Step:        i + 1,
			Active:      i == tr.Active,
		}))
	}

	return Div(
		ID("view-process"),
		Class("min-h-screen bg-gradient-to-b from-brown-50 to-green-50 pb-20"),
		Div(
			Class("px-6 pt-8"),
			H1(Class("text-2xl font-bold text-gray-800 mb-2"), g.Text("BSF Process")),
			P(Class("text-sm text-gray-600 mb-6"), g.Text("Track the transformation journey")),
			Div(
				Class("bg-white rounded-2xl shadow-lg p-6 mb-6"),
				Div(Class("flex justify-between items-center mb-4"), g.Group(indicators)),
				P(Class("text-center text-sm font-semibold text-green-600"), g.Text(tr.Caption())),
			),
			Div(Class("grid grid-cols-2 gap-4"), g.Group(cards)),
			Div(
				Class("bg-gradient-to-br from-green-100 to-brown-100 rounded-2xl p-5 mt-6"),
				H3(Class("font-semibold text-gray-800 mb-2"), g.Text("Current Stage: "+tr.CurrentStage())),
				P(
					Class("text-sm text-gray-700 leading-relaxed"),
					g.Text("Black Soldier Fly larvae are actively breaking down organic waste into nutrient-rich biomass. This process typically takes 10-14 days."),
				),
			),
		),
	)
}
