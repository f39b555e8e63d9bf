package pages

import (
	"github.com/nfrund/gopang/internal/collect"
	"github.com/nfrund/gopang/internal/icons"
	"github.com/nfrund/gopang/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// draftInputs is the hx-include selector that posts every draft field with
// each change.
const draftInputs = "#food-type, #weight"

const inputClass = "w-full px-4 py-3 bg-green-50 border border-green-200 rounded-xl focus:outline-none focus:ring-2 focus:ring-green-500"

// CollectPage is the waste record form. Inputs are not wrapped in a form;
// each one posts the draft fields through hx-include.
func CollectPage(d collect.Draft) g.Node {
	return Div(
		ID("view-collect"),
		Class("min-h-screen bg-gradient-to-b from-green-400 to-green-600 pb-20"),
		Div(
			Class("px-6 pt-8"),
			H1(Class("text-2xl font-bold text-white mb-2"), g.Text("Collect Waste")),
			P(Class("text-sm text-green-50 mb-6"), g.Text("Record your food waste contribution")),
			Div(
				Class("bg-white rounded-2xl shadow-xl p-6 space-y-4"),
				Div(
					fieldLabel("food-type", "Food Type"),
					Select(
						ID("food-type"),
						Name(collect.FieldFoodType),
						Class(inputClass),
						hx.Post("/collect/draft"),
						hx.Trigger("change"),
						hx.Include(draftInputs),
						hx.Swap("none"),
						g.Map(collect.Options(), func(o collect.Option) g.Node {
							return Option(
								Value(string(o.Value)),
								g.If(o.Value == d.FoodType, Selected()),
								g.Text(o.Label),
							)
						}),
					),
				),
				Div(
					fieldLabel("weight", "Weight (kg)"),
					Input(
						ID("weight"),
						Type("number"),
						Name(collect.FieldWeight),
						Placeholder("Enter weight"),
						Class(inputClass),
						Value(d.Weight),
						hx.Post("/collect/draft"),
						hx.Trigger("input"),
						hx.Include(draftInputs),
						hx.Swap("none"),
					),
				),
				Div(
					fieldLabel("", "Photo (Optional)"),
					Div(
						Class("border-2 border-dashed border-green-300 rounded-xl p-8 text-center bg-green-50 hover:bg-green-100 transition-colors cursor-pointer"),
						icons.Icon("camera", 32, "mx-auto text-green-600 mb-2"),
						P(Class("text-sm text-gray-600"), g.Text("Tap to upload photo")),
					),
				),
				Button(
					ID("submit-record"),
					components.Inert("/collect/submit"),
					Class("w-full bg-gradient-to-r from-green-600 to-green-700 text-white py-4 rounded-xl font-semibold shadow-lg hover:shadow-xl transition-all mt-6 flex items-center justify-center"),
					icons.Icon("check-circle", 20, "mr-2"),
					g.Text("Submit Waste Record"),
				),
			),
		),
	)
}

func fieldLabel(forID, text string) g.Node {
	return g.El("label",
		g.If(forID != "", For(forID)),
		Class("block text-sm font-semibold text-gray-700 mb-2"),
		g.Text(text),
	)
}
