package icons

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// svgGlyph is a 24x24 stroked outline icon.
type svgGlyph struct {
	name   string
	shapes []g.Node
}

func (s svgGlyph) Render(size int, color string) g.Node {
	px := strconv.Itoa(size)
	return SVG(
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		Width(px),
		Height(px),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Class(classes(s.name, color)),
		Aria("hidden", "true"),
		g.Group(s.shapes),
	)
}

func classes(name, color string) string {
	c := "icon icon-" + name
	if color != "" {
		c += " " + color
	}
	return c
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

func circle(cx, cy, r string) g.Node {
	return g.El("circle", g.Attr("cx", cx), g.Attr("cy", cy), g.Attr("r", r))
}

func glyph(name string, shapes ...g.Node) svgGlyph {
	return svgGlyph{name: name, shapes: shapes}
}

// Lucide returns the outline icon set the screens are drawn with.
func Lucide() Set {
	set := Set{}
	for _, gl := range []svgGlyph{
		glyph("leaf",
			path("M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.48 19 2c1 2 2 4.18 2 8 0 5.5-4.78 10-10 10Z"),
			path("M2 21c0-3 1.85-5.36 5.08-6C9.5 14.52 12 13 13 12"),
		),
		glyph("recycle",
			path("M7 19H4.815a1.83 1.83 0 0 1-1.57-.881 1.785 1.785 0 0 1-.004-1.784L7.196 9.5"),
			path("M11 19h8.203a1.83 1.83 0 0 0 1.556-.89 1.784 1.784 0 0 0 0-1.775l-1.226-2.12"),
			path("m14 16-3 3 3 3"),
			path("M8.293 13.596 7.196 9.5 3.1 10.598"),
			path("m9.344 5.811 1.093-1.892A1.83 1.83 0 0 1 11.985 3a1.784 1.784 0 0 1 1.546.888l3.943 6.843"),
			path("m13.378 9.633 4.096 1.098 1.097-4.096"),
		),
		glyph("package",
			path("m7.5 4.27 9 5.15"),
			path("M21 8a2 2 0 0 0-1-1.73l-7-4a2 2 0 0 0-2 0l-7 4A2 2 0 0 0 3 8v8a2 2 0 0 0 1 1.73l7 4a2 2 0 0 0 2 0l7-4A2 2 0 0 0 21 16Z"),
			path("m3.3 7 8.7 5 8.7-5"),
			path("M12 22V12"),
		),
		glyph("users",
			path("M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"),
			circle("9", "7", "4"),
			path("M22 21v-2a4 4 0 0 0-3-3.87"),
			path("M16 3.13a4 4 0 0 1 0 7.75"),
		),
		glyph("camera",
			path("M14.5 4h-5L7 7H4a2 2 0 0 0-2 2v9a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V9a2 2 0 0 0-2-2h-3l-2.5-3z"),
			circle("12", "13", "3"),
		),
		glyph("weight",
			circle("12", "5", "3"),
			path("M6.5 8a2 2 0 0 0-1.905 1.46L2.1 18.5A2 2 0 0 0 4 21h16a2 2 0 0 0 1.925-2.54L19.4 9.5A2 2 0 0 0 17.48 8Z"),
		),
		glyph("arrow-right",
			path("M5 12h14"),
			path("m12 5 7 7-7 7"),
		),
		glyph("check-circle",
			path("M22 11.08V12a10 10 0 1 1-5.93-9.14"),
			path("m9 11 3 3L22 4"),
		),
		glyph("truck",
			path("M14 18V6a2 2 0 0 0-2-2H4a2 2 0 0 0-2 2v11a1 1 0 0 0 1 1h2"),
			path("M15 18H9"),
			path("M19 18h2a1 1 0 0 0 1-1v-3.65a1 1 0 0 0-.22-.624l-3.48-4.35A1 1 0 0 0 17.52 8H14"),
			circle("17", "18", "2"),
			circle("7", "18", "2"),
		),
		glyph("home",
			path("m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"),
			path("M9 22V12h6v10"),
		),
		glyph("info",
			circle("12", "12", "10"),
			path("M12 16v-4"),
			path("M12 8h.01"),
		),
		glyph("shopping-bag",
			path("M6 2 3 6v14a2 2 0 0 0 2 2h14a2 2 0 0 0 2-2V6l-3-4Z"),
			path("M3 6h18"),
			path("M16 10a4 4 0 0 1-8 0"),
		),
		glyph("menu",
			path("M4 12h16"),
			path("M4 6h16"),
			path("M4 18h16"),
		),
		glyph("x",
			path("M18 6 6 18"),
			path("m6 6 12 12"),
		),
	} {
		set[gl.name] = gl
	}
	return set
}
