package navigation

// Tab is one button of the bottom tab bar.
type Tab struct {
	View  ViewID
	Glyph string
	Label string
}

// Tabs returns the bottom tab bar entries, one per known view.
func Tabs() []Tab {
	glyphs := map[ViewID]string{
		Home:     "home",
		Collect:  "recycle",
		Process:  "package",
		Products: "shopping-bag",
		About:    "info",
	}
	views := AllViews()
	tabs := make([]Tab, 0, len(views))
	for _, v := range views {
		tabs = append(tabs, Tab{View: v, Glyph: glyphs[v], Label: v.Label()})
	}
	return tabs
}

// Link is an anchor of the router-based top navbar.
type Link struct {
	View  ViewID
	Href  string
	Label string
}

// Links returns the top navbar links. Home points at the single-page shell.
func Links() []Link {
	views := AllViews()
	links := make([]Link, 0, len(views))
	for _, v := range views {
		links = append(links, Link{View: v, Href: Path(v), Label: v.Label()})
	}
	return links
}

// Path is the route that renders v in the router-based shell.
func Path(v ViewID) string {
	if v == Home {
		return "/"
	}
	return "/" + string(v)
}
