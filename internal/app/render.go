package app

import (
	"github.com/nfrund/gopang/internal/catalog"
	"github.com/nfrund/gopang/internal/navigation"
	"github.com/nfrund/gopang/internal/process"
	"github.com/nfrund/gopang/web/src/templates/components"
	"github.com/nfrund/gopang/web/src/templates/pages"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Render is the single-page shell: the view selected by s.CurrentPage with
// the bottom tab bar underneath. The returned node is what htmx swaps into
// #app.
func Render(s Snapshot) g.Node {
	active := navigation.Resolve(s.CurrentPage)
	return Div(
		ID(components.AppTarget),
		Data("view", string(active)),
		Class("max-w-md mx-auto bg-white min-h-screen relative"),
		View(active, s, components.PostNavigate),
		components.TabBar(active, components.PostNavigate),
	)
}

// View renders the screen for v. Every ViewID has its own arm; the default
// arm covers values outside the enumeration.
func View(v navigation.ViewID, s Snapshot, onNavigate components.Navigate) g.Node {
	switch v {
	case navigation.Home:
		return pages.LandingPage(onNavigate)
	case navigation.Collect:
		return pages.CollectPage(s.Draft)
	case navigation.Process:
		return pages.ProcessPage(process.Tracker{Active: s.ActiveStep})
	case navigation.Products:
		return pages.ProductsPage(catalog.Products())
	case navigation.About:
		return pages.AboutPage()
	default:
		return pages.LandingPage(onNavigate)
	}
}

// RenderSite is the router-based shell for the page at v: top navbar and the
// page itself, padded below the fixed bar.
func RenderSite(v navigation.ViewID, s Snapshot) g.Node {
	return g.Group{
		components.Navbar(s.MenuOpen),
		Div(
			ID("site-page"),
			Data("view", string(v)),
			Class("pt-16 max-w-3xl mx-auto"),
			View(v, s, siteNavigate),
		),
	}
}

// siteNavigate turns in-page navigation into a link to the routed page.
func siteNavigate(id navigation.ViewID) g.Node {
	return g.Attr("onclick", "window.location.href='"+navigation.Path(id)+"'")
}
