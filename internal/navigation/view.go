// Package navigation holds the client-facing navigation state: which screen is
// active, the tab and link lists that point at them, and the mobile menu flag.
package navigation

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ViewID identifies one of the five screens.
type ViewID string

const (
	Home     ViewID = "home"
	Collect  ViewID = "collect"
	Process  ViewID = "process"
	Products ViewID = "products"
	About    ViewID = "about"
)

var titleCaser = cases.Title(language.English)

// AllViews returns every known view in tab order.
func AllViews() []ViewID {
	return []ViewID{Home, Collect, Process, Products, About}
}

// ParseView performs an exact match against the known ids. No trimming or
// case folding is applied.
func ParseView(s string) (ViewID, bool) {
	switch ViewID(s) {
	case Home, Collect, Process, Products, About:
		return ViewID(s), true
	default:
		return Home, false
	}
}

// String implements fmt.Stringer.
func (v ViewID) String() string {
	return string(v)
}

// Label is the human readable name shown under tab icons and in links.
func (v ViewID) Label() string {
	return titleCaser.String(string(v))
}
