// Package icons provides the glyphs used across the views. Any icon set can
// be plugged in as long as it satisfies Glyph.
package icons

import (
	"fmt"
	"sort"

	g "maragu.dev/gomponents"
)

// Glyph renders a named icon.
type Glyph interface {
	// Render draws the icon size pixels square. color is a CSS class list
	// applied to the icon; the stroke follows currentColor, so an empty
	// color inherits from the parent.
	Render(size int, color string) g.Node
}

// Set is a lookup table of glyphs by symbolic name.
type Set map[string]Glyph

// Lookup returns the glyph registered under name.
func (s Set) Lookup(name string) (Glyph, bool) {
	gl, ok := s[name]
	return gl, ok
}

// MustLookup returns the glyph registered under name or panics. Views use it
// with constant names, so a miss is a programming error.
func (s Set) MustLookup(name string) Glyph {
	gl, ok := s.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("icons: no glyph named %q", name))
	}
	return gl
}

// Names returns the registered names, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var active Set = Lucide()

// Default returns the set used by the views.
func Default() Set {
	return active
}

// Icon is shorthand for Default().MustLookup(name).Render(size, color).
func Icon(name string, size int, color string) g.Node {
	return active.MustLookup(name).Render(size, color)
}
