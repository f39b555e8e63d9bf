// Package app is the root of the UI: it owns the per-session state and maps
// it to the visible screen.
package app

import (
	"github.com/nfrund/gopang/internal/collect"
	"github.com/nfrund/gopang/internal/navigation"
	"github.com/nfrund/gopang/internal/process"
)

// State is everything one browser session can change.
type State struct {
	nav      *navigation.Navigator
	observer navigation.Observer
	draft    *collect.Draft
	menu     navigation.Menu
	tracker  process.Tracker
}

// NewState returns the initial state: home view, closed menu, no mounted
// draft and the tracker at its default step.
func NewState() *State {
	return &State{
		nav:     navigation.NewNavigator(),
		tracker: process.NewTracker(),
	}
}

// OnNavigate forwards every single-page transition to fn.
func (s *State) OnNavigate(fn navigation.Observer) {
	s.observer = fn
	s.nav.OnNavigate(fn)
}

// Reset returns to the initial state, as a full page load does. The
// navigation observer is kept.
func (s *State) Reset() {
	s.nav = navigation.NewNavigator()
	s.nav.OnNavigate(s.observer)
	s.draft = nil
	s.menu.Close()
	s.tracker = process.NewTracker()
}

// Navigate moves the single-page shell to id. Entering Collect mounts a
// fresh draft and leaving it discards the draft.
func (s *State) Navigate(id string) navigation.Transition {
	t := s.nav.Navigate(id)
	s.remount(t.From, t.To)
	return t
}

// OpenRoute records a full navigation of the router-based shell to v. The
// link that caused it closes the mobile menu and the target view is mounted
// from scratch.
func (s *State) OpenRoute(v navigation.ViewID) {
	s.Reset()
	s.remount("", v)
}

func (s *State) remount(from, to navigation.ViewID) {
	switch {
	case to != navigation.Collect:
		s.draft = nil
	case from != navigation.Collect || s.draft == nil:
		d := collect.NewDraft()
		s.draft = &d
	}
}

// MountCollect makes sure a draft exists, moving the single-page shell to
// Collect when the session no longer has one. That happens when the state
// expired or the server restarted while the browser kept showing the form.
// It reports whether Collect had to be mounted.
func (s *State) MountCollect() bool {
	if s.draft != nil {
		return false
	}
	s.Navigate(string(navigation.Collect))
	return true
}

// UpdateDraft applies one form field to the mounted draft. It reports false
// when no Collect view is mounted, in which case nothing changes.
func (s *State) UpdateDraft(field, value string) bool {
	if s.draft == nil {
		return false
	}
	d := s.draft.Apply(field, value)
	s.draft = &d
	return true
}

// Submit hands the draft to collect.Submit. No state changes.
func (s *State) Submit() {
	collect.Submit(s.currentDraft())
}

// ToggleMenu flips the navbar's mobile menu and returns the new value.
func (s *State) ToggleMenu() bool {
	s.menu.Toggle()
	return s.menu.Open()
}

func (s *State) currentDraft() collect.Draft {
	if s.draft == nil {
		return collect.NewDraft()
	}
	return *s.draft
}

// Snapshot copies the renderable state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		CurrentPage: s.nav.Current(),
		Draft:       s.currentDraft(),
		MenuOpen:    s.menu.Open(),
		ActiveStep:  s.tracker.Active,
	}
}

// Snapshot is an immutable copy of State used for rendering.
type Snapshot struct {
	CurrentPage string
	Draft       collect.Draft
	MenuOpen    bool
	ActiveStep  int
}
