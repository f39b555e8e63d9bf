package app_test

import (
	"strings"
	"testing"

	"github.com/nfrund/gopang/internal/app"
	"github.com/nfrund/gopang/internal/collect"
	"github.com/nfrund/gopang/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

var viewMarkers = map[navigation.ViewID]string{
	navigation.Home:     `id="view-home"`,
	navigation.Collect:  `id="view-collect"`,
	navigation.Process:  `id="view-process"`,
	navigation.Products: `id="view-products"`,
	navigation.About:    `id="view-about"`,
}

func TestRender_UnknownPageRendersHome(t *testing.T) {
	for _, id := range []string{"", "settings", "Home", "collect ", "../about"} {
		s := app.NewState()
		s.Navigate(id)
		html := render(t, app.Render(s.Snapshot()))

		assert.Contains(t, html, viewMarkers[navigation.Home], "id %q", id)
		for v, marker := range viewMarkers {
			if v != navigation.Home {
				assert.NotContains(t, html, marker, "id %q", id)
			}
		}
	}
}

func TestRender_EachViewRendersOnlyItself(t *testing.T) {
	for _, v := range navigation.AllViews() {
		s := app.NewState()
		s.Navigate(string(v))
		html := render(t, app.Render(s.Snapshot()))

		for other, marker := range viewMarkers {
			if other == v {
				assert.Contains(t, html, marker)
			} else {
				assert.NotContains(t, html, marker, "rendering %s", v)
			}
		}
	}
}

func TestNavigateToCollect(t *testing.T) {
	s := app.NewState()
	require.Equal(t, "home", s.Snapshot().CurrentPage)

	s.Navigate("collect")
	html := render(t, app.Render(s.Snapshot()))

	assert.Contains(t, html, "Collect Waste")
	assert.NotContains(t, html, "From Our Waste,")
}

func TestDraft_LifecycleFollowsCollectView(t *testing.T) {
	s := app.NewState()
	assert.False(t, s.UpdateDraft(collect.FieldWeight, "1"), "no draft before Collect is mounted")

	s.Navigate("collect")
	require.True(t, s.UpdateDraft(collect.FieldWeight, "2.5"))
	require.True(t, s.UpdateDraft(collect.FieldFoodType, "vegetable"))
	assert.Equal(t, collect.Draft{FoodType: "vegetable", Weight: "2.5", Photo: nil}, s.Snapshot().Draft)

	// Re-selecting the current view keeps the draft.
	s.Navigate("collect")
	assert.Equal(t, "2.5", s.Snapshot().Draft.Weight)

	// Leaving discards it; coming back starts empty.
	s.Navigate("about")
	s.Navigate("collect")
	assert.Equal(t, collect.NewDraft(), s.Snapshot().Draft)
}

func TestSubmit_ChangesNothing(t *testing.T) {
	s := app.NewState()
	s.Navigate("collect")
	s.UpdateDraft(collect.FieldWeight, "3")
	before := s.Snapshot()

	assert.NotPanics(t, func() {
		s.Submit()
		s.Submit()
	})
	assert.Equal(t, before, s.Snapshot())
}

func TestMenu(t *testing.T) {
	s := app.NewState()
	assert.True(t, s.ToggleMenu())
	assert.False(t, s.ToggleMenu())

	s.ToggleMenu()
	s.OpenRoute(navigation.Products)
	assert.False(t, s.Snapshot().MenuOpen)

	s.OpenRoute(navigation.About)
	assert.False(t, s.Snapshot().MenuOpen)
}

func TestOpenRoute_MountsFreshView(t *testing.T) {
	s := app.NewState()
	s.OpenRoute(navigation.Collect)
	require.True(t, s.UpdateDraft(collect.FieldWeight, "7"))

	s.OpenRoute(navigation.Collect)
	assert.Equal(t, collect.NewDraft(), s.Snapshot().Draft)

	s.OpenRoute(navigation.About)
	assert.False(t, s.UpdateDraft(collect.FieldWeight, "1"))
}

func TestRenderSite(t *testing.T) {
	s := app.NewState()
	s.ToggleMenu()
	html := render(t, app.RenderSite(navigation.Products, s.Snapshot()))

	assert.Contains(t, html, `id="site-nav"`)
	assert.Contains(t, html, `id="mobile-menu"`)
	assert.Contains(t, html, viewMarkers[navigation.Products])
	assert.NotContains(t, html, `id="tab-bar"`)
}

func TestRender_ActiveStepComesFromState(t *testing.T) {
	s := app.NewState()
	s.Navigate("process")
	assert.Contains(t, render(t, app.Render(s.Snapshot())), "Step 3 of 5")
}

func TestReset_DropsEverythingButObserver(t *testing.T) {
	s := app.NewState()
	var calls int
	s.OnNavigate(func(navigation.Transition) { calls++ })

	s.Navigate("collect")
	s.UpdateDraft(collect.FieldWeight, "4")
	s.ToggleMenu()
	s.Reset()

	snap := s.Snapshot()
	assert.Equal(t, "home", snap.CurrentPage)
	assert.Equal(t, collect.NewDraft(), snap.Draft)
	assert.False(t, snap.MenuOpen)
	assert.Equal(t, 2, snap.ActiveStep)

	s.Navigate("about")
	assert.Equal(t, 2, calls)
}

func TestMountCollect(t *testing.T) {
	s := app.NewState()
	var transitions []navigation.Transition
	s.OnNavigate(func(tr navigation.Transition) { transitions = append(transitions, tr) })

	require.True(t, s.MountCollect())
	assert.Equal(t, "collect", s.Snapshot().CurrentPage)
	require.True(t, s.UpdateDraft(collect.FieldWeight, "5"))
	require.Len(t, transitions, 1)
	assert.Equal(t, navigation.Home, transitions[0].From)

	assert.False(t, s.MountCollect(), "a mounted draft is left alone")
	assert.Equal(t, "5", s.Snapshot().Draft.Weight)
	assert.Len(t, transitions, 1)
}
