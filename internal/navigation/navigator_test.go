package navigation_test

import (
	"testing"

	"github.com/nfrund/gopang/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_StartsOnHome(t *testing.T) {
	n := navigation.NewNavigator()
	assert.Equal(t, "home", n.Current())
	assert.Equal(t, navigation.Home, n.Active())
}

func TestNavigator_UnknownIDsFallBackToHome(t *testing.T) {
	for _, id := range []string{"", "Home", " collect", "settings", "PRODUCTS", "about/", "💩"} {
		t.Run(id, func(t *testing.T) {
			n := navigation.NewNavigator()
			n.Navigate("process")
			n.Navigate(id)

			// The raw value is kept even though it resolves to home.
			assert.Equal(t, id, n.Current())
			assert.Equal(t, navigation.Home, n.Active())
		})
	}
}

func TestNavigator_EveryViewReachableFromEveryView(t *testing.T) {
	for _, from := range navigation.AllViews() {
		for _, to := range navigation.AllViews() {
			n := navigation.NewNavigator()
			n.Navigate(string(from))
			tr := n.Navigate(string(to))

			assert.Equal(t, from, tr.From)
			assert.Equal(t, to, tr.To)
			assert.Equal(t, to, n.Active())
		}
	}
}

func TestNavigator_ObserverSeesEveryCall(t *testing.T) {
	n := navigation.NewNavigator()
	var seen []navigation.Transition
	n.OnNavigate(func(tr navigation.Transition) { seen = append(seen, tr) })

	n.Navigate("collect")
	n.Navigate("nowhere")

	require.Len(t, seen, 2)
	assert.Equal(t, navigation.Transition{From: navigation.Home, To: navigation.Collect, Raw: "collect"}, seen[0])
	assert.Equal(t, navigation.Transition{From: navigation.Collect, To: navigation.Home, Raw: "nowhere"}, seen[1])
}

func TestParseView(t *testing.T) {
	v, ok := navigation.ParseView("products")
	assert.True(t, ok)
	assert.Equal(t, navigation.Products, v)

	v, ok = navigation.ParseView("Products")
	assert.False(t, ok)
	assert.Equal(t, navigation.Home, v)
}

func TestViewID_Label(t *testing.T) {
	assert.Equal(t, "Home", navigation.Home.Label())
	assert.Equal(t, "Products", navigation.Products.Label())
}
