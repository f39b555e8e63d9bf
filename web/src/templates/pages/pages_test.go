package pages_test

import (
	"strings"
	"testing"

	"github.com/nfrund/gopang/internal/catalog"
	"github.com/nfrund/gopang/internal/collect"
	"github.com/nfrund/gopang/internal/process"
	"github.com/nfrund/gopang/web/src/templates/components"
	"github.com/nfrund/gopang/web/src/templates/pages"
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

func TestLandingPage(t *testing.T) {
	html := render(t, pages.LandingPage(components.PostNavigate))

	assert.Contains(t, html, "From Our Waste,")
	assert.Contains(t, html, "How It Works")
	assert.Contains(t, html, "Distribution &amp; Sales")
	assert.Contains(t, html, `hx-post="/navigate/collect"`)
}

func TestCollectPage_ReflectsDraft(t *testing.T) {
	d := collect.NewDraft().WithWeight("2.5").WithFoodType(collect.FoodTypeVegetable)
	html := render(t, pages.CollectPage(d))

	assert.Contains(t, html, "Collect Waste")
	assert.Contains(t, html, `value="2.5"`)
	assert.Contains(t, html, `<option value="vegetable" selected>`)
	assert.Equal(t, 1, strings.Count(html, " selected"))
	assert.Contains(t, html, `hx-post="/collect/submit"`)
	assert.Equal(t, 2, strings.Count(html, `hx-include="#food-type, #weight"`), "each input posts the whole draft")
}

func TestCollectPage_EmptyDraftSelectsPlaceholder(t *testing.T) {
	html := render(t, pages.CollectPage(collect.NewDraft()))
	assert.Contains(t, html, `<option value="" selected>Select type...</option>`)
}

func TestProcessPage(t *testing.T) {
	html := render(t, pages.ProcessPage(process.NewTracker()))

	assert.Contains(t, html, "Step 3 of 5")
	assert.Contains(t, html, "Current Stage: Processing")
	assert.Equal(t, 2, strings.Count(html, `data-status="completed"`))
	assert.Equal(t, 1, strings.Count(html, `data-status="current"`))
	assert.Equal(t, 2, strings.Count(html, `data-status="upcoming"`))
	assert.Equal(t, 5, strings.Count(html, "process-card"))
}

func TestProductsPage(t *testing.T) {
	html := render(t, pages.ProductsPage(catalog.Products()))
	assert.Contains(t, html, "Our Products")
	assert.Equal(t, 4, strings.Count(html, "product-card"))

	empty := render(t, pages.ProductsPage(nil))
	assert.NotContains(t, empty, "product-card")
}

func TestAboutPage(t *testing.T) {
	html := render(t, pages.AboutPage())
	assert.Contains(t, html, "About Gopang")
	assert.Contains(t, html, "Community Collaboration")
}
