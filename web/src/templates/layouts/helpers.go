package layouts

const (
	// SiteTitle is the document title when a page sets none.
	SiteTitle = "Gopang - From Our Waste, For Our Future"
	// SiteDescription is the meta description of every page.
	SiteDescription = "Food waste transformation through Black Soldier Fly processing"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Gopang"
	}
	return SiteTitle
}
