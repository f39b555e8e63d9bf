// Package catalog lists the products made from processed waste.
package catalog

// Product is one catalog entry.
type Product struct {
	Name        string
	Description string
	Glyph       string
	Benefits    []string
}

// Products returns the catalog in display order.
func Products() []Product {
	return []Product{
		{
			Name:        "Organic Fertilizer",
			Description: "Nutrient-rich soil amendment from BSF frass",
			Glyph:       "leaf",
			Benefits:    []string{"Improves soil structure", "Slow nutrient release", "Safe for home gardens"},
		},
		{
			Name:        "Animal Feed",
			Description: "High-protein feed from BSF larvae",
			Glyph:       "package",
			Benefits:    []string{"Rich in protein and fat", "Suitable for poultry and fish", "Replaces imported feed"},
		},
		{
			Name:        "Premium Compost",
			Description: "Aged compost for gardens",
			Glyph:       "recycle",
			Benefits:    []string{"Fully matured", "Retains moisture", "Feeds soil life"},
		},
		{
			Name:        "Soil Enhancer",
			Description: "Boost soil health naturally",
			Glyph:       "leaf",
			Benefits:    []string{"Balances soil pH", "Encourages root growth"},
		},
	}
}

// LearnMore is the handler behind a product's "Learn More" button. It does
// nothing.
func LearnMore(p Product) {}
