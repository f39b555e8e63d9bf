// Package collect models the waste-collection form. The draft lives only while
// the Collect view is mounted and is never submitted anywhere.
package collect

import "log/slog"

// FoodType is the value of the food type select.
type FoodType string

const (
	FoodTypeUnset     FoodType = ""
	FoodTypeVegetable FoodType = "vegetable"
	FoodTypeFruit     FoodType = "fruit"
	FoodTypeRice      FoodType = "rice"
	FoodTypeMixed     FoodType = "mixed"
)

// Option is one entry of the food type select.
type Option struct {
	Value FoodType
	Label string
}

// Options returns the select entries in display order, placeholder first.
func Options() []Option {
	return []Option{
		{FoodTypeUnset, "Select type..."},
		{FoodTypeVegetable, "Vegetable Scraps"},
		{FoodTypeFruit, "Fruit Waste"},
		{FoodTypeRice, "Rice & Grains"},
		{FoodTypeMixed, "Mixed Food"},
	}
}

// Photo references an uploaded image. Uploads are not wired, so drafts
// always carry a nil photo.
type Photo struct {
	Filename string
	Data     []byte
}

// Form field names as posted by the Collect view.
const (
	FieldFoodType = "foodType"
	FieldWeight   = "weight"
)

// Draft is the in-progress waste record.
type Draft struct {
	FoodType FoodType
	// Weight is kept as typed. Empty, negative and non-numeric strings are
	// all accepted.
	Weight string
	Photo  *Photo
}

// NewDraft returns a draft with empty defaults.
func NewDraft() Draft {
	return Draft{}
}

// WithFoodType returns a copy of d with only the food type replaced.
// Values outside the option list are stored as given.
func (d Draft) WithFoodType(ft FoodType) Draft {
	d.FoodType = ft
	return d
}

// WithWeight returns a copy of d with only the weight replaced.
func (d Draft) WithWeight(w string) Draft {
	d.Weight = w
	return d
}

// WithPhoto returns a copy of d with only the photo replaced.
func (d Draft) WithPhoto(p *Photo) Draft {
	d.Photo = p
	return d
}

// Apply replaces the field named by the form field name. Unknown names
// leave the draft untouched.
func (d Draft) Apply(field, value string) Draft {
	switch field {
	case FieldFoodType:
		return d.WithFoodType(FoodType(value))
	case FieldWeight:
		return d.WithWeight(value)
	default:
		return d
	}
}

// Submit is the handler behind "Submit Waste Record". Nothing is recorded.
func Submit(d Draft) {
	slog.Debug("waste record submit ignored", "food_type", d.FoodType, "weight", d.Weight)
}
