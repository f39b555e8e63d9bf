package collect_test

import (
	"testing"

	"github.com/nfrund/gopang/internal/collect"
	"github.com/stretchr/testify/assert"
)

func TestDraft_FieldUpdatesAreIndependent(t *testing.T) {
	d := collect.NewDraft().WithWeight("2.5")
	photo := &collect.Photo{Filename: "scraps.jpg"}
	d = d.WithPhoto(photo)

	d = d.WithFoodType(collect.FoodTypeFruit)

	assert.Equal(t, collect.FoodTypeFruit, d.FoodType)
	assert.Equal(t, "2.5", d.Weight)
	assert.Same(t, photo, d.Photo)
}

func TestDraft_WeightThenFoodType(t *testing.T) {
	d := collect.NewDraft()
	d = d.Apply(collect.FieldWeight, "2.5")
	d = d.Apply(collect.FieldFoodType, "vegetable")

	assert.Equal(t, collect.Draft{FoodType: "vegetable", Weight: "2.5", Photo: nil}, d)
}

func TestDraft_ApplyDoesNotMutateReceiver(t *testing.T) {
	original := collect.NewDraft().WithWeight("1")
	_ = original.Apply(collect.FieldWeight, "9")
	assert.Equal(t, "1", original.Weight)
}

func TestDraft_NoValidation(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  collect.Draft
	}{
		{"empty weight", collect.FieldWeight, "", collect.Draft{}},
		{"negative weight", collect.FieldWeight, "-3", collect.Draft{Weight: "-3"}},
		{"non numeric weight", collect.FieldWeight, "heavy", collect.Draft{Weight: "heavy"}},
		{"unknown food type", collect.FieldFoodType, "plastic", collect.Draft{FoodType: "plastic"}},
		{"unknown field", "colour", "green", collect.Draft{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect.NewDraft().Apply(tt.field, tt.value))
		})
	}
}

func TestSubmit_IsNoOp(t *testing.T) {
	d := collect.NewDraft()
	assert.NotPanics(t, func() {
		collect.Submit(d)
		collect.Submit(d)
	})
	assert.Equal(t, collect.NewDraft(), d)
}

func TestOptions(t *testing.T) {
	opts := collect.Options()
	assert.Len(t, opts, 5)
	assert.Equal(t, collect.FoodTypeUnset, opts[0].Value)
	assert.Equal(t, "Rice & Grains", opts[3].Label)
}
