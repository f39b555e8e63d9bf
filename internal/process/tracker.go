// Package process describes the Black Soldier Fly processing pipeline and how
// far along the demo batch is.
package process

import "fmt"

// Step is one stage of the pipeline.
type Step struct {
	Glyph       string
	Title       string
	Description string
}

// DefaultActiveStep is the stage the demo batch is shown at (Processing).
const DefaultActiveStep = 2

// Steps returns the fixed, ordered pipeline.
func Steps() []Step {
	return []Step{
		{Glyph: "recycle", Title: "Collection", Description: "Waste gathered"},
		{Glyph: "weight", Title: "Weighing", Description: "Measured accurately"},
		{Glyph: "package", Title: "Processing", Description: "BSF transformation"},
		{Glyph: "shopping-bag", Title: "Product Creation", Description: "Quality outputs"},
		{Glyph: "truck", Title: "Distribution", Description: "Ready for market"},
	}
}

// Status is how a step relates to the active one.
type Status int

const (
	Upcoming Status = iota
	Current
	Completed
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Current:
		return "current"
	default:
		return "upcoming"
	}
}

// Tracker maps the active index to the progress rendering. The index is set
// once and never advanced.
type Tracker struct {
	Active int
}

// NewTracker returns a tracker at DefaultActiveStep.
func NewTracker() Tracker {
	return Tracker{Active: DefaultActiveStep}
}

// Status classifies step i.
func (t Tracker) Status(i int) Status {
	switch {
	case i < t.Active:
		return Completed
	case i == t.Active:
		return Current
	default:
		return Upcoming
	}
}

// Reached reports whether the indicator for step i is filled.
func (t Tracker) Reached(i int) bool {
	return i <= t.Active
}

// ConnectorFilled reports whether the bar after step i is filled.
func (t Tracker) ConnectorFilled(i int) bool {
	return i < t.Active
}

// Caption is the "Step N of M" line under the indicator.
func (t Tracker) Caption() string {
	return fmt.Sprintf("Step %d of %d", t.Active+1, len(Steps()))
}

// CurrentStage is the title of the active step, or "" when the index is out
// of range.
func (t Tracker) CurrentStage() string {
	steps := Steps()
	if t.Active < 0 || t.Active >= len(steps) {
		return ""
	}
	return steps[t.Active].Title
}
