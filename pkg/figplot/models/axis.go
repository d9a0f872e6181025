package models

// Axis configures one chart axis.
type Axis struct {
	// Label is the axis title.
	Label string `json:"label"`
	// Lim is "auto" or [min, max].
	Lim Limits `json:"lim"`
	// StartTick is the first explicit tick, or "auto".
	StartTick AutoFloat `json:"start_tick"`
	// Step is the explicit tick spacing, or "auto".
	Step AutoFloat `json:"step"`
	// Format is a printf-style pattern applied to every tick label.
	Format string `json:"format"`
	// Pad is the gap between the frame and the tick labels in points.
	Pad *float64 `json:"pad,omitempty"`
	// FontSize is the tick label size in points.
	FontSize *float64 `json:"font_size,omitempty"`
}

// ExplicitTicks reports whether both StartTick and Step are numbers.
func (a Axis) ExplicitTicks() bool {
	return !a.StartTick.Auto && !a.Step.Auto
}
