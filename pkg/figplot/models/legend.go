package models

// Legend configures the legend box.
type Legend struct {
	// Visible toggles the legend.
	Visible bool `json:"visible"`
	// Loc is a matplotlib location name or code.
	Loc Location `json:"loc"`
	// NCol is the number of entry columns.
	NCol int `json:"ncol"`
	// Frame styles the box around the entries.
	Frame LegendFrame `json:"frame"`
	// Anchor is an optional [x, y] point in axes fractions that Loc refers to.
	Anchor []float64 `json:"anchor,omitempty"`
	// FontSize overrides the global font size for entries.
	FontSize *float64 `json:"font_size,omitempty"`
}

// LegendFrame styles the legend frame.
type LegendFrame struct {
	Visible    bool    `json:"visible"`
	FrameAlpha float64 `json:"framealpha"`
	EdgeColor  string  `json:"edgecolor"`
	LineWidth  float64 `json:"linewidth"`
	// Rounded is the corner rounding in font-size units.
	Rounded float64 `json:"rounded"`
}
