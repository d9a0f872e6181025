package models

// Series is one plotted line. NaN marks a missing value.
type Series struct {
	// Label is the legend text.
	Label string `json:"label"`
	// XColumn and YColumn are the source column indices.
	XColumn int `json:"x_column"`
	YColumn int `json:"y_column"`
	// X and Y are the full column values.
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}
