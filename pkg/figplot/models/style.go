package models

// DataStyles holds per-series style arrays. Series i uses element i mod len.
type DataStyles struct {
	Colors          []string  `json:"colors"`
	LineStyles      []string  `json:"linestyles"`
	LineWidths      []float64 `json:"linewidths"`
	Markers         []string  `json:"markers"`
	MarkerSizes     []float64 `json:"markersizes"`
	MarkerFaceColor []string  `json:"markerfacecolor"`
	MarkerEdgeWidth []float64 `json:"markeredgewidth"`
}

// SeriesStyle is the resolved style of a single series.
type SeriesStyle struct {
	Color           string
	LineStyle       string
	LineWidth       float64
	Marker          string
	MarkerSize      float64
	MarkerFaceColor string
	MarkerEdgeWidth float64
}

// At resolves the style of series i. Every array must be non-empty.
func (s DataStyles) At(i int) SeriesStyle {
	return SeriesStyle{
		Color:           cycle(s.Colors, i),
		LineStyle:       cycle(s.LineStyles, i),
		LineWidth:       cycle(s.LineWidths, i),
		Marker:          cycle(s.Markers, i),
		MarkerSize:      cycle(s.MarkerSizes, i),
		MarkerFaceColor: cycle(s.MarkerFaceColor, i),
		MarkerEdgeWidth: cycle(s.MarkerEdgeWidth, i),
	}
}

func cycle[T any](values []T, i int) T {
	return values[i%len(values)]
}
