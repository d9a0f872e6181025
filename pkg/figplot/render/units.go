// Package render builds styled line charts with gonum/plot.
//
// Sizes in the configuration follow matplotlib conventions: figure size in
// centimeters, fonts, line widths and marker sizes in points, legend spacing
// in multiples of the legend font size.
package render

import "gonum.org/v1/plot/vg"

// Matplotlib legend and tick defaults. Legend spacings are in font-size units.
const (
	tickLength      = 3.5 // points
	tickWidth       = 0.8 // points
	frameWidth      = 0.8 // points
	defaultTickPad  = 3.5 // points
	layoutPad       = 0.5 // font-size units around the figure
	legendBorderPad = 0.4
	legendSpacing   = 0.5
	legendHandleLen = 2.0
	legendTextPad   = 0.8
	legendAxesPad   = 0.5
	legendColSpace  = 2.0
	autoMargin      = 0.05 // fraction of the data range added on each side
)

// Centimeters converts a length in centimeters.
func Centimeters(cm float64) vg.Length {
	return vg.Length(cm) * vg.Centimeter
}
