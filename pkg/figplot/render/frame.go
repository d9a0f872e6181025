package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// frame draws the box around the data area with inward major ticks on all
// four sides. The gonum axes only contribute tick labels and axis titles.
type frame struct {
	line draw.LineStyle
	tick draw.LineStyle
	len  vg.Length
}

func newFrame() *frame {
	return &frame{
		line: draw.LineStyle{Color: color.Black, Width: vg.Points(frameWidth)},
		tick: draw.LineStyle{Color: color.Black, Width: vg.Points(tickWidth)},
		len:  vg.Points(tickLength),
	}
}

// Plot implements plot.Plotter.
func (f *frame) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)

	for _, t := range majorTicks(&p.X) {
		x := trX(t)
		c.StrokeLine2(f.tick, x, c.Min.Y, x, c.Min.Y+f.len)
		c.StrokeLine2(f.tick, x, c.Max.Y, x, c.Max.Y-f.len)
	}
	for _, t := range majorTicks(&p.Y) {
		y := trY(t)
		c.StrokeLine2(f.tick, c.Min.X, y, c.Min.X+f.len, y)
		c.StrokeLine2(f.tick, c.Max.X, y, c.Max.X-f.len, y)
	}

	c.StrokeLines(f.line, []vg.Point{
		c.Min,
		{X: c.Max.X, Y: c.Min.Y},
		c.Max,
		{X: c.Min.X, Y: c.Max.Y},
		c.Min,
	})
}

// majorTicks returns the labeled tick values inside the axis range.
func majorTicks(a *plot.Axis) []float64 {
	var values []float64
	for _, t := range a.Tick.Marker.Ticks(a.Min, a.Max) {
		if t.IsMinor() || t.Value < a.Min || t.Value > a.Max {
			continue
		}
		values = append(values, t.Value)
	}
	return values
}
