package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/figplot-go/pkg/figplot/models"
)

// Line plots one series as connected segments plus markers. Points with a
// NaN coordinate break the line, as they do in matplotlib.
type Line struct {
	Label    string
	Segments []plotter.XYs

	// LineStyle is used when HasLine is set.
	LineStyle draw.LineStyle
	HasLine   bool
	// Glyph is used when HasMarker is set.
	Glyph     draw.GlyphStyle
	HasMarker bool
}

var (
	_ plot.Plotter     = (*Line)(nil)
	_ plot.DataRanger  = (*Line)(nil)
	_ plot.Thumbnailer = (*Line)(nil)
)

// NewLine splits a series at missing values.
func NewLine(s models.Series) *Line {
	l := &Line{Label: s.Label}
	var cur plotter.XYs
	n := len(s.X)
	if len(s.Y) < n {
		n = len(s.Y)
	}
	for i := 0; i < n; i++ {
		x, y := s.X[i], s.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			if len(cur) > 0 {
				l.Segments = append(l.Segments, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x, Y: y})
	}
	if len(cur) > 0 {
		l.Segments = append(l.Segments, cur)
	}
	return l
}

// Len returns the number of drawable points.
func (l *Line) Len() int {
	n := 0
	for _, seg := range l.Segments {
		n += len(seg)
	}
	return n
}

// Plot implements plot.Plotter.
func (l *Line) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)

	for _, seg := range l.Segments {
		pts := make([]vg.Point, len(seg))
		for i, xy := range seg {
			pts[i] = vg.Point{X: trX(xy.X), Y: trY(xy.Y)}
		}
		if l.HasLine && len(pts) > 1 {
			c.StrokeLines(l.LineStyle, c.ClipLinesXY(pts)...)
		}
		if l.HasMarker {
			for _, pt := range pts {
				if c.Contains(pt) {
					l.Glyph.Shape.DrawGlyph(&c, l.Glyph, pt)
				}
			}
		}
	}
}

// DataRange implements plot.DataRanger.
func (l *Line) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, seg := range l.Segments {
		x0, x1, y0, y1 := plotter.XYRange(seg)
		xmin, xmax = math.Min(xmin, x0), math.Max(xmax, x1)
		ymin, ymax = math.Min(ymin, y0), math.Max(ymax, y1)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer for the legend.
func (l *Line) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	if l.HasLine {
		c.StrokeLine2(l.LineStyle, c.Min.X, y, c.Max.X, y)
	}
	if l.HasMarker {
		l.Glyph.Shape.DrawGlyph(c, l.Glyph, c.Center())
	}
}
