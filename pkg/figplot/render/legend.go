package render

import (
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/figplot-go/pkg/figplot/models"
)

// LegendEntry is one row of the legend.
type LegendEntry struct {
	Label string
	Thumb plot.Thumbnailer
}

// Legend draws legend entries in columns inside an optional rounded frame.
// It is added to the plot after the data so it is painted on top.
type Legend struct {
	Entries []LegendEntry
	Loc     models.Location
	NCol    int
	// Anchor, when set, is the [x, y] point in axes fractions that Loc
	// refers to.
	Anchor    []float64
	TextStyle text.Style

	Frame      bool
	FrameFill  color.NRGBA
	FrameEdge  color.NRGBA
	FrameWidth vg.Length
	// Round is both the frame padding and its corner radius.
	Round vg.Length
}

var _ plot.Plotter = (*Legend)(nil)

// Add appends an entry unless the label is empty or starts with an
// underscore, the matplotlib convention for hidden entries.
func (l *Legend) Add(label string, thumb plot.Thumbnailer) {
	if label == "" || strings.HasPrefix(label, "_") {
		return
	}
	l.Entries = append(l.Entries, LegendEntry{Label: label, Thumb: thumb})
}

// em converts font-size units to a length.
func (l *Legend) em(v float64) vg.Length {
	return l.TextStyle.Font.Size * vg.Length(v)
}

// columns splits the entries column-major; the first len%ncol columns get
// one extra row.
func (l *Legend) columns() [][]LegendEntry {
	ncol := l.NCol
	if ncol < 1 {
		ncol = 1
	}
	if ncol > len(l.Entries) {
		ncol = len(l.Entries)
	}
	if ncol == 0 {
		return nil
	}
	rows, large := len(l.Entries)/ncol, len(l.Entries)%ncol

	cols := make([][]LegendEntry, 0, ncol)
	next := 0
	for j := 0; j < ncol; j++ {
		n := rows
		if j < large {
			n++
		}
		cols = append(cols, l.Entries[next:next+n])
		next += n
	}
	return cols
}

// Size returns the legend box size without the frame padding, and the row
// height.
func (l *Legend) Size() (w, h, rowH vg.Length) {
	cols := l.columns()
	if len(cols) == 0 {
		return 0, 0, 0
	}
	for _, e := range l.Entries {
		rowH = vg.Length(math.Max(float64(rowH), float64(l.TextStyle.Height(e.Label))))
	}

	w = 2 * l.em(legendBorderPad)
	for j, col := range cols {
		w += l.columnWidth(col)
		if j > 0 {
			w += l.em(legendColSpace)
		}
	}
	nrows := vg.Length(len(cols[0]))
	h = 2*l.em(legendBorderPad) + nrows*rowH + (nrows-1)*l.em(legendSpacing)
	return w, h, rowH
}

func (l *Legend) columnWidth(col []LegendEntry) vg.Length {
	var widest vg.Length
	for _, e := range col {
		if tw := l.TextStyle.Width(e.Label); tw > widest {
			widest = tw
		}
	}
	return l.em(legendHandleLen) + l.em(legendTextPad) + widest
}

// Rect returns the legend box inside the data canvas c.
func (l *Legend) Rect(c draw.Canvas) vg.Rectangle {
	w, h, _ := l.Size()

	// The reference box is the whole data area, or a zero-sized box at the
	// anchor point; the legend sits inside it, inset by the axes pad.
	box := c.Rectangle
	if len(l.Anchor) == 2 {
		pt := vg.Point{
			X: c.Min.X + vg.Length(l.Anchor[0])*(c.Max.X-c.Min.X),
			Y: c.Min.Y + vg.Length(l.Anchor[1])*(c.Max.Y-c.Min.Y),
		}
		box = vg.Rectangle{Min: pt, Max: pt}
	}
	pad := l.em(legendAxesPad)
	box.Min.X += pad
	box.Min.Y += pad
	box.Max.X -= pad
	box.Max.Y -= pad

	ha, va := locationAlign(l.Loc)
	var min vg.Point
	switch ha {
	case alignLow:
		min.X = box.Min.X
	case alignHigh:
		min.X = box.Max.X - w
	default:
		min.X = (box.Min.X+box.Max.X)/2 - w/2
	}
	switch va {
	case alignLow:
		min.Y = box.Min.Y
	case alignHigh:
		min.Y = box.Max.Y - h
	default:
		min.Y = (box.Min.Y+box.Max.Y)/2 - h/2
	}
	return vg.Rectangle{Min: min, Max: vg.Point{X: min.X + w, Y: min.Y + h}}
}

// Plot implements plot.Plotter.
func (l *Legend) Plot(c draw.Canvas, _ *plot.Plot) {
	cols := l.columns()
	if len(cols) == 0 {
		return
	}
	rect := l.Rect(c)
	_, _, rowH := l.Size()

	if l.Frame {
		outer := vg.Rectangle{
			Min: vg.Point{X: rect.Min.X - l.Round, Y: rect.Min.Y - l.Round},
			Max: vg.Point{X: rect.Max.X + l.Round, Y: rect.Max.Y + l.Round},
		}
		path := roundedRect(outer, l.Round)
		if l.FrameFill.A > 0 {
			c.SetColor(l.FrameFill)
			c.Fill(path)
		}
		if l.FrameEdge.A > 0 && l.FrameWidth > 0 {
			c.SetLineStyle(draw.LineStyle{Color: l.FrameEdge, Width: l.FrameWidth})
			c.Stroke(path)
		}
	}

	x := rect.Min.X + l.em(legendBorderPad)
	for _, col := range cols {
		y := rect.Max.Y - l.em(legendBorderPad) - rowH/2
		for _, e := range col {
			thumb := draw.Canvas{
				Canvas: c.Canvas,
				Rectangle: vg.Rectangle{
					Min: vg.Point{X: x, Y: y - rowH/2},
					Max: vg.Point{X: x + l.em(legendHandleLen), Y: y + rowH/2},
				},
			}
			e.Thumb.Thumbnail(&thumb)
			c.FillText(l.TextStyle, vg.Point{X: x + l.em(legendHandleLen) + l.em(legendTextPad), Y: y}, e.Label)
			y -= rowH + l.em(legendSpacing)
		}
		x += l.columnWidth(col) + l.em(legendColSpace)
	}
}

type align int

const (
	alignCenter align = iota
	alignLow
	alignHigh
)

// locationAlign maps a legend location to horizontal and vertical alignment.
// "best" is treated as "upper right".
func locationAlign(loc models.Location) (h, v align) {
	switch loc {
	case models.LocUpperLeft:
		return alignLow, alignHigh
	case models.LocLowerLeft:
		return alignLow, alignLow
	case models.LocLowerRight:
		return alignHigh, alignLow
	case models.LocRight, models.LocCenterRight:
		return alignHigh, alignCenter
	case models.LocCenterLeft:
		return alignLow, alignCenter
	case models.LocLowerCenter:
		return alignCenter, alignLow
	case models.LocUpperCenter:
		return alignCenter, alignHigh
	case models.LocCenter:
		return alignCenter, alignCenter
	default:
		return alignHigh, alignHigh
	}
}

// roundedRect returns a closed rectangle path with corner radius r.
func roundedRect(rect vg.Rectangle, r vg.Length) vg.Path {
	maxR := vg.Length(math.Min(float64(rect.Max.X-rect.Min.X), float64(rect.Max.Y-rect.Min.Y))) / 2
	if r > maxR {
		r = maxR
	}
	var p vg.Path
	if r <= 0 {
		p.Move(rect.Min)
		p.Line(vg.Point{X: rect.Max.X, Y: rect.Min.Y})
		p.Line(rect.Max)
		p.Line(vg.Point{X: rect.Min.X, Y: rect.Max.Y})
		p.Close()
		return p
	}
	p.Move(vg.Point{X: rect.Min.X + r, Y: rect.Min.Y})
	p.Line(vg.Point{X: rect.Max.X - r, Y: rect.Min.Y})
	p.Arc(vg.Point{X: rect.Max.X - r, Y: rect.Min.Y + r}, r, -math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: rect.Max.X, Y: rect.Max.Y - r})
	p.Arc(vg.Point{X: rect.Max.X - r, Y: rect.Max.Y - r}, r, 0, math.Pi/2)
	p.Line(vg.Point{X: rect.Min.X + r, Y: rect.Max.Y})
	p.Arc(vg.Point{X: rect.Min.X + r, Y: rect.Max.Y - r}, r, math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: rect.Min.X, Y: rect.Min.Y + r})
	p.Arc(vg.Point{X: rect.Min.X + r, Y: rect.Min.Y + r}, r, math.Pi, math.Pi/2)
	p.Close()
	return p
}
