package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Marker draws a matplotlib-style marker: a filled outline with separate face
// and edge colors, or a stroked cross. It implements draw.GlyphDrawer; the
// glyph radius is half the marker size.
type Marker struct {
	Shape     string
	Face      color.NRGBA
	Edge      color.NRGBA
	EdgeWidth vg.Length
}

var _ draw.GlyphDrawer = Marker{}

// markerShapes lists the supported marker codes and whether they are filled.
var markerShapes = map[string]bool{
	"o": true, ".": true, ",": true, "s": true, "D": true, "d": true,
	"^": true, "v": true, "<": true, ">": true, "p": true, "h": true,
	"H": true, "*": true, "8": true,
	"+": false, "x": false,
}

// ParseMarker validates a marker code. ok is false for "None", "none", " "
// and "" (no marker).
func ParseMarker(s string) (shape string, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return "", false, nil
	}
	if _, found := markerShapes[s]; !found {
		return "", false, fmt.Errorf("unknown marker %q", s)
	}
	return s, true, nil
}

// DrawGlyph implements draw.GlyphDrawer.
func (m Marker) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	var p vg.Path
	switch m.Shape {
	case "o", "8":
		p = circle(pt, r)
	case ".":
		p = circle(pt, r/2)
	case ",":
		p = polygon(pt, vg.Points(0.5), 4, math.Pi/4)
	case "s":
		p = polygon(pt, r*math.Sqrt2, 4, math.Pi/4)
	case "D":
		p = polygon(pt, r*math.Sqrt2/1.2, 4, 0)
	case "d":
		p = scaled(polygon(pt, r, 4, 0), pt, 0.6, 1)
	case "^":
		p = polygon(pt, r, 3, 0)
	case "v":
		p = polygon(pt, r, 3, math.Pi)
	case "<":
		p = polygon(pt, r, 3, math.Pi/2)
	case ">":
		p = polygon(pt, r, 3, -math.Pi/2)
	case "p":
		p = polygon(pt, r, 5, 0)
	case "h":
		p = polygon(pt, r, 6, 0)
	case "H":
		p = polygon(pt, r, 6, math.Pi/6)
	case "*":
		p = star(pt, r)
	case "+":
		m.strokeCross(c, pt, r, 0)
		return
	case "x":
		m.strokeCross(c, pt, r, math.Pi/4)
		return
	default:
		return
	}

	if m.Face.A > 0 {
		c.SetColor(m.Face)
		c.Fill(p)
	}
	if m.Edge.A > 0 && m.EdgeWidth > 0 {
		c.SetLineStyle(draw.LineStyle{Color: m.Edge, Width: m.EdgeWidth})
		c.Stroke(p)
	}
}

func (m Marker) strokeCross(c *draw.Canvas, pt vg.Point, r vg.Length, rot float64) {
	if m.Edge.A == 0 || m.EdgeWidth <= 0 {
		return
	}
	c.SetLineStyle(draw.LineStyle{Color: m.Edge, Width: m.EdgeWidth})
	for _, a := range []float64{rot, rot + math.Pi/2} {
		dx, dy := r*vg.Length(math.Cos(a)), r*vg.Length(math.Sin(a))
		var p vg.Path
		p.Move(vg.Point{X: pt.X - dx, Y: pt.Y - dy})
		p.Line(vg.Point{X: pt.X + dx, Y: pt.Y + dy})
		c.Stroke(p)
	}
}

func circle(pt vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Arc(pt, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// polygon returns a regular polygon with n vertices on a circle of radius r,
// the first vertex pointing up before rotating by rot.
func polygon(pt vg.Point, r vg.Length, n int, rot float64) vg.Path {
	var p vg.Path
	for i := 0; i < n; i++ {
		a := math.Pi/2 + rot + 2*math.Pi*float64(i)/float64(n)
		v := vg.Point{X: pt.X + r*vg.Length(math.Cos(a)), Y: pt.Y + r*vg.Length(math.Sin(a))}
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	return p
}

func star(pt vg.Point, r vg.Length) vg.Path {
	inner := r * 0.381966
	var p vg.Path
	for i := 0; i < 10; i++ {
		rad := r
		if i%2 == 1 {
			rad = inner
		}
		a := math.Pi/2 + math.Pi*float64(i)/5
		v := vg.Point{X: pt.X + rad*vg.Length(math.Cos(a)), Y: pt.Y + rad*vg.Length(math.Sin(a))}
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	return p
}

// scaled stretches a closed polygon path around pt.
func scaled(path vg.Path, pt vg.Point, sx, sy float64) vg.Path {
	out := make(vg.Path, len(path))
	for i, comp := range path {
		comp.Pos = vg.Point{
			X: pt.X + (comp.Pos.X-pt.X)*vg.Length(sx),
			Y: pt.Y + (comp.Pos.Y-pt.Y)*vg.Length(sy),
		}
		out[i] = comp
	}
	return out
}
