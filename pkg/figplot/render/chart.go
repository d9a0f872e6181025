package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/figplot-go/internal/log"
	"github.com/ukaji3/figplot-go/pkg/figplot/config"
	"github.com/ukaji3/figplot-go/pkg/figplot/models"
)

// Chart is a styled figure ready for export.
type Chart struct {
	Plot *plot.Plot
	// Width and Height are the figure size.
	Width, Height vg.Length
	// Pad is the blank margin around the plot.
	Pad    vg.Length
	Lines  []*Line
	Legend *Legend
}

// Draw renders the chart onto dc, which should be Width × Height.
func (c *Chart) Draw(dc draw.Canvas) {
	c.Plot.Draw(draw.Crop(dc, c.Pad, -c.Pad, c.Pad, -c.Pad))
}

// Release drops the chart's references. The chart cannot be drawn again.
func (c *Chart) Release() {
	c.Plot = nil
	c.Lines = nil
	c.Legend = nil
}

// Build creates the chart for the selected series. Style values are checked
// here; an unusable one is reported as a *config.ValueError.
func Build(series []models.Series, cfg *models.Config, ctx *Context) (*Chart, error) {
	logger := log.WithComponent("render")

	fontSize := vg.Points(cfg.FontSize)
	p := plot.New()
	p.BackgroundColor = color.White
	applyText(p, ctx, fontSize)

	var legend *Legend
	if cfg.Legend.Visible {
		var err error
		if legend, err = newLegend(cfg.Legend, ctx, fontSize); err != nil {
			return nil, err
		}
	}

	lines := make([]*Line, 0, len(series))
	for i, s := range series {
		line, err := styledLine(s, cfg.DataStyles, i)
		if err != nil {
			return nil, err
		}
		p.Add(line)
		lines = append(lines, line)
		if legend != nil {
			legend.Add(s.Label, line)
		}
	}
	autoRange(&p.X)
	autoRange(&p.Y)

	xEnd := func() float64 { return axisEnd(&p.X) }
	if err := applyAxis(&p.X, "x_axis", cfg.XAxis, ctx, xEnd); err != nil {
		return nil, err
	}
	// The y tick sequence ends at the x-axis end. Kept for compatibility with
	// existing configurations.
	if err := applyAxis(&p.Y, "y_axis", cfg.YAxis, ctx, xEnd); err != nil {
		return nil, err
	}

	p.Add(newFrame())
	if legend != nil {
		p.Add(legend)
	}

	logger.Debug().
		Int("series", len(lines)).
		Floats64("x_range", []float64{p.X.Min, p.X.Max}).
		Floats64("y_range", []float64{p.Y.Min, p.Y.Max}).
		Msg("chart built")

	return &Chart{
		Plot:   p,
		Width:  Centimeters(cfg.FigSize[0]),
		Height: Centimeters(cfg.FigSize[1]),
		Pad:    fontSize * layoutPad,
		Lines:  lines,
		Legend: legend,
	}, nil
}

func applyText(p *plot.Plot, ctx *Context, size vg.Length) {
	for _, sty := range []*plot.Axis{&p.X, &p.Y} {
		sty.Label.TextStyle.Font = ctx.FontAt(size)
		sty.Label.TextStyle.Handler = ctx.Handler
		sty.Tick.Label.Font = ctx.FontAt(size)
		sty.Tick.Label.Handler = ctx.Handler

		// Tick marks and the axis line are drawn by the frame.
		sty.Tick.Length = 0
		sty.Tick.LineStyle = draw.LineStyle{Color: color.Transparent}
		sty.LineStyle = draw.LineStyle{Color: color.Transparent}
		sty.Padding = vg.Points(defaultTickPad)
	}
	p.Title.TextStyle.Font = ctx.FontAt(size)
	p.Title.TextStyle.Handler = ctx.Handler
}

// axisEnd returns the value at the right (or top) end of the axis.
func axisEnd(a *plot.Axis) float64 {
	if _, ok := a.Scale.(plot.InvertedScale); ok {
		return a.Min
	}
	return a.Max
}

// autoRange widens the data range by autoMargin on both sides, as
// matplotlib autoscaling does. An axis without data gets the unit range; a
// single value is widened around itself.
func autoRange(a *plot.Axis) {
	switch {
	case math.IsInf(a.Min, 0) || math.IsInf(a.Max, 0) || a.Min > a.Max:
		a.Min, a.Max = 0, 1
	case a.Min == a.Max:
		if v := math.Abs(a.Min); v < 1e-300 {
			a.Min, a.Max = -autoMargin, autoMargin
		} else {
			a.Min, a.Max = a.Min-autoMargin*v, a.Max+autoMargin*v
		}
	default:
		d := (a.Max - a.Min) * autoMargin
		a.Min, a.Max = a.Min-d, a.Max+d
	}
}

// applyAxis sets the label, limits, ticks and tick label style of one axis.
// tickEnd is read after the limits are applied.
func applyAxis(a *plot.Axis, key string, cfg models.Axis, ctx *Context, tickEnd func() float64) error {
	a.Label.Text = cfg.Label

	if !cfg.Lim.Auto {
		a.Min, a.Max = cfg.Lim.Min, cfg.Lim.Max
		if a.Min > a.Max {
			// gonum keeps Min below Max; a reversed limit flips the scale.
			a.Min, a.Max = a.Max, a.Min
			a.Scale = plot.InvertedScale{Normalizer: a.Scale}
		}
	}

	format, err := ParseTickFormat(cfg.Format)
	if err != nil {
		return config.NewValueError(key+".format", "%v", err)
	}

	if cfg.ExplicitTicks() {
		values, err := Arange(cfg.StartTick.Value, tickEnd(), cfg.Step.Value)
		if err != nil {
			return config.NewValueError(key+".step", "%v", err)
		}
		a.Tick.Marker = constantTicks(values, format)
		// Explicit ticks widen the view so every tick is visible.
		if len(values) > 0 {
			a.Min = math.Min(a.Min, values[0])
			a.Max = math.Max(a.Max, values[len(values)-1])
		}
	} else {
		a.Tick.Marker = formattedTicks{base: plot.DefaultTicks{}, format: format}
	}

	if cfg.Pad != nil {
		a.Padding = vg.Points(*cfg.Pad)
	}
	if cfg.FontSize != nil {
		a.Tick.Label.Font = ctx.FontAt(vg.Points(*cfg.FontSize))
	}
	return nil
}

func styledLine(s models.Series, styles models.DataStyles, i int) (*Line, error) {
	st := styles.At(i)
	key := func(name string, n int) string {
		return fmt.Sprintf("data_styles.%s[%d]", name, i%n)
	}

	col, err := ParseColor(st.Color)
	if err != nil {
		return nil, config.NewValueError(key("colors", len(styles.Colors)), "%v", err)
	}
	width := vg.Points(st.LineWidth)
	dashes, hasLine, err := ParseLineStyle(st.LineStyle, width)
	if err != nil {
		return nil, config.NewValueError(key("linestyles", len(styles.LineStyles)), "%v", err)
	}
	shape, hasMarker, err := ParseMarker(st.Marker)
	if err != nil {
		return nil, config.NewValueError(key("markers", len(styles.Markers)), "%v", err)
	}
	face, err := ParseColor(st.MarkerFaceColor)
	if err != nil {
		return nil, config.NewValueError(key("markerfacecolor", len(styles.MarkerFaceColor)), "%v", err)
	}

	line := NewLine(s)
	line.LineStyle = draw.LineStyle{Color: col, Width: width, Dashes: dashes}
	line.HasLine = hasLine && width > 0
	line.Glyph = draw.GlyphStyle{
		Color:  col,
		Radius: vg.Points(st.MarkerSize / 2),
		Shape:  Marker{Shape: shape, Face: face, Edge: col, EdgeWidth: vg.Points(st.MarkerEdgeWidth)},
	}
	line.HasMarker = hasMarker && st.MarkerSize > 0
	return line, nil
}

func newLegend(cfg models.Legend, ctx *Context, fontSize vg.Length) (*Legend, error) {
	size := fontSize
	if cfg.FontSize != nil {
		size = vg.Points(*cfg.FontSize)
	}

	l := &Legend{
		Loc:       cfg.Loc,
		NCol:      cfg.NCol,
		Anchor:    cfg.Anchor,
		TextStyle: ctx.TextStyle(size),
		Frame:     cfg.Frame.Visible,
	}
	if !cfg.Frame.Visible {
		return l, nil
	}

	edge, err := ParseColor(cfg.Frame.EdgeColor)
	if err != nil {
		return nil, config.NewValueError("legend.frame.edgecolor", "%v", err)
	}
	l.FrameFill = withAlpha(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, cfg.Frame.FrameAlpha)
	l.FrameEdge = withAlpha(edge, cfg.Frame.FrameAlpha)
	l.FrameWidth = vg.Points(cfg.Frame.LineWidth)
	l.Round = size * vg.Length(cfg.Frame.Rounded)
	return l, nil
}
