package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// maxTicks bounds an explicit tick sequence.
const maxTicks = 1000

// formattedTicks relabels the major ticks of another ticker.
type formattedTicks struct {
	base   plot.Ticker
	format TickFormat
}

// Ticks implements plot.Ticker.
func (t formattedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.base.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = t.format.Format(ticks[i].Value)
		}
	}
	return ticks
}

// Arange returns start, start+step, ... for every value below end+step/2,
// so end itself is included when the sequence lands on it.
func Arange(start, end, step float64) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("tick step must be positive and finite, got %v", step)
	}
	stop := end + step*0.5
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil, nil
	}
	if n > maxTicks {
		return nil, fmt.Errorf("%d ticks from %v to %v by %v, limit is %d", n, start, end, step, maxTicks)
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	return values, nil
}

// constantTicks labels fixed tick positions.
func constantTicks(values []float64, format TickFormat) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: format.Format(v)}
	}
	return ticks
}
