package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestArange(t *testing.T) {
	got, err := Arange(0, 1, 0.25)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, got, 1e-12)

	// The end is included only when the sequence lands within half a step.
	got, err = Arange(0, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6, 9}, got)

	got, err = Arange(0, 10.4, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6, 9}, got)

	got, err = Arange(0, 11, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6, 9, 12}, got)

	got, err = Arange(5, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestArangeErrors(t *testing.T) {
	_, err := Arange(0, 1, 0)
	assert.Error(t, err)

	_, err = Arange(0, 1, -0.5)
	assert.Error(t, err)

	_, err = Arange(0, 1e6, 1)
	assert.ErrorContains(t, err, "limit")
}

func TestFormattedTicksKeepsMinorTicks(t *testing.T) {
	format, err := ParseTickFormat("%.2f")
	require.NoError(t, err)

	ticks := formattedTicks{base: plot.DefaultTicks{}, format: format}.Ticks(0, 1)
	require.NotEmpty(t, ticks)

	var majors int
	for _, tick := range ticks {
		if tick.IsMinor() {
			continue
		}
		majors++
		assert.Equal(t, format.Format(tick.Value), tick.Label)
	}
	assert.NotZero(t, majors)
}

func TestConstantTicks(t *testing.T) {
	format, err := ParseTickFormat("%d")
	require.NoError(t, err)

	ticks := constantTicks([]float64{0, 2.5, 5}, format)
	labels := make([]string, len(ticks))
	for i, tick := range ticks {
		labels[i] = tick.Label
	}
	assert.Equal(t, []string{"0", "2", "5"}, labels)
}
