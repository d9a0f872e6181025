package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataStylesAtCycles(t *testing.T) {
	s := DataStyles{
		Colors:          []string{"red", "blue"},
		LineStyles:      []string{"-", "--", ":"},
		LineWidths:      []float64{1},
		Markers:         []string{"o"},
		MarkerSizes:     []float64{3, 4},
		MarkerFaceColor: []string{"none"},
		MarkerEdgeWidth: []float64{0.5},
	}

	got := s.At(3)
	assert.Equal(t, "blue", got.Color)
	assert.Equal(t, "-", got.LineStyle)
	assert.Equal(t, 1.0, got.LineWidth)
	assert.Equal(t, 4.0, got.MarkerSize)

	colors := make([]string, 5)
	for i := range colors {
		colors[i] = s.At(i).Color
	}
	assert.Equal(t, []string{"red", "blue", "red", "blue", "red"}, colors)
}
