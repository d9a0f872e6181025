package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"Blue", color.NRGBA{0, 0, 255, 255}},
		{"k", color.NRGBA{0, 0, 0, 255}},
		{"g", color.NRGBA{0, 128, 0, 255}},
		{"C0", color.NRGBA{0x1f, 0x77, 0xb4, 255}},
		{"tab:orange", color.NRGBA{0xff, 0x7f, 0x0e, 255}},
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#00ff0080", color.NRGBA{0, 255, 0, 128}},
		{"0.5", color.NRGBA{128, 128, 128, 255}},
		{"none", color.NRGBA{}},
		{" None ", color.NRGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "#gggggg", "1.5", "C10"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, color.NRGBA{255, 255, 255, 204}, withAlpha(color.NRGBA{255, 255, 255, 255}, 0.8))
	assert.Equal(t, uint8(0), withAlpha(color.NRGBA{A: 255}, 0).A)
}
