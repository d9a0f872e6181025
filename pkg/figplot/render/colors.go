package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// tab10 is matplotlib's default color cycle, addressed as C0..C9.
var tab10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var tableauNames = map[string]int{
	"tab:blue": 0, "tab:orange": 1, "tab:green": 2, "tab:red": 3, "tab:purple": 4,
	"tab:brown": 5, "tab:pink": 6, "tab:gray": 7, "tab:grey": 7, "tab:olive": 8, "tab:cyan": 9,
}

var baseColors = map[string]color.NRGBA{
	"b": {0, 0, 255, 255},
	"g": {0, 128, 0, 255},
	"r": {255, 0, 0, 255},
	"c": {0, 191, 191, 255},
	"m": {191, 0, 191, 255},
	"y": {191, 191, 0, 255},
	"k": {0, 0, 0, 255},
	"w": {255, 255, 255, 255},
}

// ParseColor parses a matplotlib color specification: "none", a base color
// letter, "C0".."C9", a "tab:" name, a CSS color name, a gray level such as
// "0.5", or #rgb, #rgba, #rrggbb and #rrggbbaa hex strings.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "none":
		return color.NRGBA{}, nil
	case strings.HasPrefix(name, "#"):
		return parseHex(name)
	case len(name) == 2 && name[0] == 'c' && name[1] >= '0' && name[1] <= '9':
		return parseHex(tab10[name[1]-'0'])
	}
	if c, ok := baseColors[name]; ok {
		return c, nil
	}
	if i, ok := tableauNames[name]; ok {
		return parseHex(tab10[i])
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if v, err := strconv.ParseFloat(name, 64); err == nil && v >= 0 && v <= 1 {
		g := uint8(v*255 + 0.5)
		return color.NRGBA{R: g, G: g, B: g, A: 255}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 || len(hex) == 4 {
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// withAlpha scales the alpha channel of c by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
