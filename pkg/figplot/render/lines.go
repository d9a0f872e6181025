package render

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Dash patterns in multiples of the line width, as matplotlib scales them.
var dashPatterns = map[string][]float64{
	"solid":   nil,
	"dashed":  {3.7, 1.6},
	"dashdot": {6.4, 1.6, 1, 1.6},
	"dotted":  {1, 1.65},
}

var lineStyleAliases = map[string]string{
	"-":  "solid",
	"--": "dashed",
	"-.": "dashdot",
	":":  "dotted",
}

// ParseLineStyle returns the dash pattern for a matplotlib line style at the
// given width. ok is false for "None", "none", " " and "" (no line).
func ParseLineStyle(s string, width vg.Length) (dashes []vg.Length, ok bool, err error) {
	name := strings.TrimSpace(s)
	switch strings.ToLower(name) {
	case "", "none":
		return nil, false, nil
	}
	if alias, found := lineStyleAliases[name]; found {
		name = alias
	}
	pattern, found := dashPatterns[strings.ToLower(name)]
	if !found {
		return nil, false, fmt.Errorf("unknown line style %q", s)
	}
	for _, p := range pattern {
		dashes = append(dashes, vg.Length(p)*width)
	}
	return dashes, true, nil
}
