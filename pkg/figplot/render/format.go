package render

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var conversionRe = regexp.MustCompile(`%([-+ #0]*)(\d+)?(?:\.(\d+))?([diouxXeEfFgGs%])`)

// TickFormat applies a printf-style pattern with exactly one conversion, in
// the dialect of Python's % operator: %d truncates toward zero, %g defaults
// to six significant digits and %% is a literal percent sign.
type TickFormat struct {
	prefix, suffix string
	verb           string
	kind           byte
}

// ParseTickFormat parses a tick label pattern such as "%.1f" or "%d s".
func ParseTickFormat(pattern string) (TickFormat, error) {
	matches := conversionRe.FindAllStringSubmatchIndex(pattern, -1)

	var conv []int
	for _, m := range matches {
		if pattern[m[8]:m[9]] == "%" {
			continue
		}
		if conv != nil {
			return TickFormat{}, fmt.Errorf("format %q has more than one conversion", pattern)
		}
		conv = m
	}
	if conv == nil {
		return TickFormat{}, fmt.Errorf("format %q has no conversion", pattern)
	}
	if rest := conversionRe.ReplaceAllString(pattern[:conv[0]]+pattern[conv[1]:], ""); strings.Contains(rest, "%") {
		return TickFormat{}, fmt.Errorf("format %q has an incomplete conversion", pattern)
	}

	flags, width, prec, kind := submatch(pattern, conv, 1), submatch(pattern, conv, 2), submatch(pattern, conv, 3), pattern[conv[8]]

	verb := "%" + flags + width
	switch kind {
	case 'd', 'i', 'u':
		verb += "d"
	case 'o', 'x', 'X':
		verb += string(kind)
	case 'g', 'G':
		if prec == "" {
			prec = "6"
		}
		verb += "." + prec + string(kind)
	case 'e', 'E', 'f', 'F':
		if prec != "" {
			verb += "." + prec
		}
		verb += string(kind)
	case 's':
		verb += "s"
	}

	unescape := strings.NewReplacer("%%", "%")
	return TickFormat{
		prefix: unescape.Replace(pattern[:conv[0]]),
		suffix: unescape.Replace(pattern[conv[1]:]),
		verb:   verb,
		kind:   kind,
	}, nil
}

func submatch(s string, m []int, i int) string {
	if m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}

// Format renders v with the pattern.
func (f TickFormat) Format(v float64) string {
	var s string
	switch f.kind {
	case 'd', 'i', 'u', 'o', 'x', 'X':
		s = fmt.Sprintf(f.verb, int64(math.Trunc(v)))
	case 's':
		s = fmt.Sprintf(f.verb, pythonStr(v))
	default:
		s = fmt.Sprintf(f.verb, v)
	}
	return f.prefix + s + f.suffix
}

// pythonStr mimics str(float): integral values keep one decimal.
func pythonStr(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e16 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
