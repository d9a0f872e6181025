package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Auto is the sentinel string meaning "let the renderer decide".
const Auto = "auto"

// AutoFloat is a number or the string "auto".
type AutoFloat struct {
	Value float64
	Auto  bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AutoFloat) UnmarshalJSON(data []byte) error {
	if ok, err := isAuto(data); ok || err != nil {
		*a = AutoFloat{Auto: ok}
		return err
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("want a number or %q, got %s", Auto, data)
	}
	*a = AutoFloat{Value: v}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a AutoFloat) MarshalJSON() ([]byte, error) {
	if a.Auto {
		return json.Marshal(Auto)
	}
	return json.Marshal(a.Value)
}

// Limits is an axis range [Min, Max] or "auto".
type Limits struct {
	Min, Max float64
	Auto     bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Limits) UnmarshalJSON(data []byte) error {
	if ok, err := isAuto(data); ok || err != nil {
		*l = Limits{Auto: ok}
		return err
	}
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil || len(v) != 2 {
		return fmt.Errorf("want [min, max] or %q, got %s", Auto, data)
	}
	*l = Limits{Min: v[0], Max: v[1]}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l Limits) MarshalJSON() ([]byte, error) {
	if l.Auto {
		return json.Marshal(Auto)
	}
	return json.Marshal([]float64{l.Min, l.Max})
}

// Labels is an explicit list of series labels or "auto".
type Labels struct {
	Names []string
	Auto  bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Labels) UnmarshalJSON(data []byte) error {
	if ok, err := isAuto(data); ok || err != nil {
		*l = Labels{Auto: ok}
		return err
	}
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("want a list of strings or %q, got %s", Auto, data)
	}
	*l = Labels{Names: v}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l Labels) MarshalJSON() ([]byte, error) {
	if l.Auto {
		return json.Marshal(Auto)
	}
	return json.Marshal(l.Names)
}

// isAuto reports whether data is the JSON string "auto". Any other string is
// an error; non-strings return false so the caller can try its own type.
func isAuto(data []byte) (bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return false, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return false, err
	}
	if s != Auto {
		return false, fmt.Errorf("unexpected string %q, only %q is accepted", s, Auto)
	}
	return true, nil
}

// Location is a legend position, stored as its matplotlib name.
type Location string

// Legend locations.
const (
	LocBest        Location = "best"
	LocUpperRight  Location = "upper right"
	LocUpperLeft   Location = "upper left"
	LocLowerLeft   Location = "lower left"
	LocLowerRight  Location = "lower right"
	LocRight       Location = "right"
	LocCenterLeft  Location = "center left"
	LocCenterRight Location = "center right"
	LocLowerCenter Location = "lower center"
	LocUpperCenter Location = "upper center"
	LocCenter      Location = "center"
)

// locationCodes is indexed by the matplotlib numeric location code.
var locationCodes = []Location{
	LocBest, LocUpperRight, LocUpperLeft, LocLowerLeft, LocLowerRight, LocRight,
	LocCenterLeft, LocCenterRight, LocLowerCenter, LocUpperCenter, LocCenter,
}

// UnmarshalJSON accepts a location name or a numeric code.
func (l *Location) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err == nil {
		if code < 0 || code >= len(locationCodes) {
			return fmt.Errorf("legend location code %d out of range", code)
		}
		*l = locationCodes[code]
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("want a location name or code, got %s", data)
	}
	*l = Location(strings.ToLower(strings.TrimSpace(name)))
	return nil
}

// Valid reports whether l is a known location.
func (l Location) Valid() bool {
	for _, known := range locationCodes {
		if l == known {
			return true
		}
	}
	return false
}
