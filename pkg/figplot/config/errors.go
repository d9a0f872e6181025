package config

import (
	"fmt"
)

// ParseError reports a configuration document that is not valid after
// comments and trailing commas are removed.
type ParseError struct {
	// Path is the document path, empty for in-memory documents.
	Path string
	// Offset is the byte offset of the problem, or -1 when unknown.
	Offset int64
	// Line and Column are 1-based, zero when unknown.
	Line, Column int
	Err          error
}

func (e *ParseError) Error() string {
	where := e.Path
	if where == "" {
		where = "config"
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse %s:%d:%d: %v", where, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingKeyError reports an absent required configuration field.
type MissingKeyError struct {
	// Key is the dotted path of the field, e.g. "legend.frame.edgecolor".
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required config key %q", e.Key)
}

// ValueError reports a configuration field whose value cannot be used.
type ValueError struct {
	Key    string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid config value %q: %s", e.Key, e.Reason)
}

// NewValueError creates a new ValueError.
func NewValueError(key, format string, args ...interface{}) *ValueError {
	return &ValueError{Key: key, Reason: fmt.Sprintf(format, args...)}
}

// locate fills Line and Column from Offset using src.
func (e *ParseError) locate(src []byte) {
	if e.Offset < 0 || e.Offset > int64(len(src)) {
		return
	}
	line, col := 1, 1
	for _, c := range src[:e.Offset] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	e.Line, e.Column = line, col
}
