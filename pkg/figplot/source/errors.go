package source

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a data file extension other than .csv or .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported data file format")

// ErrEmpty indicates a data source without a header row.
var ErrEmpty = errors.New("no data")

// FormatError reports data that cannot be read as a table.
type FormatError struct {
	Source string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("data source %q (%s): %v", e.Source, e.Reason, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
