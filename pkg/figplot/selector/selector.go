// Package selector maps configured column indices to plotted series.
package selector

import (
	"fmt"
	"math"

	"github.com/ukaji3/figplot-go/pkg/figplot/models"
)

// CellError reports a non-numeric cell in a plotted column.
type CellError struct {
	Column int
	Header string
	// Row is the 1-based data row, not counting the header.
	Row   int
	Value interface{}
}

func (e *CellError) Error() string {
	return fmt.Sprintf("column %d (%q) row %d: %v is not a number", e.Column, e.Header, e.Row, e.Value)
}

// ValidPrefix counts the leading indices that address an existing column of
// a table with ncol columns. Counting stops at the first out-of-range index.
func ValidPrefix(indices []int, ncol int) int {
	n := 0
	for _, i := range indices {
		if i < 0 || i >= ncol {
			break
		}
		n++
	}
	return n
}

// Count returns the number of series the configuration yields for table.
func Count(table *models.Table, cols models.DataColumns) int {
	ncol := table.NumColumns()
	nx := ValidPrefix(cols.XColumnIndices, ncol)
	ny := ValidPrefix(cols.YColumnIndices, ncol)
	if nx < ny {
		return nx
	}
	return ny
}

// Select builds the series. With automatic labels each series is named
// after its Y column header; otherwise the explicit labels are used in order
// and a missing label is left empty.
func Select(table *models.Table, cols models.DataColumns) ([]models.Series, error) {
	n := Count(table, cols)

	series := make([]models.Series, n)
	for i := 0; i < n; i++ {
		xi, yi := cols.XColumnIndices[i], cols.YColumnIndices[i]

		x, err := floats(table, xi)
		if err != nil {
			return nil, err
		}
		y, err := floats(table, yi)
		if err != nil {
			return nil, err
		}

		var label string
		switch {
		case cols.Labels.Auto:
			label = table.Header[yi]
		case i < len(cols.Labels.Names):
			label = cols.Labels.Names[i]
		}

		series[i] = models.Series{Label: label, XColumn: xi, YColumn: yi, X: x, Y: y}
	}
	return series, nil
}

// floats converts column i to numbers. Empty cells become NaN.
func floats(table *models.Table, i int) ([]float64, error) {
	col := table.Column(i)
	out := make([]float64, len(col))
	for r, v := range col {
		switch v := v.(type) {
		case nil:
			out[r] = math.NaN()
		case int64:
			out[r] = float64(v)
		case float64:
			out[r] = v
		default:
			return nil, &CellError{Column: i, Header: table.Header[i], Row: r + 1, Value: v}
		}
	}
	return out, nil
}
