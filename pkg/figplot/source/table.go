package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/figplot-go/pkg/figplot/models"
)

// buildTable turns a ragged cell grid into a Table. Rows without cells are
// skipped; the first remaining row is the header. The table is as wide as the
// widest row. Unnamed columns get the "Unnamed: <i>" header, short rows are
// padded with empty cells.
func buildTable(grid [][]string) (*models.Table, error) {
	grid = dropBlankRows(grid)
	if len(grid) == 0 {
		return nil, ErrEmpty
	}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}

	header := make([]string, width)
	for i := range header {
		if i < len(grid[0]) {
			header[i] = strings.TrimSpace(grid[0][i])
		}
		if header[i] == "" {
			header[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}

	rows := make([][]interface{}, 0, len(grid)-1)
	for _, rec := range grid[1:] {
		row := make([]interface{}, width)
		for i, cell := range rec {
			row[i] = parseValue(cell)
		}
		rows = append(rows, row)
	}

	return &models.Table{Header: header, Rows: rows}, nil
}

// dropBlankRows removes rows with no cells, which is how spreadsheets report
// empty rows. Rows of empty strings are kept as missing values.
func dropBlankRows(grid [][]string) [][]string {
	out := grid[:0:0]
	for _, row := range grid {
		if len(row) > 0 {
			out = append(out, row)
		}
	}
	return out
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, nil for blank cells, or
// the trimmed string.
func parseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
