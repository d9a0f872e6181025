package models

// Table is a header row plus data rows read from a data source.
// Cell values are int64, float64, string, or nil for an empty cell.
type Table struct {
	// Header holds the column names from the first row.
	Header []string `json:"header"`
	// Rows holds the data rows, each exactly len(Header) wide.
	Rows [][]interface{} `json:"rows"`
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.Header)
}

// Column returns the values of column i from every row.
func (t *Table) Column(i int) []interface{} {
	col := make([]interface{}, len(t.Rows))
	for r, row := range t.Rows {
		col[r] = row[i]
	}
	return col
}
