package source

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}, order []string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Data": {
			{"Header1", "Header2"},
			{100, 200.5},
			{"Text", 1.0 / 3.0},
		},
		"Other": {{"z"}},
	}, []string{"Data", "Other"})

	table, err := Read(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Header1", "Header2"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, int64(100), table.Rows[0][0])
	assert.Equal(t, 200.5, table.Rows[0][1])
	assert.Equal(t, "Text", table.Rows[1][0])
	assert.InDelta(t, 1.0/3.0, table.Rows[1][1], 1e-12, "raw values must not be rounded by number formats")
}

func TestReadXLSXNamedSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"First":  {{"a"}, {1}},
		"Second": {{"b", "c"}, {2, 3}},
	}, []string{"First", "Second"})

	table, err := Read(path, Options{Sheet: "Second"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, table.Header)

	_, err = Read(path, Options{Sheet: "Missing"})
	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
}
