package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX returns the raw cell grid of a sheet. Cell values are read
// unformatted so number formats do not round the plotted data.
func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &FormatError{Source: path, Reason: "workbook has no sheets", Err: ErrEmpty}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &FormatError{Source: path, Reason: fmt.Sprintf("sheet %q", sheet), Err: err}
	}
	return rows, nil
}
