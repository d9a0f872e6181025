// Package source reads the tabular data that figplot plots.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/figplot-go/internal/log"
	"github.com/ukaji3/figplot-go/pkg/figplot/models"
)

// Clipboard is the data_file token that selects the system clipboard.
const Clipboard = "clipboard"

// Options configures how a data source is read.
type Options struct {
	// Sheet is the xlsx sheet name; empty selects the first sheet.
	Sheet string
	// Range is an optional A1-style range ("B2:E40") applied before the
	// header row is taken.
	Range string
	// Encoding of delimited text files: "auto", "utf-8" or "gb18030".
	Encoding string
	// Clipboard provides clipboard text. Nil uses the system clipboard.
	Clipboard ClipboardReader
}

// Read loads the table described by source: a .csv or .xlsx path, or the
// literal "clipboard". The first row becomes the header.
func Read(source string, opts Options) (*models.Table, error) {
	logger := log.WithComponent("source")

	var (
		grid [][]string
		err  error
	)
	switch {
	case source == Clipboard:
		grid, err = readClipboard(opts.Clipboard)
	case strings.EqualFold(filepath.Ext(source), ".csv"):
		grid, err = readCSV(source, opts.Encoding)
	case strings.EqualFold(filepath.Ext(source), ".xlsx"):
		grid, err = readXLSX(source, opts.Sheet)
	default:
		return nil, &FormatError{Source: source, Reason: fmt.Sprintf("extension %q", filepath.Ext(source)), Err: ErrUnsupportedFormat}
	}
	if err != nil {
		return nil, err
	}

	if opts.Range != "" {
		if grid, err = cropRange(grid, opts.Range); err != nil {
			return nil, &FormatError{Source: source, Reason: "data_range", Err: err}
		}
	}

	table, err := buildTable(grid)
	if err != nil {
		return nil, &FormatError{Source: source, Reason: "table", Err: err}
	}
	logger.Debug().Str("source", source).Int("columns", table.NumColumns()).Int("rows", len(table.Rows)).Msg("table read")
	return table, nil
}

func readCSV(path, encoding string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	text, err := decodeText(data, encoding)
	if err != nil {
		return nil, &FormatError{Source: path, Reason: "decode text", Err: err}
	}
	grid, err := parseDelimited(text, ',')
	if err != nil {
		return nil, &FormatError{Source: path, Reason: "parse csv", Err: err}
	}
	return grid, nil
}
