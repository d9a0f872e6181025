package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellRange holds 1-based inclusive cell coordinates.
type cellRange struct {
	R1, C1, R2, C2 int
}

// parseRange parses a range string like $B$2:$E$40. A sheet prefix
// ('Sheet 1'!A1:B2) is accepted and ignored.
func parseRange(rangeStr string) (cellRange, error) {
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return cellRange{}, fmt.Errorf("range %q: want <start>:<end>", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return cellRange{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return cellRange{}, err
	}
	if endRow < startRow || endCol < startCol {
		return cellRange{}, fmt.Errorf("range %q: end precedes start", rangeStr)
	}

	return cellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// cropRange returns the part of grid inside rangeStr. Cells missing from a
// ragged grid stay missing; rows past the end of the grid are dropped.
func cropRange(grid [][]string, rangeStr string) ([][]string, error) {
	area, err := parseRange(rangeStr)
	if err != nil {
		return nil, err
	}

	var out [][]string
	for r := area.R1 - 1; r < area.R2 && r < len(grid); r++ {
		row := grid[r]
		lo, hi := area.C1-1, area.C2
		if hi > len(row) {
			hi = len(row)
		}
		if lo > hi {
			lo = hi
		}
		out = append(out, append([]string(nil), row[lo:hi]...))
	}
	return out, nil
}
