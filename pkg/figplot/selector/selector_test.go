package selector

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/figplot-go/pkg/figplot/models"
)

func fiveColumns() *models.Table {
	return &models.Table{
		Header: []string{"t", "a", "b", "c", "d"},
		Rows: [][]interface{}{
			{int64(0), 1.0, int64(2), 3.0, 4.0},
			{int64(1), 1.5, nil, 3.5, 4.5},
		},
	}
}

func TestValidPrefix(t *testing.T) {
	assert.Equal(t, 2, ValidPrefix([]int{0, 1, 6}, 5))
	assert.Equal(t, 1, ValidPrefix([]int{4, 5, 0}, 5), "stops at the first invalid index")
	assert.Equal(t, 0, ValidPrefix(nil, 5))
	assert.Equal(t, 0, ValidPrefix([]int{-1, 0}, 5))
}

func TestSelectPrefixCount(t *testing.T) {
	series, err := Select(fiveColumns(), models.DataColumns{
		XColumnIndices: []int{0, 1, 6},
		YColumnIndices: []int{2, 3, 4},
		Labels:         models.Labels{Auto: true},
	})
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "b", series[0].Label)
	assert.Equal(t, "c", series[1].Label)
	assert.Equal(t, 1, series[1].XColumn)
	assert.Equal(t, 3, series[1].YColumn)
}

func TestSelectValues(t *testing.T) {
	series, err := Select(fiveColumns(), models.DataColumns{
		XColumnIndices: []int{0, 0},
		YColumnIndices: []int{2, 4, 3},
		Labels:         models.Labels{Names: []string{"first"}},
	})
	require.NoError(t, err)

	want := []models.Series{
		{Label: "first", XColumn: 0, YColumn: 2, X: []float64{0, 1}, Y: []float64{2, math.NaN()}},
		{Label: "", XColumn: 0, YColumn: 4, X: []float64{0, 1}, Y: []float64{4, 4.5}},
	}
	if diff := cmp.Diff(want, series, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("Select() mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectNonNumeric(t *testing.T) {
	table := fiveColumns()
	table.Rows[1][3] = "n/a"

	_, err := Select(table, models.DataColumns{
		XColumnIndices: []int{0},
		YColumnIndices: []int{3},
		Labels:         models.Labels{Auto: true},
	})
	var ce *CellError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 3, ce.Column)
	assert.Equal(t, 2, ce.Row)
	assert.Equal(t, "c", ce.Header)
}
