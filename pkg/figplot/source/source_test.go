package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

type failingClipboard struct{}

func (failingClipboard) ReadAll() (string, error) {
	return "", errors.New("no clipboard utility")
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("time,load,strain\n0,1.5,0.1\n1,,0.2\n2,3.5,0.3\n"))

	table, err := Read(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "load", "strain"}, table.Header)
	assert.Equal(t, []interface{}{int64(0), int64(1), int64(2)}, table.Column(0))
	assert.Equal(t, []interface{}{1.5, nil, 3.5}, table.Column(1))
}

func TestReadCSVUpperCaseExtension(t *testing.T) {
	path := writeFile(t, "DATA.CSV", []byte("a,b\n1,2\n"))
	table, err := Read(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, table.NumColumns())
}

func TestReadCSVGB18030(t *testing.T) {
	data, err := simplifiedchinese.GB18030.NewEncoder().String("时间,应力\n0,1\n")
	require.NoError(t, err)
	path := writeFile(t, "gbk.csv", []byte(data))

	table, err := Read(path, Options{Encoding: "auto"})
	require.NoError(t, err)
	assert.Equal(t, []string{"时间", "应力"}, table.Header)
}

func TestReadCSVRange(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("title,,\n,x,y\n,1,2\n,3,4\n"))
	table, err := Read(path, Options{Range: "B2:C4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, table.Header)
	assert.Len(t, table.Rows, 2)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "none.csv"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadUnsupportedFormat(t *testing.T) {
	_, err := Read("data.xls", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "data.xls", fe.Source)
}

func TestReadClipboard(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		header []string
		rows   int
	}{
		{"tab separated", "\n x\ty1\ty2\n0\t1\t2\n1\t3\t4\n\n", []string{"x", "y1", "y2"}, 2},
		{"comma separated", "x,y\n0,1", []string{"x", "y"}, 1},
		{"space separated", "x y\n0 1\n2 3", []string{"x", "y"}, 2},
		{"tab wins over comma", "a\tb,c\n1\t2", []string{"a", "b,c"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Read(Clipboard, Options{Clipboard: ClipboardText(tt.text)})
			require.NoError(t, err)
			assert.Equal(t, tt.header, table.Header)
			assert.Len(t, table.Rows, tt.rows)
		})
	}
}

func TestReadClipboardErrors(t *testing.T) {
	_, err := Read(Clipboard, Options{Clipboard: ClipboardText(" \n\t ")})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Read(Clipboard, Options{Clipboard: failingClipboard{}})
	assert.ErrorContains(t, err, "read clipboard")
}
