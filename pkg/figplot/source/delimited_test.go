package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		text string
		want rune
	}{
		{"a\tb,c", '\t'},
		{"a,b\nc,d", ','},
		{"a b\n1 2", ' '},
		{"a b,c", ','}, // comma outranks space even when space separates columns
		{"abc", ','},
		{"", ','},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(DetectDelimiter(tt.text)), "DetectDelimiter(%q)", tt.text)
	}
}

func TestParseDelimited(t *testing.T) {
	grid, err := parseDelimited("t\tv1\tv2\n0\t1.5\n1\t2\t\"q\"", '\t')
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"t", "v1", "v2"}, {"0", "1.5"}, {"1", "2", "q"}}, grid)
}

func TestDecodeText(t *testing.T) {
	gbk, err := simplifiedchinese.GB18030.NewEncoder().String("时间,应力\n1,2\n")
	require.NoError(t, err)

	tests := []struct {
		name     string
		data     []byte
		encoding string
		want     string
	}{
		{"utf8 passthrough", []byte("时间,应力"), "auto", "时间,应力"},
		{"bom stripped", append([]byte{0xEF, 0xBB, 0xBF}, "a,b"...), "", "a,b"},
		{"gb18030 detected", []byte(gbk), "auto", "时间,应力\n1,2\n"},
		{"gb18030 forced", []byte(gbk), "gb18030", "时间,应力\n1,2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeText(tt.data, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
