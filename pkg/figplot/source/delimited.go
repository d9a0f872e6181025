package source

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// delimiters are tried in priority order; the first one present wins.
var delimiters = []rune{'\t', ',', ' '}

// DetectDelimiter returns the first of tab, comma and space that occurs in
// text, or comma when none does. Priority beats frequency: "a b,c" is
// treated as comma separated.
func DetectDelimiter(text string) rune {
	for _, d := range delimiters {
		if strings.ContainsRune(text, d) {
			return d
		}
	}
	return ','
}

func parseDelimited(text string, delim rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var grid [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		grid = append(grid, rec)
	}
	return grid, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText converts file bytes to a string. In "auto" mode bytes that are
// not valid UTF-8 are decoded as GB18030, the usual encoding of CSV files
// saved by Chinese-locale spreadsheet programs.
func decodeText(data []byte, encoding string) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	switch strings.ToLower(encoding) {
	case "utf-8", "utf8":
		return string(data), nil
	case "gb18030", "gbk":
		return decodeGB18030(data)
	default:
		if utf8.Valid(data) {
			return string(data), nil
		}
		return decodeGB18030(data)
	}
}

func decodeGB18030(data []byte) (string, error) {
	out, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
