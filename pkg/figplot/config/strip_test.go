package config

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]interface{}
	}{
		{
			name: "line comments",
			in:   "{\n\"a\": 1, // one\n\"b\": 2 // two\n}",
			want: map[string]interface{}{"a": 1.0, "b": 2.0},
		},
		{
			name: "block comment spanning lines",
			in:   "{/* first\nsecond */\"a\": [1, /* x */ 2]}",
			want: map[string]interface{}{"a": []interface{}{1.0, 2.0}},
		},
		{
			name: "trailing commas",
			in:   "{\"a\": [1, 2, ],\n\"b\": {\"c\": 3,\n},\n}",
			want: map[string]interface{}{"a": []interface{}{1.0, 2.0}, "b": map[string]interface{}{"c": 3.0}},
		},
		{
			name: "comma before comment before brace",
			in:   "{\"a\": 1, // last\n}",
			want: map[string]interface{}{"a": 1.0},
		},
		{
			name: "markers inside strings survive",
			in:   `{"url": "http://example.com/*x*/", "s": "a,]", "q": "say \"//\""}`,
			want: map[string]interface{}{"url": "http://example.com/*x*/", "s": "a,]", "q": `say "//"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Strip([]byte(tt.in))
			require.NoError(t, err)
			assert.Len(t, out, len(tt.in), "offsets must be preserved")
			assert.Equal(t, strings.Count(tt.in, "\n"), strings.Count(string(out), "\n"))

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(out, &got), "cleaned: %s", out)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripRemovesComments(t *testing.T) {
	in := "{\"a\": 1, // gone\n/* also gone */ \"b\": [2,],}"
	out, err := Strip([]byte(in))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "gone")
	assert.NotContains(t, string(out), "//")
	assert.NotContains(t, string(out), "/*")
	assert.NotRegexp(t, `,\s*[}\]]`, string(out))
}

func TestStripUnterminatedComment(t *testing.T) {
	_, err := Strip([]byte("{\"a\": 1 /* open"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedComment))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.EqualValues(t, 8, pe.Offset)
}
