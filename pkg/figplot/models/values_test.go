package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoFloat(t *testing.T) {
	var v struct {
		A AutoFloat `json:"a"`
		B AutoFloat `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "auto", "b": -2.5}`), &v))
	assert.True(t, v.A.Auto)
	assert.Equal(t, AutoFloat{Value: -2.5}, v.B)

	assert.Error(t, json.Unmarshal([]byte(`{"a": "none"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a": [1]}`), &v))
}

func TestLimits(t *testing.T) {
	var l Limits
	require.NoError(t, json.Unmarshal([]byte(`[0, 2.5]`), &l))
	assert.Equal(t, Limits{Min: 0, Max: 2.5}, l)

	require.NoError(t, json.Unmarshal([]byte(` "auto" `), &l))
	assert.Equal(t, Limits{Auto: true}, l)

	assert.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &l))
}

func TestLabels(t *testing.T) {
	var l Labels
	require.NoError(t, json.Unmarshal([]byte(`["a", "b"]`), &l))
	assert.Equal(t, []string{"a", "b"}, l.Names)
	assert.False(t, l.Auto)

	require.NoError(t, json.Unmarshal([]byte(`"auto"`), &l))
	assert.True(t, l.Auto)
	assert.Nil(t, l.Names)
}

func TestLocation(t *testing.T) {
	tests := []struct {
		in   string
		want Location
	}{
		{`"upper right"`, LocUpperRight},
		{`"Lower Center"`, LocLowerCenter},
		{`0`, LocBest},
		{`10`, LocCenter},
	}
	for _, tt := range tests {
		var l Location
		require.NoError(t, json.Unmarshal([]byte(tt.in), &l), tt.in)
		assert.Equal(t, tt.want, l)
		assert.True(t, l.Valid())
	}

	var l Location
	assert.Error(t, json.Unmarshal([]byte(`11`), &l))
	assert.False(t, Location("top").Valid())
}

func TestMarshalRoundTripsSentinels(t *testing.T) {
	a := Axis{Lim: Limits{Auto: true}, StartTick: AutoFloat{Value: 1}, Step: AutoFloat{Auto: true}}
	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lim":"auto"`)
	assert.Contains(t, string(data), `"start_tick":1`)
	assert.Contains(t, string(data), `"step":"auto"`)
}
