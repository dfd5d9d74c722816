package ccx

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRaw(t *testing.T) {
	assert.Equal(t, "1.5", FromRaw(1500000).String())
	assert.Equal(t, "0.000001", FromRaw(1).String())
	assert.Equal(t, "0", FromRaw(0).String())
}

func TestParseAmount(t *testing.T) {
	cases := map[string]int64{
		"1":        1000000,
		"12.5":     12500000,
		"0.000001": 1,
		"0":        0,
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "-1", "0.0000001"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, in)
	}
}

func TestToRawOverflow(t *testing.T) {
	_, err := ToRaw(decimal.New(math.MaxInt64, 0))
	assert.Error(t, err)

	raw, err := ToRaw(FromRaw(math.MaxInt64))
	require.NoError(t, err)
	assert.EqualValues(t, math.MaxInt64, raw)
}
