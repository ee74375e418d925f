package delta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/delta"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]int64{
		{},
		{100},
		{100, 101, 102, 103},
		{5, 3, 1, -10, -10, 1000},
		{-5, -5, -5},
	}

	for _, xs := range cases {
		deltas := delta.Encode(xs)
		got := delta.Decode(deltas)
		require.Equal(t, xs, got)
	}
}

func TestEncodeMonotonicSequence(t *testing.T) {
	got := delta.Encode([]int64{100, 101, 102, 103})
	require.Equal(t, []int64{100, 1, 1, 1}, got)
}

func TestEncodeEmptyIsEmpty(t *testing.T) {
	require.Empty(t, delta.Encode(nil))
	require.Empty(t, delta.Decode(nil))
}
