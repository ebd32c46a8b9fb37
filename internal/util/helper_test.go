package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	require := require.New(t)

	src := []int{1, 2, 3}

	clone := CloneSlice(src, 0)
	require.Equal(src, clone)
	clone[0] = 9
	require.Equal(1, src[0])

	clone = CloneSlice(src, 5)
	require.Equal([]int{1, 2, 3, 0, 0}, clone)

	clone = CloneSlice(src, 2)
	require.Equal([]int{1, 2}, clone)

	require.Empty(CloneSlice([]string(nil), 0))
}

func TestToInt(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc     string
		input    any
		expected int
		isErr    bool
	}{
		{desc: "int", input: 3, expected: 3},
		{desc: "int8", input: int8(-3), expected: -3},
		{desc: "int16", input: int16(300), expected: 300},
		{desc: "int32", input: int32(70000), expected: 70000},
		{desc: "int64", input: int64(5), expected: 5},
		{desc: "uint", input: uint(7), expected: 7},
		{desc: "uint8", input: uint8(255), expected: 255},
		{desc: "uint16", input: uint16(65535), expected: 65535},
		{desc: "uint32", input: uint32(1), expected: 1},
		{desc: "uint64", input: uint64(42), expected: 42},
		{desc: "uint64 overflow", input: uint64(math.MaxUint64), isErr: true},
		{desc: "whole float32", input: float32(4), expected: 4},
		{desc: "whole float64", input: float64(-2), expected: -2},
		{desc: "fractional float", input: 2.5, isErr: true},
		{desc: "NaN", input: math.NaN(), isErr: true},
		{desc: "infinity", input: math.Inf(1), isErr: true},
		{desc: "numeric string", input: "12", expected: 12},
		{desc: "padded string", input: " 6 ", expected: 6},
		{desc: "non numeric string", input: "a", isErr: true},
		{desc: "empty string", input: "", isErr: true},
		{desc: "bool", input: true, isErr: true},
		{desc: "nil", input: nil, isErr: true},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		n, err := ToInt(test.input)
		if test.isErr {
			require.ErrorIs(err, ErrNotInteger)
			continue
		}
		require.NoError(err)
		require.Equal(test.expected, n)
	}
}

func TestIsIntegerString(t *testing.T) {
	require := require.New(t)

	require.True(IsIntegerString("49"))
	require.True(IsIntegerString(" -1"))
	require.False(IsIntegerString("1A"))
	require.False(IsIntegerString(""))
}
