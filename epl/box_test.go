package epl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBox_ToEPL_MissingAttributes(t *testing.T) {
	tests := []struct {
		desc    string
		opts    []Option
		message string
	}{
		{
			desc:    "X position not informed",
			opts:    []Option{WithPosition(Position{Y: Int(40)}), WithEndPosition(Pos(60, 100)), WithLineThickness(3)},
			message: "Can't print if the X value is not given",
		},
		{
			desc:    "Y position not informed",
			opts:    []Option{WithPosition(Position{X: Int(20)}), WithEndPosition(Pos(60, 100)), WithLineThickness(3)},
			message: "Can't print if the Y value is not given",
		},
		{
			desc:    "end X position not informed",
			opts:    []Option{WithPosition(Pos(20, 40)), WithEndPosition(Position{Y: Int(100)}), WithLineThickness(3)},
			message: "Can't print if the horizontal end position (X) is not given",
		},
		{
			desc:    "end Y position not informed",
			opts:    []Option{WithPosition(Pos(20, 40)), WithEndPosition(Position{X: Int(60)})},
			message: "Can't print if the vertical end position (Y) is not given",
		},
		{
			desc:    "line thickness not informed",
			opts:    []Option{WithPosition(Pos(20, 40)), WithEndPosition(Pos(60, 100))},
			message: "Can't print if the line thickness is not given",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		box, err := NewBox(test.opts...)
		require.NoError(t, err)

		line, err := box.ToEPL()
		require.Empty(t, line)
		requireMissing(t, err, test.message)
	}
}

func TestBox_ToEPL(t *testing.T) {
	require := require.New(t)

	box, err := NewBox(WithPosition(Pos(20, 40)), WithEndPosition(Pos(60, 100)), WithLineThickness(3))
	require.NoError(err)

	line, err := box.ToEPL()
	require.NoError(err)
	require.Equal("X20,40,3,60,100", line)

	require.Equal(Pos(60, 100), box.EndPosition())
	thickness, ok := box.LineThickness()
	require.True(ok)
	require.Equal(3, thickness)
}

func TestBox_Setters(t *testing.T) {
	require := require.New(t)

	box, err := NewBox(WithLineThickness(2))
	require.NoError(err)

	require.ErrorIs(box.SetLineThickness(0), ErrInvalidLineThickness)
	thickness, _ := box.LineThickness()
	require.Equal(2, thickness)

	require.ErrorIs(box.SetPosition(Pos(-1, 0)), ErrInvalidPosition)
	require.ErrorIs(box.SetEndPosition(Pos(0, -1)), ErrInvalidPosition)

	_, err = NewBox(WithLineThickness(-3))
	require.ErrorIs(err, ErrInvalidLineThickness)
}

func TestBox_ClearLineThickness(t *testing.T) {
	require := require.New(t)

	box, err := NewBox(WithPosition(Pos(20, 40)), WithEndPosition(Pos(60, 100)), WithLineThickness(3))
	require.NoError(err)

	box.ClearLineThickness()
	_, ok := box.LineThickness()
	require.False(ok)

	_, err = box.ToEPL()
	requireMissing(t, err, "Can't print if the line thickness is not given")
}
