package epl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireMissing asserts err is a MissingAttributeError carrying msg.
func requireMissing(t *testing.T, err error, msg string) {
	t.Helper()

	var missing *MissingAttributeError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, msg, missing.Message)
}

func TestPrintable_CheckRequirementsStopsAtFirstMissing(t *testing.T) {
	require := require.New(t)

	calls := 0
	reqs := []requirement{
		{present: func() bool { calls++; return true }, message: "first"},
		{present: func() bool { calls++; return false }, message: "second"},
		{present: func() bool { calls++; return false }, message: "third"},
	}

	err := checkRequirements(reqs)
	requireMissing(t, err, "second")
	require.Equal(2, calls)

	require.NoError(checkRequirements(reqs[:1]))
}

func TestPrintable_Quote(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc     string
		input    string
		expected string
	}{
		{desc: "plain", input: "foobar", expected: `"foobar"`},
		{desc: "empty", input: "", expected: `""`},
		{desc: "embedded quote", input: `say "hi"`, expected: `"say \"hi\""`},
		{desc: "backslash", input: `C:\temp`, expected: `"C:\\temp"`},
		{desc: "comma is kept", input: "a,b", expected: `"a,b"`},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		require.Equal(test.expected, quote(test.input))
	}
}

func TestPrintable_Position(t *testing.T) {
	require := require.New(t)

	p := Pos(20, 40)
	require.Equal(20, *p.X)
	require.Equal(40, *p.Y)

	require.NoError(Position{}.validate("position"))
	require.NoError(Position{Y: Int(0)}.validate("position"))
	require.ErrorIs(Position{X: Int(-1)}.validate("position"), ErrInvalidPosition)

	// clones don't share coordinates with the original
	c := p.clone()
	*c.X = 99
	require.Equal(20, *p.X)
}

func TestPrintable_OptionNotApplicable(t *testing.T) {
	require := require.New(t)

	_, err := NewBox(WithFont(Font1))
	require.ErrorIs(err, ErrOptionNotApplicable)

	_, err = NewText(WithScaleFactor(3))
	require.ErrorIs(err, ErrOptionNotApplicable)

	_, err = NewCharacterSet(WithPosition(Pos(1, 1)))
	require.ErrorIs(err, ErrOptionNotApplicable)

	// nil options are skipped
	_, err = NewQrcode(nil, WithScaleFactor(3))
	require.NoError(err)
}
