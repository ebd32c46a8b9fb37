package epl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBarcode(t *testing.T, opts ...Option) *Barcode {
	t.Helper()

	barcode, err := NewBarcode(opts...)
	require.NoError(t, err)

	return barcode
}

func TestBarcode_ToEPL_MissingAttributes(t *testing.T) {
	full := func() []Option {
		return []Option{
			WithPosition(Pos(100, 150)),
			WithBarcodeType(Code128Auto),
			WithNarrowBarWidth(4),
			WithWideBarWidth(6),
			WithHeight(20),
			WithData("foobar"),
		}
	}

	tests := []struct {
		desc    string
		opts    []Option
		message string
	}{
		{
			desc:    "X position not informed",
			opts:    []Option{WithPosition(Position{Y: Int(150)}), WithBarcodeType(Code128Auto)},
			message: "Can't print if the X value is not given",
		},
		{
			desc:    "Y position not informed",
			opts:    []Option{WithPosition(Position{X: Int(100)}), WithBarcodeType(Code128Auto)},
			message: "Can't print if the Y value is not given",
		},
		{
			desc:    "barcode type not informed",
			opts:    []Option{WithPosition(Pos(100, 150)), WithHeight(20), WithData("foobar")},
			message: "Can't print if the barcode type to be used is not given",
		},
		{
			desc:    "data not informed",
			opts:    []Option{WithPosition(Pos(100, 150)), WithBarcodeType(Code128Auto), WithHeight(20)},
			message: "Can't print if the data to be printed is not given",
		},
		{
			desc:    "height not informed",
			opts:    []Option{WithPosition(Pos(100, 150)), WithBarcodeType(Code128Auto), WithData("foobar"), WithNarrowBarWidth(4)},
			message: "Can't print if the height to be used is not given",
		},
		{
			desc:    "narrow bar width not informed",
			opts:    []Option{WithPosition(Pos(100, 150)), WithBarcodeType(Code128Auto), WithData("foobar"), WithHeight(20), WithWideBarWidth(6)},
			message: "Can't print if the narrow bar width to be used is not given",
		},
		{
			desc:    "data checked before bar widths",
			opts:    full()[:5],
			message: "Can't print if the data to be printed is not given",
		},
		{
			desc:    "wide bar width not informed",
			opts:    append(full()[:3], WithHeight(20), WithData("foobar")),
			message: "Can't print if the wide bar width to be used is not given",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		barcode := newTestBarcode(t, test.opts...)

		line, err := barcode.ToEPL()
		require.Empty(t, line)
		requireMissing(t, err, test.message)
	}
}

func TestBarcode_ToEPL(t *testing.T) {
	require := require.New(t)

	barcode := newTestBarcode(t,
		WithPosition(Pos(100, 150)),
		WithBarcodeType(Code128Auto),
		WithNarrowBarWidth(4),
		WithWideBarWidth(6),
		WithHeight(20),
		WithData("foobar"),
	)

	require.False(barcode.HumanReadable())
	line, err := barcode.ToEPL()
	require.NoError(err)
	require.Equal(`B100,150,0,1,4,6,20,N,"foobar"`, line)

	barcode.SetHumanReadable(true)
	require.NoError(barcode.SetRotation(Rotation90))
	require.NoError(barcode.SetType(EAN13))
	line, err = barcode.ToEPL()
	require.NoError(err)
	require.Equal(`B100,150,1,E30,4,6,20,B,"foobar"`, line)
}

func TestBarcode_BarWidths(t *testing.T) {
	tests := []struct {
		desc        string
		barcodeType *BarcodeType
		narrow      int
		wide        int
		narrowErr   bool
		wideErr     bool
	}{
		{desc: "code 128 upper bounds", barcodeType: ptr(Code128Auto), narrow: 10, wide: 10},
		{desc: "code 128 lower bounds", barcodeType: ptr(Code128A), narrow: 1, wide: 2},
		{desc: "code 128 over the limit", barcodeType: ptr(Code128B), narrow: 11, wide: 11, narrowErr: true, wideErr: true},
		{desc: "code 128 C under the limit", barcodeType: ptr(Code128C), narrow: 0, wide: 1, narrowErr: true, wideErr: true},
		{desc: "other type upper bounds", barcodeType: ptr(Code39), narrow: 30, wide: 30},
		{desc: "other type over the limit", barcodeType: ptr(Code39), narrow: 31, wide: 31, narrowErr: true, wideErr: true},
		{desc: "UCC code 128 uses the generic range", barcodeType: ptr(Code128UCC), narrow: 20, wide: 20},
		{desc: "no type uses the generic range", narrow: 30, wide: 2},
		{desc: "no type negative", narrow: -1, wide: 0, narrowErr: true, wideErr: true},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		barcode := newTestBarcode(t)
		if test.barcodeType != nil {
			require.NoError(t, barcode.SetType(*test.barcodeType))
		}

		err := barcode.SetNarrowBarWidth(test.narrow)
		if test.narrowErr {
			require.ErrorIs(t, err, ErrInvalidNarrowBarWidth)
			_, ok := barcode.NarrowBarWidth()
			require.False(t, ok)
		} else {
			require.NoError(t, err)
			width, _ := barcode.NarrowBarWidth()
			require.Equal(t, test.narrow, width)
		}

		err = barcode.SetWideBarWidth(test.wide)
		if test.wideErr {
			require.ErrorIs(t, err, ErrInvalidWideBarWidth)
			_, ok := barcode.WideBarWidth()
			require.False(t, ok)
		} else {
			require.NoError(t, err)
			width, _ := barcode.WideBarWidth()
			require.Equal(t, test.wide, width)
		}
	}
}

func TestBarcode_WidthsCheckedAgainstCurrentType(t *testing.T) {
	require := require.New(t)

	// options apply in order, so the type set afterwards does not narrow the range
	barcode := newTestBarcode(t, WithNarrowBarWidth(20), WithBarcodeType(Code128Auto))
	width, ok := barcode.NarrowBarWidth()
	require.True(ok)
	require.Equal(20, width)

	_, err := NewBarcode(WithBarcodeType(Code128Auto), WithNarrowBarWidth(20))
	require.ErrorIs(err, ErrInvalidNarrowBarWidth)

	barcode = newTestBarcode(t, WithBarcodeType(Code39), WithWideBarWidth(25))
	require.NoError(barcode.SetType(Code128C))
	width, _ = barcode.WideBarWidth()
	require.Equal(25, width)
}

func TestBarcode_Setters(t *testing.T) {
	require := require.New(t)

	barcode := newTestBarcode(t, WithBarcodeType(Code39), WithHeight(20))

	require.ErrorIs(barcode.SetType("ZZZ"), ErrInvalidBarcodeType)
	barcodeType, ok := barcode.Type()
	require.True(ok)
	require.Equal(Code39, barcodeType)

	require.ErrorIs(barcode.SetHeight(0), ErrInvalidHeight)
	height, _ := barcode.Height()
	require.Equal(20, height)

	require.ErrorIs(barcode.SetRotation(5), ErrInvalidRotation)
	require.ErrorIs(barcode.SetPosition(Position{Y: Int(-1)}), ErrInvalidPosition)

	_, ok = barcode.Data()
	require.False(ok)
	require.NoError(barcode.SetData("12345"))
	data, _ := barcode.Data()
	require.Equal("12345", data)
	barcode.ClearData()
	_, ok = barcode.Data()
	require.False(ok)
}

func ptr[T any](v T) *T { return &v }

func TestBarcode_LineBreaksInData(t *testing.T) {
	tests := []struct {
		desc string
		data string
	}{
		{desc: "line feed", data: "123\nP9"},
		{desc: "carriage return", data: "123\r456"},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)

		_, err := NewBarcode(WithBarcodeType(Code39), WithData(test.data))
		require.ErrorIs(t, err, ErrInvalidData)

		var valueErr *ValueError
		require.ErrorAs(t, err, &valueErr)
		require.Equal(t, "data", valueErr.Attribute)

		barcode := newTestBarcode(t)
		require.ErrorIs(t, barcode.SetData(test.data), ErrInvalidData)
		_, ok := barcode.Data()
		require.False(t, ok)
	}
}

func TestBarcode_Clear(t *testing.T) {
	require := require.New(t)

	barcode := newTestBarcode(t,
		WithPosition(Pos(100, 150)),
		WithBarcodeType(Code128Auto),
		WithNarrowBarWidth(4),
		WithWideBarWidth(6),
		WithHeight(20),
		WithData("foobar"),
	)

	barcode.ClearWideBarWidth()
	_, err := barcode.ToEPL()
	requireMissing(t, err, "Can't print if the wide bar width to be used is not given")

	barcode.ClearNarrowBarWidth()
	_, err = barcode.ToEPL()
	requireMissing(t, err, "Can't print if the narrow bar width to be used is not given")

	barcode.ClearHeight()
	_, err = barcode.ToEPL()
	requireMissing(t, err, "Can't print if the height to be used is not given")

	barcode.ClearType()
	_, ok := barcode.Type()
	require.False(ok)
	_, err = barcode.ToEPL()
	requireMissing(t, err, "Can't print if the barcode type to be used is not given")

	// without a type the generic width range applies again
	require.NoError(barcode.SetNarrowBarWidth(20))
}
