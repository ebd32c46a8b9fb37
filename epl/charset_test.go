package epl

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestCharacterSet_ToEPL_AttributeErrors(t *testing.T) {
	tests := []struct {
		desc    string
		opts    []Option
		message string
	}{
		{
			desc:    "number of data bits not informed",
			opts:    []Option{WithLanguage(LanguagePortuguese), WithCountryCode(CountryLatinAmerica)},
			message: "Can't set character set if the number of data bits is not given",
		},
		{
			desc:    "language not informed",
			opts:    []Option{WithNumberOfDataBits(EightDataBits), WithCountryCode(CountryLatinAmerica)},
			message: "Can't set character set if the language is not given",
		},
		{
			desc:    "country code not informed for 8 bits",
			opts:    []Option{WithNumberOfDataBits(EightDataBits), WithLanguage(LanguagePortuguese)},
			message: "Can't set character set if the country code is not given",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		cs, err := NewCharacterSet(test.opts...)
		require.NoError(t, err)

		line, err := cs.ToEPL()
		require.Empty(t, line)

		var attrErr *CharacterSetAttributeError
		require.ErrorAs(t, err, &attrErr)
		require.Equal(t, test.message, attrErr.Message)
	}
}

func TestCharacterSet_ToEPL(t *testing.T) {
	require := require.New(t)

	cs, err := NewCharacterSet(
		WithNumberOfDataBits(EightDataBits),
		WithLanguage(LanguagePortuguese),
		WithCountryCode(CountryLatinAmerica),
	)
	require.NoError(err)

	line, err := cs.ToEPL()
	require.NoError(err)
	require.Equal("I8,3,003", line)

	require.NoError(cs.SetLanguage(LanguageLatin1Windows))
	line, err = cs.ToEPL()
	require.NoError(err)
	require.Equal("I8,A,003", line)

	cs, err = NewCharacterSet(WithNumberOfDataBits(SevenDataBits), WithLanguage(LanguageSwiss))
	require.NoError(err)
	line, err = cs.ToEPL()
	require.NoError(err)
	require.Equal("I7,8", line)
}

func TestCharacterSet_BitWidthMismatch(t *testing.T) {
	require := require.New(t)

	// a country code makes no sense for 7 bits
	cs, err := NewCharacterSet(
		WithNumberOfDataBits(SevenDataBits),
		WithLanguage(LanguageUSA),
		WithCountryCode(CountryUSA),
	)
	require.NoError(err)
	_, err = cs.ToEPL()
	require.ErrorIs(err, ErrCountryCodeNotApplicable)

	cs.ClearCountryCode()
	line, err := cs.ToEPL()
	require.NoError(err)
	require.Equal("I7,0", line)

	// Windows code pages only exist for 8 bits
	require.NoError(cs.SetLanguage(LanguageLatin1Windows))
	_, err = cs.ToEPL()
	require.ErrorIs(err, ErrInvalidLanguageForNumberOfDataBits)

	// code 10 is Cyrillic CIS 1 in the 8-bit table only
	require.NoError(cs.SetLanguage(LanguageCyrillicCIS1))
	_, err = cs.ToEPL()
	require.ErrorIs(err, ErrInvalidLanguageForNumberOfDataBits)

	// bits set after the language is fine
	require.NoError(cs.SetNumberOfDataBits(EightDataBits))
	require.NoError(cs.SetCountryCode(CountryGermany))
	line, err = cs.ToEPL()
	require.NoError(err)
	require.Equal("I8,10,049", line)
}

func TestCharacterSet_Setters(t *testing.T) {
	require := require.New(t)

	cs, err := NewCharacterSet(WithNumberOfDataBits(EightDataBits))
	require.NoError(err)

	require.ErrorIs(cs.SetNumberOfDataBits(9), ErrInvalidNumberOfDataBits)
	bits, ok := cs.NumberOfDataBits()
	require.True(ok)
	require.Equal(EightDataBits, bits)

	require.ErrorIs(cs.SetLanguage("G"), ErrInvalidLanguage)
	_, ok = cs.Language()
	require.False(ok)

	require.ErrorIs(cs.SetCountryCode("999"), ErrInvalidCountryCode)
	_, ok = cs.CountryCode()
	require.False(ok)
}

func TestCharacterSet_Encoding(t *testing.T) {
	require := require.New(t)

	cs, err := NewCharacterSet(WithNumberOfDataBits(EightDataBits), WithLanguage(LanguageLatin1Windows))
	require.NoError(err)
	enc, ok := cs.Encoding()
	require.True(ok)
	require.Equal(charmap.Windows1252, enc)

	// no x/text mapping for DOS 737
	require.NoError(cs.SetLanguage(LanguageGreek))
	_, ok = cs.Encoding()
	require.False(ok)

	cs, err = NewCharacterSet(WithNumberOfDataBits(SevenDataBits), WithLanguage(LanguageGerman))
	require.NoError(err)
	_, ok = cs.Encoding()
	require.False(ok)

	cs, err = NewCharacterSet()
	require.NoError(err)
	_, ok = cs.Encoding()
	require.False(ok)
}
