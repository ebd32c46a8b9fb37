package epl

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// codePages maps 8-bit languages to their printer code page. Pages missing from
// x/text (DOS 737, 851, 857, 861 and 869) are left out and sent untranslated.
var codePages = map[Language]encoding.Encoding{
	LanguageEnglish:         charmap.CodePage437,
	LanguageLatin1:          charmap.CodePage850,
	LanguageLatin2:          charmap.CodePage852,
	LanguagePortuguese:      charmap.CodePage860,
	LanguageFrenchCanadian:  charmap.CodePage863,
	LanguageNordic:          charmap.CodePage865,
	LanguageHebrew:          charmap.CodePage862,
	LanguageCyrillic:        charmap.CodePage855,
	LanguageCyrillicCIS1:    charmap.CodePage866,
	LanguageLatin1Windows:   charmap.Windows1252,
	LanguageLatin2Windows:   charmap.Windows1250,
	LanguageCyrillicWindows: charmap.Windows1251,
	LanguageGreekWindows:    charmap.Windows1253,
	LanguageTurkishWindows:  charmap.Windows1254,
	LanguageHebrewWindows:   charmap.Windows1255,
}

// CharacterSet selects the printer code page, encoded with the EPL "I" command.
//
// Language and country code are checked against their global tables when set.
// Whether they fit the number of data bits is only checked by ToEPL, since the
// bit width may be set after them.
type CharacterSet struct {
	numberOfDataBits *NumberOfDataBits
	language         *Language
	countryCode      *CountryCode
}

var _ Printable = (*CharacterSet)(nil)

// NewCharacterSet creates a CharacterSet and applies the given options in order.
func NewCharacterSet(opts ...Option) (*CharacterSet, error) {
	cs := &CharacterSet{}
	if err := applyOptions(cs, opts); err != nil {
		return nil, err
	}

	return cs, nil
}

// NumberOfDataBits returns the data bit width and whether it was set.
func (cs *CharacterSet) NumberOfDataBits() (NumberOfDataBits, bool) {
	if cs.numberOfDataBits == nil {
		return 0, false
	}
	return *cs.numberOfDataBits, true
}

// SetNumberOfDataBits sets the data bit width, 7 or 8.
func (cs *CharacterSet) SetNumberOfDataBits(bits NumberOfDataBits) error {
	if err := bits.Validate(); err != nil {
		return err
	}
	cs.numberOfDataBits = &bits

	return nil
}

// Language returns the code page and whether it was set.
func (cs *CharacterSet) Language() (Language, bool) {
	if cs.language == nil {
		return "", false
	}
	return *cs.language, true
}

// SetLanguage sets the code page.
func (cs *CharacterSet) SetLanguage(l Language) error {
	if err := l.Validate(); err != nil {
		return err
	}
	cs.language = &l

	return nil
}

// CountryCode returns the country code and whether it was set.
func (cs *CharacterSet) CountryCode() (CountryCode, bool) {
	if cs.countryCode == nil {
		return "", false
	}
	return *cs.countryCode, true
}

// SetCountryCode sets the country code.
func (cs *CharacterSet) SetCountryCode(c CountryCode) error {
	if err := c.Validate(); err != nil {
		return err
	}
	cs.countryCode = &c

	return nil
}

// ClearCountryCode removes the country code, as required by 7-bit character sets.
func (cs *CharacterSet) ClearCountryCode() { cs.countryCode = nil }

// validate runs the presence checks first, then the checks depending on the bit width.
func (cs *CharacterSet) validate() error {
	if cs.numberOfDataBits == nil {
		return &CharacterSetAttributeError{Message: "Can't set character set if the number of data bits is not given"}
	}
	if cs.language == nil {
		return &CharacterSetAttributeError{Message: "Can't set character set if the language is not given"}
	}

	bits := *cs.numberOfDataBits
	switch {
	case bits == EightDataBits && cs.countryCode == nil:
		return &CharacterSetAttributeError{Message: "Can't set character set if the country code is not given"}
	case bits == SevenDataBits && cs.countryCode != nil:
		return newValueError("country_code", string(*cs.countryCode), ErrCountryCodeNotApplicable)
	}

	if !cs.language.ValidFor(bits) {
		return newValueError("language", string(*cs.language), ErrInvalidLanguageForNumberOfDataBits)
	}

	return nil
}

// ToEPL encodes the character set as I<bits>,<language>[,<country_code>].
// The country code is only emitted for 8 data bits.
func (cs *CharacterSet) ToEPL() (string, error) {
	if err := cs.validate(); err != nil {
		return "", err
	}

	if *cs.numberOfDataBits == SevenDataBits {
		return commandLine("I", cs.numberOfDataBits.String(), string(*cs.language)), nil
	}

	return commandLine("I", cs.numberOfDataBits.String(), string(*cs.language), string(*cs.countryCode)), nil
}

// Encoding returns the code page the printer uses for data printed after this
// character set. It reports false for 7-bit sets, whose national ASCII variants
// are sent as is, and for 8-bit pages without a known mapping.
func (cs *CharacterSet) Encoding() (encoding.Encoding, bool) {
	if cs.numberOfDataBits == nil || *cs.numberOfDataBits != EightDataBits || cs.language == nil {
		return nil, false
	}
	enc, ok := codePages[*cs.language]

	return enc, ok
}
