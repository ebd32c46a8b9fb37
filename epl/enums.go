package epl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/go-epl/internal/util"
)

// Rotation is the clockwise rotation applied to a text or barcode.
type Rotation int

const (
	NoRotation  Rotation = 0
	Rotation90  Rotation = 1
	Rotation180 Rotation = 2
	Rotation270 Rotation = 3
)

// Font selects one of the printer's resident fonts.
type Font int

const (
	Font1 Font = 1
	Font2 Font = 2
	Font3 Font = 3
	Font4 Font = 4
	Font5 Font = 5
)

// HorizontalMultiplier expands a text horizontally.
type HorizontalMultiplier int

const (
	HorizontalMultiplier1 HorizontalMultiplier = 1
	HorizontalMultiplier2 HorizontalMultiplier = 2
	HorizontalMultiplier3 HorizontalMultiplier = 3
	HorizontalMultiplier4 HorizontalMultiplier = 4
	HorizontalMultiplier5 HorizontalMultiplier = 5
	HorizontalMultiplier6 HorizontalMultiplier = 6
	HorizontalMultiplier8 HorizontalMultiplier = 8
)

// VerticalMultiplier expands a text vertically.
type VerticalMultiplier int

const (
	VerticalMultiplier1 VerticalMultiplier = 1
	VerticalMultiplier2 VerticalMultiplier = 2
	VerticalMultiplier3 VerticalMultiplier = 3
	VerticalMultiplier4 VerticalMultiplier = 4
	VerticalMultiplier5 VerticalMultiplier = 5
	VerticalMultiplier6 VerticalMultiplier = 6
	VerticalMultiplier7 VerticalMultiplier = 7
	VerticalMultiplier8 VerticalMultiplier = 8
	VerticalMultiplier9 VerticalMultiplier = 9
)

// PrintMode selects normal or reverse (white on black) text.
type PrintMode string

const (
	PrintModeNormal  PrintMode = "N"
	PrintModeReverse PrintMode = "R"
)

// BarcodeType is the EPL2 barcode selection code.
type BarcodeType string

const (
	Code39                 BarcodeType = "3"
	Code39CheckDigit       BarcodeType = "3C"
	Code93                 BarcodeType = "9"
	Code128UCC             BarcodeType = "0"
	Code128Auto            BarcodeType = "1"
	Code128A               BarcodeType = "1A"
	Code128B               BarcodeType = "1B"
	Code128C               BarcodeType = "1C"
	Code128DeutschePost    BarcodeType = "1D"
	UCCEAN128              BarcodeType = "1E"
	Codabar                BarcodeType = "K"
	EAN8                   BarcodeType = "E80"
	EAN8Addon2             BarcodeType = "E82"
	EAN8Addon5             BarcodeType = "E85"
	EAN13                  BarcodeType = "E30"
	EAN13Addon2            BarcodeType = "E32"
	EAN13Addon5            BarcodeType = "E35"
	GermanPostCode         BarcodeType = "2G"
	Interleaved2of5        BarcodeType = "2"
	Interleaved2of5Mod10   BarcodeType = "2C"
	Interleaved2of5HRCheck BarcodeType = "2D"
	Postnet                BarcodeType = "P"
	Planet                 BarcodeType = "PL"
	JapanesePostnet        BarcodeType = "J"
	UPCA                   BarcodeType = "UA0"
	UPCAAddon2             BarcodeType = "UA2"
	UPCAAddon5             BarcodeType = "UA5"
	UPCE                   BarcodeType = "UE0"
	UPCEAddon2             BarcodeType = "UE2"
	UPCEAddon5             BarcodeType = "UE5"
	UPCInterleaved2of5     BarcodeType = "2U"
	Plessey                BarcodeType = "L"
	MSI                    BarcodeType = "M"
	MSI1                   BarcodeType = "M1"
	MSI2                   BarcodeType = "M2"
	MSI3                   BarcodeType = "M3"
)

// IsCode128 reports whether the type is one of the Code 128 subset selections,
// which accept narrower bar widths than the other symbologies.
func (t BarcodeType) IsCode128() bool {
	switch t {
	case Code128Auto, Code128A, Code128B, Code128C:
		return true
	}
	return false
}

// Language is the code page selected by a character set.
//
// The 8-bit and 7-bit tables reuse the codes 0 to 8, so the same code means a
// different code page depending on the number of data bits.
type Language string

// 8 data bits code pages.
const (
	LanguageEnglish         Language = "0"
	LanguageLatin1          Language = "1"
	LanguageLatin2          Language = "2"
	LanguagePortuguese      Language = "3"
	LanguageFrenchCanadian  Language = "4"
	LanguageNordic          Language = "5"
	LanguageTurkish         Language = "6"
	LanguageIcelandic       Language = "7"
	LanguageHebrew          Language = "8"
	LanguageCyrillic        Language = "9"
	LanguageCyrillicCIS1    Language = "10"
	LanguageGreek           Language = "11"
	LanguageGreek1          Language = "12"
	LanguageGreek2          Language = "13"
	LanguageLatin1Windows   Language = "A"
	LanguageLatin2Windows   Language = "B"
	LanguageCyrillicWindows Language = "C"
	LanguageGreekWindows    Language = "D"
	LanguageTurkishWindows  Language = "E"
	LanguageHebrewWindows   Language = "F"
)

// 7 data bits code pages.
const (
	LanguageUSA     Language = "0"
	LanguageBritish Language = "1"
	LanguageGerman  Language = "2"
	LanguageFrench  Language = "3"
	LanguageDanish  Language = "4"
	LanguageItalian Language = "5"
	LanguageSpanish Language = "6"
	LanguageSwedish Language = "7"
	LanguageSwiss   Language = "8"
)

// ValidFor reports whether the language exists for the given number of data bits.
func (l Language) ValidFor(bits NumberOfDataBits) bool {
	switch bits {
	case SevenDataBits:
		return containsValue(sevenBitLanguages, l)
	case EightDataBits:
		return containsValue(eightBitLanguages, l)
	}
	return false
}

// CountryCode is the three digit country code of an 8-bit character set.
type CountryCode string

const (
	CountryUSA          CountryCode = "001"
	CountryCanada       CountryCode = "002"
	CountryLatinAmerica CountryCode = "003"
	CountrySouthAfrica  CountryCode = "027"
	CountryNetherlands  CountryCode = "031"
	CountryBelgium      CountryCode = "032"
	CountryFrance       CountryCode = "033"
	CountrySpain        CountryCode = "034"
	CountryItaly        CountryCode = "039"
	CountrySwitzerland  CountryCode = "041"
	CountryUK           CountryCode = "044"
	CountryDenmark      CountryCode = "045"
	CountrySweden       CountryCode = "046"
	CountryNorway       CountryCode = "047"
	CountryGermany      CountryCode = "049"
	CountryPortugal     CountryCode = "351"
	CountryFinland      CountryCode = "358"
)

// CorrectionLevel is the QR code error correction level.
type CorrectionLevel string

const (
	CorrectionLevelL CorrectionLevel = "L"
	CorrectionLevelM CorrectionLevel = "M"
	CorrectionLevelQ CorrectionLevel = "Q"
	CorrectionLevelH CorrectionLevel = "H"
)

// NumberOfDataBits is the data bit width of a character set.
type NumberOfDataBits int

const (
	SevenDataBits NumberOfDataBits = 7
	EightDataBits NumberOfDataBits = 8
)

// PrintSpeed is the printer speed selection of a label.
type PrintSpeed int

const (
	MinPrintSpeed PrintSpeed = 0
	MaxPrintSpeed PrintSpeed = 6
)

// NamedValue pairs a symbolic name with the literal emitted into EPL.
type NamedValue struct {
	Name  string
	Value string
}

// Enumeration describes one closed set of legal values.
type Enumeration struct {
	Name   string
	Values []NamedValue
}

type named[T comparable] struct {
	name  string
	value T
}

var rotations = []named[Rotation]{
	{"NO_ROTATION", NoRotation},
	{"DEGREES_90", Rotation90},
	{"DEGREES_180", Rotation180},
	{"DEGREES_270", Rotation270},
}

var fonts = []named[Font]{
	{"SIZE_1", Font1},
	{"SIZE_2", Font2},
	{"SIZE_3", Font3},
	{"SIZE_4", Font4},
	{"SIZE_5", Font5},
}

var horizontalMultipliers = []named[HorizontalMultiplier]{
	{"VALUE_1", HorizontalMultiplier1},
	{"VALUE_2", HorizontalMultiplier2},
	{"VALUE_3", HorizontalMultiplier3},
	{"VALUE_4", HorizontalMultiplier4},
	{"VALUE_5", HorizontalMultiplier5},
	{"VALUE_6", HorizontalMultiplier6},
	{"VALUE_8", HorizontalMultiplier8},
}

var verticalMultipliers = []named[VerticalMultiplier]{
	{"VALUE_1", VerticalMultiplier1},
	{"VALUE_2", VerticalMultiplier2},
	{"VALUE_3", VerticalMultiplier3},
	{"VALUE_4", VerticalMultiplier4},
	{"VALUE_5", VerticalMultiplier5},
	{"VALUE_6", VerticalMultiplier6},
	{"VALUE_7", VerticalMultiplier7},
	{"VALUE_8", VerticalMultiplier8},
	{"VALUE_9", VerticalMultiplier9},
}

var printModes = []named[PrintMode]{
	{"NORMAL", PrintModeNormal},
	{"REVERSE", PrintModeReverse},
}

var barcodeTypes = []named[BarcodeType]{
	{"CODE_39", Code39},
	{"CODE_39_CHECK_DIGIT", Code39CheckDigit},
	{"CODE_93", Code93},
	{"CODE_128_UCC", Code128UCC},
	{"CODE_128_AUTO", Code128Auto},
	{"CODE_128_A", Code128A},
	{"CODE_128_B", Code128B},
	{"CODE_128_C", Code128C},
	{"CODE_128_DEUTSCHE_POST", Code128DeutschePost},
	{"UCC_EAN_128", UCCEAN128},
	{"CODABAR", Codabar},
	{"EAN_8", EAN8},
	{"EAN_8_ADDON_2", EAN8Addon2},
	{"EAN_8_ADDON_5", EAN8Addon5},
	{"EAN_13", EAN13},
	{"EAN_13_ADDON_2", EAN13Addon2},
	{"EAN_13_ADDON_5", EAN13Addon5},
	{"GERMAN_POST_CODE", GermanPostCode},
	{"INTERLEAVED_2_OF_5", Interleaved2of5},
	{"INTERLEAVED_2_OF_5_MOD_10", Interleaved2of5Mod10},
	{"INTERLEAVED_2_OF_5_HR_CHECK", Interleaved2of5HRCheck},
	{"POSTNET", Postnet},
	{"PLANET", Planet},
	{"JAPANESE_POSTNET", JapanesePostnet},
	{"UPC_A", UPCA},
	{"UPC_A_ADDON_2", UPCAAddon2},
	{"UPC_A_ADDON_5", UPCAAddon5},
	{"UPC_E", UPCE},
	{"UPC_E_ADDON_2", UPCEAddon2},
	{"UPC_E_ADDON_5", UPCEAddon5},
	{"UPC_INTERLEAVED_2_OF_5", UPCInterleaved2of5},
	{"PLESSEY", Plessey},
	{"MSI", MSI},
	{"MSI_1", MSI1},
	{"MSI_2", MSI2},
	{"MSI_3", MSI3},
}

var eightBitLanguages = []named[Language]{
	{"ENGLISH", LanguageEnglish},
	{"LATIN_1", LanguageLatin1},
	{"LATIN_2", LanguageLatin2},
	{"PORTUGUESE", LanguagePortuguese},
	{"FRENCH_CANADIAN", LanguageFrenchCanadian},
	{"NORDIC", LanguageNordic},
	{"TURKISH", LanguageTurkish},
	{"ICELANDIC", LanguageIcelandic},
	{"HEBREW", LanguageHebrew},
	{"CYRILLIC", LanguageCyrillic},
	{"CYRILLIC_CIS_1", LanguageCyrillicCIS1},
	{"GREEK", LanguageGreek},
	{"GREEK_1", LanguageGreek1},
	{"GREEK_2", LanguageGreek2},
	{"LATIN_1_WINDOWS", LanguageLatin1Windows},
	{"LATIN_2_WINDOWS", LanguageLatin2Windows},
	{"CYRILLIC_WINDOWS", LanguageCyrillicWindows},
	{"GREEK_WINDOWS", LanguageGreekWindows},
	{"TURKISH_WINDOWS", LanguageTurkishWindows},
	{"HEBREW_WINDOWS", LanguageHebrewWindows},
}

var sevenBitLanguages = []named[Language]{
	{"USA", LanguageUSA},
	{"BRITISH", LanguageBritish},
	{"GERMAN", LanguageGerman},
	{"FRENCH", LanguageFrench},
	{"DANISH", LanguageDanish},
	{"ITALIAN", LanguageItalian},
	{"SPANISH", LanguageSpanish},
	{"SWEDISH", LanguageSwedish},
	{"SWISS", LanguageSwiss},
}

var languages = append(append([]named[Language]{}, eightBitLanguages...), sevenBitLanguages...)

var countryCodes = []named[CountryCode]{
	{"USA", CountryUSA},
	{"CANADA", CountryCanada},
	{"LATIN_AMERICA", CountryLatinAmerica},
	{"SOUTH_AFRICA", CountrySouthAfrica},
	{"NETHERLANDS", CountryNetherlands},
	{"BELGIUM", CountryBelgium},
	{"FRANCE", CountryFrance},
	{"SPAIN", CountrySpain},
	{"ITALY", CountryItaly},
	{"SWITZERLAND", CountrySwitzerland},
	{"UK", CountryUK},
	{"DENMARK", CountryDenmark},
	{"SWEDEN", CountrySweden},
	{"NORWAY", CountryNorway},
	{"GERMANY", CountryGermany},
	{"PORTUGAL", CountryPortugal},
	{"FINLAND", CountryFinland},
}

var correctionLevels = []named[CorrectionLevel]{
	{"LOW", CorrectionLevelL},
	{"MEDIUM", CorrectionLevelM},
	{"QUARTILE", CorrectionLevelQ},
	{"HIGH", CorrectionLevelH},
}

var dataBits = []named[NumberOfDataBits]{
	{"SEVEN", SevenDataBits},
	{"EIGHT", EightDataBits},
}

// Validate returns ErrInvalidRotation if r is not a legal rotation.
func (r Rotation) Validate() error {
	if !containsValue(rotations, r) {
		return newValueError("rotation", int(r), ErrInvalidRotation)
	}
	return nil
}

// Validate returns ErrInvalidFont if f is not a legal font.
func (f Font) Validate() error {
	if !containsValue(fonts, f) {
		return newValueError("font", int(f), ErrInvalidFont)
	}
	return nil
}

// Validate returns ErrInvalidHorizontalMultiplier if m is not a legal multiplier.
func (m HorizontalMultiplier) Validate() error {
	if !containsValue(horizontalMultipliers, m) {
		return newValueError("h_multiplier", int(m), ErrInvalidHorizontalMultiplier)
	}
	return nil
}

// Validate returns ErrInvalidVerticalMultiplier if m is not a legal multiplier.
func (m VerticalMultiplier) Validate() error {
	if !containsValue(verticalMultipliers, m) {
		return newValueError("v_multiplier", int(m), ErrInvalidVerticalMultiplier)
	}
	return nil
}

// Validate returns ErrInvalidPrintMode if m is not a legal print mode.
func (m PrintMode) Validate() error {
	if !containsValue(printModes, m) {
		return newValueError("print_mode", string(m), ErrInvalidPrintMode)
	}
	return nil
}

// Validate returns ErrInvalidBarcodeType if t is not a legal barcode type.
func (t BarcodeType) Validate() error {
	if !containsValue(barcodeTypes, t) {
		return newValueError("type", string(t), ErrInvalidBarcodeType)
	}
	return nil
}

// Validate returns ErrInvalidLanguage if l is neither a 7-bit nor an 8-bit code page.
func (l Language) Validate() error {
	if !containsValue(languages, l) {
		return newValueError("language", string(l), ErrInvalidLanguage)
	}
	return nil
}

// Validate returns ErrInvalidCountryCode if c is not a legal country code.
func (c CountryCode) Validate() error {
	if !containsValue(countryCodes, c) {
		return newValueError("country_code", string(c), ErrInvalidCountryCode)
	}
	return nil
}

// Validate returns ErrInvalidCorrectionLevel if l is not one of L, M, Q or H.
func (l CorrectionLevel) Validate() error {
	if !containsValue(correctionLevels, l) {
		return newValueError("correction_level", string(l), ErrInvalidCorrectionLevel)
	}
	return nil
}

// Validate returns ErrInvalidNumberOfDataBits if b is neither 7 nor 8.
func (b NumberOfDataBits) Validate() error {
	if !containsValue(dataBits, b) {
		return newValueError("number_of_data_bits", int(b), ErrInvalidNumberOfDataBits)
	}
	return nil
}

// Validate returns ErrInvalidPrintSpeed if s is out of [MinPrintSpeed, MaxPrintSpeed].
func (s PrintSpeed) Validate() error {
	if s < MinPrintSpeed || s > MaxPrintSpeed {
		return newValueError("print_speed", int(s), ErrInvalidPrintSpeed)
	}
	return nil
}

func (r Rotation) String() string             { return strconv.Itoa(int(r)) }
func (f Font) String() string                 { return strconv.Itoa(int(f)) }
func (m HorizontalMultiplier) String() string { return strconv.Itoa(int(m)) }
func (m VerticalMultiplier) String() string   { return strconv.Itoa(int(m)) }
func (b NumberOfDataBits) String() string     { return strconv.Itoa(int(b)) }
func (s PrintSpeed) String() string           { return strconv.Itoa(int(s)) }

// ParseRotation accepts a Rotation, an integer in [0, 3] or a symbolic name such as "DEGREES_90".
func ParseRotation(value any) (Rotation, error) {
	return parseIntEnum(value, rotations, "rotation", ErrInvalidRotation)
}

// ParseFont accepts a Font, an integer in [1, 5] or a symbolic name such as "SIZE_3".
func ParseFont(value any) (Font, error) {
	return parseIntEnum(value, fonts, "font", ErrInvalidFont)
}

// ParseHorizontalMultiplier accepts a HorizontalMultiplier, an integer or a symbolic name such as "VALUE_2".
func ParseHorizontalMultiplier(value any) (HorizontalMultiplier, error) {
	return parseIntEnum(value, horizontalMultipliers, "h_multiplier", ErrInvalidHorizontalMultiplier)
}

// ParseVerticalMultiplier accepts a VerticalMultiplier, an integer or a symbolic name such as "VALUE_2".
func ParseVerticalMultiplier(value any) (VerticalMultiplier, error) {
	return parseIntEnum(value, verticalMultipliers, "v_multiplier", ErrInvalidVerticalMultiplier)
}

// ParseNumberOfDataBits accepts a NumberOfDataBits or the integers 7 and 8.
func ParseNumberOfDataBits(value any) (NumberOfDataBits, error) {
	return parseIntEnum(value, dataBits, "number_of_data_bits", ErrInvalidNumberOfDataBits)
}

// ParsePrintSpeed accepts a PrintSpeed or an integer in [0, 6].
// Non-numeric input is rejected with ErrInvalidPrintSpeed.
func ParsePrintSpeed(value any) (PrintSpeed, error) {
	if s, ok := value.(PrintSpeed); ok {
		if err := s.Validate(); err != nil {
			return 0, err
		}
		return s, nil
	}

	n, err := util.ToInt(value)
	if err != nil {
		return 0, newValueError("print_speed", value, ErrInvalidPrintSpeed)
	}

	s := PrintSpeed(n)
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return s, nil
}

// ParsePrintMode accepts a PrintMode, "N", "R", "NORMAL" or "REVERSE".
func ParsePrintMode(value any) (PrintMode, error) {
	return parseStringEnum(value, printModes, nil, "print_mode", ErrInvalidPrintMode)
}

// ParseBarcodeType accepts a BarcodeType, an EPL code such as "1A" or a symbolic name such as "CODE_128_AUTO".
func ParseBarcodeType(value any) (BarcodeType, error) {
	return parseStringEnum(value, barcodeTypes, func(n int) BarcodeType {
		return BarcodeType(strconv.Itoa(n))
	}, "type", ErrInvalidBarcodeType)
}

// ParseLanguage accepts a Language, an EPL code such as "A" or 3, or a symbolic name such as "PORTUGUESE".
func ParseLanguage(value any) (Language, error) {
	return parseStringEnum(value, languages, func(n int) Language {
		return Language(strconv.Itoa(n))
	}, "language", ErrInvalidLanguage)
}

// ParseCountryCode accepts a CountryCode, a number (zero-padded to three digits) or a symbolic name such as "LATIN_AMERICA".
func ParseCountryCode(value any) (CountryCode, error) {
	return parseStringEnum(value, countryCodes, func(n int) CountryCode {
		return CountryCode(fmt.Sprintf("%03d", n))
	}, "country_code", ErrInvalidCountryCode)
}

// ParseCorrectionLevel accepts a CorrectionLevel, "L", "M", "Q", "H" or the names LOW, MEDIUM, QUARTILE and HIGH.
func ParseCorrectionLevel(value any) (CorrectionLevel, error) {
	return parseStringEnum(value, correctionLevels, nil, "correction_level", ErrInvalidCorrectionLevel)
}

// Enumerations lists every closed value set with its symbolic names.
func Enumerations() []Enumeration {
	return []Enumeration{
		describe("Rotation", rotations),
		describe("Font", fonts),
		describe("HorizontalMultiplier", horizontalMultipliers),
		describe("VerticalMultiplier", verticalMultipliers),
		describe("PrintMode", printModes),
		describe("BarcodeType", barcodeTypes),
		describe("Language (8 data bits)", eightBitLanguages),
		describe("Language (7 data bits)", sevenBitLanguages),
		describe("CountryCode", countryCodes),
		describe("CorrectionLevel", correctionLevels),
		describe("NumberOfDataBits", dataBits),
	}
}

func describe[T comparable](name string, set []named[T]) Enumeration {
	values := make([]NamedValue, 0, len(set))
	for _, v := range set {
		values = append(values, NamedValue{Name: v.name, Value: fmt.Sprint(v.value)})
	}

	return Enumeration{Name: name, Values: values}
}

func containsValue[T comparable](set []named[T], value T) bool {
	for _, v := range set {
		if v.value == value {
			return true
		}
	}
	return false
}

func lookupName[T comparable](set []named[T], name string) (T, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, v := range set {
		if v.name == name {
			return v.value, true
		}
	}

	var zero T
	return zero, false
}

// parseIntEnum resolves integer-backed enumerations from typed values, integers,
// numeric strings and symbolic names.
func parseIntEnum[T ~int](value any, set []named[T], attr string, sentinel error) (T, error) {
	var result T

	switch v := value.(type) {
	case T:
		result = v
	case string:
		if nv, ok := lookupName(set, v); ok {
			return nv, nil
		}
		n, err := util.ToInt(v)
		if err != nil {
			return 0, newValueError(attr, value, sentinel)
		}
		result = T(n)
	default:
		n, err := util.ToInt(v)
		if err != nil {
			return 0, newValueError(attr, value, sentinel)
		}
		result = T(n)
	}

	if !containsValue(set, result) {
		return 0, newValueError(attr, value, sentinel)
	}

	return result, nil
}

// parseStringEnum resolves string-backed enumerations from typed values, EPL codes
// and symbolic names. When fromInt is not nil, integers and numeric strings are
// converted with it before validation.
func parseStringEnum[T ~string](value any, set []named[T], fromInt func(int) T, attr string, sentinel error) (T, error) {
	var result T

	switch v := value.(type) {
	case T:
		result = v
	case string:
		switch {
		case containsValue(set, T(v)):
			result = T(v)
		case fromInt != nil && util.IsIntegerString(v):
			n, _ := util.ToInt(v)
			result = fromInt(n)
		default:
			nv, ok := lookupName(set, v)
			if !ok {
				return "", newValueError(attr, value, sentinel)
			}
			result = nv
		}
	default:
		if fromInt == nil {
			return "", newValueError(attr, value, sentinel)
		}
		n, err := util.ToInt(v)
		if err != nil {
			return "", newValueError(attr, value, sentinel)
		}
		result = fromInt(n)
	}

	if !containsValue(set, result) {
		return "", newValueError(attr, value, sentinel)
	}

	return result, nil
}
