package epl

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRotation indicates a rotation outside of [0, 3].
	ErrInvalidRotation = errors.New("invalid rotation")

	// ErrInvalidFont indicates a font outside of [1, 5].
	ErrInvalidFont = errors.New("invalid font")

	// ErrInvalidHorizontalMultiplier indicates a horizontal multiplier outside of {1..6, 8}.
	ErrInvalidHorizontalMultiplier = errors.New("invalid horizontal multiplier")

	// ErrInvalidVerticalMultiplier indicates a vertical multiplier outside of [1, 9].
	ErrInvalidVerticalMultiplier = errors.New("invalid vertical multiplier")

	// ErrInvalidPrintMode indicates a print mode other than normal or reverse.
	ErrInvalidPrintMode = errors.New("invalid print mode")

	// ErrInvalidBarcodeType indicates an unknown barcode type.
	ErrInvalidBarcodeType = errors.New("invalid barcode type")

	// ErrInvalidLanguage indicates an unknown character set language.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidCountryCode indicates an unknown character set country code.
	ErrInvalidCountryCode = errors.New("invalid country code")

	// ErrInvalidCorrectionLevel indicates a QR code error correction level other than L, M, Q or H.
	ErrInvalidCorrectionLevel = errors.New("invalid correction level")

	// ErrInvalidNumberOfDataBits indicates a data bit width other than 7 or 8.
	ErrInvalidNumberOfDataBits = errors.New("invalid number of data bits")

	// ErrInvalidPrintSpeed indicates a print speed outside of [0, 6].
	ErrInvalidPrintSpeed = errors.New("invalid print speed")
)

var (
	// ErrInvalidPosition indicates a negative coordinate.
	ErrInvalidPosition = errors.New("invalid position, coordinates should not be negative")

	// ErrInvalidNarrowBarWidth indicates a narrow bar width not accepted by the current barcode type.
	ErrInvalidNarrowBarWidth = errors.New("invalid narrow bar width")

	// ErrInvalidWideBarWidth indicates a wide bar width not accepted by the current barcode type.
	ErrInvalidWideBarWidth = errors.New("invalid wide bar width")

	// ErrInvalidHeight indicates a non-positive barcode height.
	ErrInvalidHeight = errors.New("invalid height, should be greater than 0")

	// ErrInvalidLineThickness indicates a non-positive box line thickness.
	ErrInvalidLineThickness = errors.New("invalid line thickness, should be greater than 0")

	// ErrInvalidScaleFactor indicates a QR code scale factor outside of [1, 99].
	ErrInvalidScaleFactor = errors.New("invalid scale factor, should be in range of [1, 99]")
)

var (
	// ErrInvalidWidth indicates a non-positive label width.
	ErrInvalidWidth = errors.New("invalid label width, should be greater than 0")

	// ErrInvalidLengthAndGap indicates a non-positive label length or a negative gap.
	ErrInvalidLengthAndGap = errors.New("invalid label length/gap")

	// ErrInvalidPrintDensity indicates a print density outside of [0, 15].
	ErrInvalidPrintDensity = errors.New("invalid print density, should be in range of [0, 15]")

	// ErrInvalidCopies indicates a copy count lower than 1.
	ErrInvalidCopies = errors.New("invalid number of copies, should be greater than 0")

	// ErrPrintSpeedNotInformed is returned when a label is serialized without a print speed.
	ErrPrintSpeedNotInformed = errors.New("can't print if the print speed is not given")
)

var (
	// ErrCountryCodeNotApplicable is returned when a 7-bit character set carries a country code.
	ErrCountryCodeNotApplicable = errors.New("country code is not applicable for 7 data bits")

	// ErrInvalidLanguageForNumberOfDataBits is returned when the language does not exist
	// for the character set's data bit width.
	ErrInvalidLanguageForNumberOfDataBits = errors.New("language is not valid for the number of data bits")

	// ErrOptionNotApplicable is returned when an option is applied to an element that has no such attribute.
	ErrOptionNotApplicable = errors.New("option is not applicable")

	// ErrInvalidData is returned when element data holds a line break, which would
	// end the command line early and start a new command.
	ErrInvalidData = errors.New("data must not contain line breaks")

	// ErrUnencodableData is returned by Label.Encode when element data holds characters
	// missing from the code page selected by the preceding character set.
	ErrUnencodableData = errors.New("data can't be represented in the selected code page")
)

// A ValueError records a rejected attribute assignment.
//
// It wraps one of the ErrInvalidXXX sentinels, so callers can match it with errors.Is.
type ValueError struct {
	Attribute string
	Value     any
	err       error
}

func newValueError(attr string, value any, err error) *ValueError {
	return &ValueError{Attribute: attr, Value: value, err: err}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %v (%s)", e.err.Error(), e.Value, e.Attribute)
}

func (e *ValueError) Unwrap() error {
	return e.err
}

// A MissingAttributeError reports the first required attribute a printable element lacks.
type MissingAttributeError struct {
	Message string
}

func (e *MissingAttributeError) Error() string {
	return e.Message
}

// A CharacterSetAttributeError reports a required character set attribute that was not given.
//
// It is kept apart from MissingAttributeError since a character set is a printer setting,
// not a placed element.
type CharacterSetAttributeError struct {
	Message string
}

func (e *CharacterSetAttributeError) Error() string {
	return e.Message
}
