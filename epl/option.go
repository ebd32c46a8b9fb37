package epl

import "fmt"

// Option represents a functional option for configuring an element on creation.
//
// The same option can be passed to every element type owning the attribute.
// Applying it to an element without that attribute fails with ErrOptionNotApplicable.
type Option interface {
	apply(target any) error
}

type optFunc struct {
	name      string
	applyFunc func(target any) error
}

func (o *optFunc) apply(target any) error { return o.applyFunc(target) }

func newOptFunc(name string, f func(target any) error) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// setterOption builds an option calling a setter on every target implementing S.
func setterOption[S any](name string, call func(S) error) Option {
	return newOptFunc(name, func(target any) error {
		s, ok := target.(S)
		if !ok {
			return fmt.Errorf("%w: %s on %T", ErrOptionNotApplicable, name, target)
		}
		return call(s)
	})
}

func applyOptions(target any, opts []Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}
	return nil
}

// WithPosition sets the element origin. Applicable to Text, Barcode, Box and Qrcode.
func WithPosition(p Position) Option {
	return setterOption("WithPosition", func(s interface{ SetPosition(Position) error }) error {
		return s.SetPosition(p)
	})
}

// WithEndPosition sets the bottom right corner of a Box.
func WithEndPosition(p Position) Option {
	return setterOption("WithEndPosition", func(s interface{ SetEndPosition(Position) error }) error {
		return s.SetEndPosition(p)
	})
}

// WithRotation sets the rotation of a Text or Barcode.
func WithRotation(r Rotation) Option {
	return setterOption("WithRotation", func(s interface{ SetRotation(Rotation) error }) error {
		return s.SetRotation(r)
	})
}

// WithFont sets the font of a Text.
func WithFont(f Font) Option {
	return setterOption("WithFont", func(s interface{ SetFont(Font) error }) error {
		return s.SetFont(f)
	})
}

// WithHorizontalMultiplier sets the horizontal expansion of a Text.
func WithHorizontalMultiplier(m HorizontalMultiplier) Option {
	return setterOption("WithHorizontalMultiplier", func(s interface {
		SetHorizontalMultiplier(HorizontalMultiplier) error
	}) error {
		return s.SetHorizontalMultiplier(m)
	})
}

// WithVerticalMultiplier sets the vertical expansion of a Text.
func WithVerticalMultiplier(m VerticalMultiplier) Option {
	return setterOption("WithVerticalMultiplier", func(s interface {
		SetVerticalMultiplier(VerticalMultiplier) error
	}) error {
		return s.SetVerticalMultiplier(m)
	})
}

// WithPrintMode sets the print mode of a Text.
func WithPrintMode(m PrintMode) Option {
	return setterOption("WithPrintMode", func(s interface{ SetPrintMode(PrintMode) error }) error {
		return s.SetPrintMode(m)
	})
}

// WithData sets the data printed by a Text, Barcode or Qrcode.
func WithData(data string) Option {
	return setterOption("WithData", func(s interface{ SetData(string) error }) error {
		return s.SetData(data)
	})
}

// WithBarcodeType sets the symbology of a Barcode.
//
// Bar widths are validated against the type held when they are set, so pass
// WithBarcodeType before WithNarrowBarWidth and WithWideBarWidth.
func WithBarcodeType(t BarcodeType) Option {
	return setterOption("WithBarcodeType", func(s interface{ SetType(BarcodeType) error }) error {
		return s.SetType(t)
	})
}

// WithNarrowBarWidth sets the narrow bar width of a Barcode.
func WithNarrowBarWidth(width int) Option {
	return setterOption("WithNarrowBarWidth", func(s interface{ SetNarrowBarWidth(int) error }) error {
		return s.SetNarrowBarWidth(width)
	})
}

// WithWideBarWidth sets the wide bar width of a Barcode.
func WithWideBarWidth(width int) Option {
	return setterOption("WithWideBarWidth", func(s interface{ SetWideBarWidth(int) error }) error {
		return s.SetWideBarWidth(width)
	})
}

// WithHeight sets the height of a Barcode.
func WithHeight(height int) Option {
	return setterOption("WithHeight", func(s interface{ SetHeight(int) error }) error {
		return s.SetHeight(height)
	})
}

// WithHumanReadable sets whether a Barcode prints its human readable line.
func WithHumanReadable(enable bool) Option {
	return setterOption("WithHumanReadable", func(s interface{ SetHumanReadable(bool) }) error {
		s.SetHumanReadable(enable)
		return nil
	})
}

// WithLineThickness sets the line thickness of a Box.
func WithLineThickness(thickness int) Option {
	return setterOption("WithLineThickness", func(s interface{ SetLineThickness(int) error }) error {
		return s.SetLineThickness(thickness)
	})
}

// WithScaleFactor sets the module scale factor of a Qrcode.
func WithScaleFactor(factor int) Option {
	return setterOption("WithScaleFactor", func(s interface{ SetScaleFactor(int) error }) error {
		return s.SetScaleFactor(factor)
	})
}

// WithCorrectionLevel sets the error correction level of a Qrcode.
func WithCorrectionLevel(level CorrectionLevel) Option {
	return setterOption("WithCorrectionLevel", func(s interface {
		SetCorrectionLevel(CorrectionLevel) error
	}) error {
		return s.SetCorrectionLevel(level)
	})
}

// WithNumberOfDataBits sets the data bit width of a CharacterSet.
func WithNumberOfDataBits(bits NumberOfDataBits) Option {
	return setterOption("WithNumberOfDataBits", func(s interface {
		SetNumberOfDataBits(NumberOfDataBits) error
	}) error {
		return s.SetNumberOfDataBits(bits)
	})
}

// WithLanguage sets the code page of a CharacterSet.
func WithLanguage(l Language) Option {
	return setterOption("WithLanguage", func(s interface{ SetLanguage(Language) error }) error {
		return s.SetLanguage(l)
	})
}

// WithCountryCode sets the country code of a CharacterSet.
func WithCountryCode(c CountryCode) Option {
	return setterOption("WithCountryCode", func(s interface{ SetCountryCode(CountryCode) error }) error {
		return s.SetCountryCode(c)
	})
}
