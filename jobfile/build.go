package jobfile

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-epl/epl"
)

// Element type names used by ElementSpec.Type.
const (
	TypeText         = "text"
	TypeBarcode      = "barcode"
	TypeBox          = "box"
	TypeQrcode       = "qrcode"
	TypeCharacterSet = "character_set"
)

// Build creates the label described by d.
//
// Page attributes are applied first, then each element is created in order.
// The first illegal value stops the build; the error names the element index.
func (d *Description) Build(opts ...epl.LabelOption) (*epl.Label, error) {
	labelOpts, err := d.labelOptions()
	if err != nil {
		return nil, err
	}

	label, err := epl.NewLabel(append(labelOpts, opts...)...)
	if err != nil {
		return nil, err
	}

	for i := range d.Elements {
		spec := &d.Elements[i]
		element, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("elements[%d] (%s): %w", i, spec.Type, err)
		}
		label.Append(element)
	}

	return label, nil
}

func (d *Description) labelOptions() ([]epl.LabelOption, error) {
	var opts []epl.LabelOption

	if d.Width != nil {
		opts = append(opts, epl.WithWidth(*d.Width))
	}
	if d.Length != nil || d.Gap != nil {
		length, gap := 0, 0
		if d.Length != nil {
			length = *d.Length
		}
		if d.Gap != nil {
			gap = *d.Gap
		}
		opts = append(opts, epl.WithLengthAndGap(length, gap))
	}
	if d.PrintSpeed != nil {
		speed, err := epl.ParsePrintSpeed(d.PrintSpeed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, epl.WithPrintSpeed(speed))
	}
	if d.PrintDensity != nil {
		density, err := epl.ParsePrintDensity(d.PrintDensity)
		if err != nil {
			return nil, err
		}
		opts = append(opts, epl.WithPrintDensity(density))
	}
	if d.Copies != nil {
		opts = append(opts, epl.WithCopies(*d.Copies))
	}

	return opts, nil
}

// Build creates the element described by s.
func (s *ElementSpec) Build() (epl.Printable, error) {
	opts, err := s.options()
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case TypeText:
		return newElement(epl.NewText, opts)
	case TypeBarcode:
		return newElement(epl.NewBarcode, opts)
	case TypeBox:
		return newElement(epl.NewBox, opts)
	case TypeQrcode:
		return newElement(epl.NewQrcode, opts)
	case TypeCharacterSet:
		return newElement(epl.NewCharacterSet, opts)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownElementType, s.Type)
}

func newElement[T epl.Printable](newFunc func(...epl.Option) (T, error), opts []epl.Option) (epl.Printable, error) {
	element, err := newFunc(opts...)
	if err != nil {
		return nil, err
	}

	return element, nil
}

// options converts the set attributes into epl options. The barcode type is
// emitted before the bar widths, since widths are checked against it.
func (s *ElementSpec) options() ([]epl.Option, error) {
	var opts []epl.Option

	if s.Position != nil {
		p, err := toPosition(s.Position)
		if err != nil {
			return nil, err
		}
		opts = append(opts, epl.WithPosition(p))
	}
	if s.EndPosition != nil {
		p, err := toPosition(s.EndPosition)
		if err != nil {
			return nil, err
		}
		opts = append(opts, epl.WithEndPosition(p))
	}

	parsers := []struct {
		value any
		parse func(any) (epl.Option, error)
	}{
		{s.Rotation, parseOption(epl.ParseRotation, epl.WithRotation)},
		{s.Font, parseOption(epl.ParseFont, epl.WithFont)},
		{s.HMultiplier, parseOption(epl.ParseHorizontalMultiplier, epl.WithHorizontalMultiplier)},
		{s.VMultiplier, parseOption(epl.ParseVerticalMultiplier, epl.WithVerticalMultiplier)},
		{s.PrintMode, parseOption(epl.ParsePrintMode, epl.WithPrintMode)},
		{s.BarcodeType, parseOption(epl.ParseBarcodeType, epl.WithBarcodeType)},
		{s.CorrectionLevel, parseOption(epl.ParseCorrectionLevel, epl.WithCorrectionLevel)},
		{s.NumberOfDataBits, parseOption(epl.ParseNumberOfDataBits, epl.WithNumberOfDataBits)},
		{s.Language, parseOption(epl.ParseLanguage, epl.WithLanguage)},
		{s.CountryCode, parseOption(epl.ParseCountryCode, epl.WithCountryCode)},
	}
	for _, p := range parsers {
		if p.value == nil {
			continue
		}
		opt, err := p.parse(p.value)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}

	if s.NarrowBarWidth != nil {
		opts = append(opts, epl.WithNarrowBarWidth(*s.NarrowBarWidth))
	}
	if s.WideBarWidth != nil {
		opts = append(opts, epl.WithWideBarWidth(*s.WideBarWidth))
	}
	if s.Height != nil {
		opts = append(opts, epl.WithHeight(*s.Height))
	}
	if s.HumanReadable != nil {
		opts = append(opts, epl.WithHumanReadable(*s.HumanReadable))
	}
	if s.LineThickness != nil {
		opts = append(opts, epl.WithLineThickness(*s.LineThickness))
	}
	if s.ScaleFactor != nil {
		opts = append(opts, epl.WithScaleFactor(*s.ScaleFactor))
	}
	if s.Data != nil {
		opts = append(opts, epl.WithData(*s.Data))
	}

	return opts, nil
}

func parseOption[T any](parse func(any) (T, error), with func(T) epl.Option) func(any) (epl.Option, error) {
	return func(value any) (epl.Option, error) {
		v, err := parse(value)
		if err != nil {
			return nil, err
		}
		return with(v), nil
	}
}

func toPosition(coords []*int) (epl.Position, error) {
	if len(coords) != 2 {
		return epl.Position{}, fmt.Errorf("%w: got %d", ErrInvalidPosition, len(coords))
	}

	return epl.Position{X: coords[0], Y: coords[1]}, nil
}
