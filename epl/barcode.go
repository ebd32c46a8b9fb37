package epl

// Bar width limits, in dots.
const (
	minNarrowBarWidth        = 1
	maxNarrowBarWidth        = 30
	maxCode128NarrowBarWidth = 10
	minWideBarWidth          = 2
	maxWideBarWidth          = 30
	maxCode128WideBarWidth   = 10
)

// Barcode is a one-dimensional barcode, encoded with the EPL "B" command.
//
// Bar widths are checked against the barcode type held at the moment they are
// set. Changing the type afterwards does not re-check widths already stored.
type Barcode struct {
	position       Position
	rotation       *Rotation
	barcodeType    *BarcodeType
	narrowBarWidth *int
	wideBarWidth   *int
	height         *int
	humanReadable  bool
	data           *string
}

var _ Printable = (*Barcode)(nil)

// NewBarcode creates a Barcode and applies the given options in order.
func NewBarcode(opts ...Option) (*Barcode, error) {
	barcode := &Barcode{}
	if err := applyOptions(barcode, opts); err != nil {
		return nil, err
	}

	return barcode, nil
}

// Position returns the barcode origin.
func (b *Barcode) Position() Position { return b.position.clone() }

// SetPosition sets the barcode origin. Negative coordinates are rejected.
func (b *Barcode) SetPosition(p Position) error {
	if err := p.validate("position"); err != nil {
		return err
	}
	b.position = p.clone()

	return nil
}

// Rotation returns the rotation, NoRotation when unset.
func (b *Barcode) Rotation() Rotation {
	if b.rotation == nil {
		return NoRotation
	}
	return *b.rotation
}

// SetRotation sets the rotation.
func (b *Barcode) SetRotation(r Rotation) error {
	if err := r.Validate(); err != nil {
		return err
	}
	b.rotation = &r

	return nil
}

// Type returns the barcode type and whether it was set.
func (b *Barcode) Type() (BarcodeType, bool) {
	if b.barcodeType == nil {
		return "", false
	}
	return *b.barcodeType, true
}

// SetType sets the barcode type.
func (b *Barcode) SetType(t BarcodeType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	b.barcodeType = &t

	return nil
}

// ClearType removes the barcode type. Widths already set are kept.
func (b *Barcode) ClearType() { b.barcodeType = nil }

// NarrowBarWidth returns the narrow bar width and whether it was set.
func (b *Barcode) NarrowBarWidth() (int, bool) { return deref(b.narrowBarWidth) }

// SetNarrowBarWidth sets the narrow bar width.
//
// Code 128 types accept [1, 10], every other type accepts [1, 30].
func (b *Barcode) SetNarrowBarWidth(width int) error {
	maxWidth := maxNarrowBarWidth
	if b.isCode128() {
		maxWidth = maxCode128NarrowBarWidth
	}

	if width < minNarrowBarWidth || width > maxWidth {
		return newValueError("narrow_bar_width", width, ErrInvalidNarrowBarWidth)
	}
	b.narrowBarWidth = &width

	return nil
}

// ClearNarrowBarWidth removes the narrow bar width.
func (b *Barcode) ClearNarrowBarWidth() { b.narrowBarWidth = nil }

// WideBarWidth returns the wide bar width and whether it was set.
func (b *Barcode) WideBarWidth() (int, bool) { return deref(b.wideBarWidth) }

// SetWideBarWidth sets the wide bar width.
//
// Code 128 types accept [2, 10], every other type accepts [2, 30].
func (b *Barcode) SetWideBarWidth(width int) error {
	maxWidth := maxWideBarWidth
	if b.isCode128() {
		maxWidth = maxCode128WideBarWidth
	}

	if width < minWideBarWidth || width > maxWidth {
		return newValueError("wide_bar_width", width, ErrInvalidWideBarWidth)
	}
	b.wideBarWidth = &width

	return nil
}

// ClearWideBarWidth removes the wide bar width.
func (b *Barcode) ClearWideBarWidth() { b.wideBarWidth = nil }

// Height returns the bar height and whether it was set.
func (b *Barcode) Height() (int, bool) { return deref(b.height) }

// SetHeight sets the bar height in dots.
func (b *Barcode) SetHeight(height int) error {
	if height <= 0 {
		return newValueError("height", height, ErrInvalidHeight)
	}
	b.height = &height

	return nil
}

// ClearHeight removes the bar height.
func (b *Barcode) ClearHeight() { b.height = nil }

// HumanReadable reports whether the human readable line is printed. Defaults to false.
func (b *Barcode) HumanReadable() bool { return b.humanReadable }

// SetHumanReadable sets whether the human readable line is printed.
func (b *Barcode) SetHumanReadable(enable bool) { b.humanReadable = enable }

// Data returns the encoded data and whether it was set.
func (b *Barcode) Data() (string, bool) {
	if b.data == nil {
		return "", false
	}
	return *b.data, true
}

// SetData sets the encoded data. Line breaks are rejected.
func (b *Barcode) SetData(data string) error {
	if err := validateData(data); err != nil {
		return err
	}
	b.data = &data

	return nil
}

// ClearData removes the encoded data.
func (b *Barcode) ClearData() { b.data = nil }

func (b *Barcode) isCode128() bool {
	return b.barcodeType != nil && b.barcodeType.IsCode128()
}

func (b *Barcode) requirements() []requirement {
	return append(positionRequirements(&b.position),
		requirement{present: func() bool { return b.barcodeType != nil }, message: "Can't print if the barcode type to be used is not given"},
		requirement{present: func() bool { return b.data != nil }, message: msgMissingData},
		requirement{present: func() bool { return b.height != nil }, message: "Can't print if the height to be used is not given"},
		requirement{present: func() bool { return b.narrowBarWidth != nil }, message: "Can't print if the narrow bar width to be used is not given"},
		requirement{present: func() bool { return b.wideBarWidth != nil }, message: "Can't print if the wide bar width to be used is not given"},
	)
}

// ToEPL encodes the barcode as
//
//	B<x>,<y>,<rotation>,<type>,<narrow>,<wide>,<height>,<B|N>,"<data>"
func (b *Barcode) ToEPL() (string, error) {
	if err := checkRequirements(b.requirements()); err != nil {
		return "", err
	}

	humanReadable := "N"
	if b.humanReadable {
		humanReadable = "B"
	}

	return commandLine("B",
		itoa(*b.position.X),
		itoa(*b.position.Y),
		b.Rotation().String(),
		string(*b.barcodeType),
		itoa(*b.narrowBarWidth),
		itoa(*b.wideBarWidth),
		itoa(*b.height),
		humanReadable,
		quote(*b.data),
	), nil
}

func deref(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
