package epl

// Text is an ASCII text field, encoded with the EPL "A" command.
//
// Rotation, multipliers and print mode fall back to no rotation, 1, 1 and
// normal when they were never set.
type Text struct {
	position    Position
	rotation    *Rotation
	font        *Font
	hMultiplier *HorizontalMultiplier
	vMultiplier *VerticalMultiplier
	printMode   *PrintMode
	data        *string
}

var _ Printable = (*Text)(nil)

// NewText creates a Text and applies the given options in order.
func NewText(opts ...Option) (*Text, error) {
	text := &Text{}
	if err := applyOptions(text, opts); err != nil {
		return nil, err
	}

	return text, nil
}

// Position returns the text origin.
func (t *Text) Position() Position { return t.position.clone() }

// SetPosition sets the text origin. Negative coordinates are rejected.
func (t *Text) SetPosition(p Position) error {
	if err := p.validate("position"); err != nil {
		return err
	}
	t.position = p.clone()

	return nil
}

// Rotation returns the rotation, NoRotation when unset.
func (t *Text) Rotation() Rotation {
	if t.rotation == nil {
		return NoRotation
	}
	return *t.rotation
}

// SetRotation sets the rotation.
func (t *Text) SetRotation(r Rotation) error {
	if err := r.Validate(); err != nil {
		return err
	}
	t.rotation = &r

	return nil
}

// Font returns the font and whether it was set.
func (t *Text) Font() (Font, bool) {
	if t.font == nil {
		return 0, false
	}
	return *t.font, true
}

// SetFont sets the font.
func (t *Text) SetFont(f Font) error {
	if err := f.Validate(); err != nil {
		return err
	}
	t.font = &f

	return nil
}

// ClearFont removes the font.
func (t *Text) ClearFont() { t.font = nil }

// HorizontalMultiplier returns the horizontal multiplier, 1 when unset.
func (t *Text) HorizontalMultiplier() HorizontalMultiplier {
	if t.hMultiplier == nil {
		return HorizontalMultiplier1
	}
	return *t.hMultiplier
}

// SetHorizontalMultiplier sets the horizontal multiplier.
func (t *Text) SetHorizontalMultiplier(m HorizontalMultiplier) error {
	if err := m.Validate(); err != nil {
		return err
	}
	t.hMultiplier = &m

	return nil
}

// VerticalMultiplier returns the vertical multiplier, 1 when unset.
func (t *Text) VerticalMultiplier() VerticalMultiplier {
	if t.vMultiplier == nil {
		return VerticalMultiplier1
	}
	return *t.vMultiplier
}

// SetVerticalMultiplier sets the vertical multiplier.
func (t *Text) SetVerticalMultiplier(m VerticalMultiplier) error {
	if err := m.Validate(); err != nil {
		return err
	}
	t.vMultiplier = &m

	return nil
}

// PrintMode returns the print mode, PrintModeNormal when unset.
func (t *Text) PrintMode() PrintMode {
	if t.printMode == nil {
		return PrintModeNormal
	}
	return *t.printMode
}

// SetPrintMode sets the print mode.
func (t *Text) SetPrintMode(m PrintMode) error {
	if err := m.Validate(); err != nil {
		return err
	}
	t.printMode = &m

	return nil
}

// Data returns the text to print and whether it was set.
func (t *Text) Data() (string, bool) {
	if t.data == nil {
		return "", false
	}
	return *t.data, true
}

// SetData sets the text to print. An empty string is a valid value. Line breaks are rejected.
func (t *Text) SetData(data string) error {
	if err := validateData(data); err != nil {
		return err
	}
	t.data = &data

	return nil
}

// ClearData removes the text to print.
func (t *Text) ClearData() { t.data = nil }

func (t *Text) requirements() []requirement {
	return append(positionRequirements(&t.position),
		requirement{present: func() bool { return t.font != nil }, message: "Can't print if the font to be used is not given"},
		requirement{present: func() bool { return t.data != nil }, message: msgMissingData},
	)
}

// ToEPL encodes the text as
//
//	A<x>,<y>,<rotation>,<font>,<h_multiplier>,<v_multiplier>,<print_mode>,"<data>"
func (t *Text) ToEPL() (string, error) {
	if err := checkRequirements(t.requirements()); err != nil {
		return "", err
	}

	return commandLine("A",
		itoa(*t.position.X),
		itoa(*t.position.Y),
		t.Rotation().String(),
		t.font.String(),
		t.HorizontalMultiplier().String(),
		t.VerticalMultiplier().String(),
		string(t.PrintMode()),
		quote(*t.data),
	), nil
}
