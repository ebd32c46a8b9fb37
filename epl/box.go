package epl

// Box draws a rectangle, encoded with the EPL "X" command.
type Box struct {
	position      Position
	endPosition   Position
	lineThickness *int
}

var _ Printable = (*Box)(nil)

// NewBox creates a Box and applies the given options in order.
func NewBox(opts ...Option) (*Box, error) {
	box := &Box{}
	if err := applyOptions(box, opts); err != nil {
		return nil, err
	}

	return box, nil
}

// Position returns the top left corner.
func (b *Box) Position() Position { return b.position.clone() }

// SetPosition sets the top left corner. Negative coordinates are rejected.
func (b *Box) SetPosition(p Position) error {
	if err := p.validate("position"); err != nil {
		return err
	}
	b.position = p.clone()

	return nil
}

// EndPosition returns the bottom right corner.
func (b *Box) EndPosition() Position { return b.endPosition.clone() }

// SetEndPosition sets the bottom right corner. Negative coordinates are rejected.
func (b *Box) SetEndPosition(p Position) error {
	if err := p.validate("end_position"); err != nil {
		return err
	}
	b.endPosition = p.clone()

	return nil
}

// LineThickness returns the line thickness and whether it was set.
func (b *Box) LineThickness() (int, bool) { return deref(b.lineThickness) }

// SetLineThickness sets the line thickness in dots.
func (b *Box) SetLineThickness(thickness int) error {
	if thickness <= 0 {
		return newValueError("line_thickness", thickness, ErrInvalidLineThickness)
	}
	b.lineThickness = &thickness

	return nil
}

// ClearLineThickness removes the line thickness.
func (b *Box) ClearLineThickness() { b.lineThickness = nil }

func (b *Box) requirements() []requirement {
	return append(positionRequirements(&b.position),
		requirement{present: func() bool { return b.endPosition.X != nil }, message: "Can't print if the horizontal end position (X) is not given"},
		requirement{present: func() bool { return b.endPosition.Y != nil }, message: "Can't print if the vertical end position (Y) is not given"},
		requirement{present: func() bool { return b.lineThickness != nil }, message: "Can't print if the line thickness is not given"},
	)
}

// ToEPL encodes the box as X<x>,<y>,<line_thickness>,<end_x>,<end_y>.
func (b *Box) ToEPL() (string, error) {
	if err := checkRequirements(b.requirements()); err != nil {
		return "", err
	}

	return commandLine("X",
		itoa(*b.position.X),
		itoa(*b.position.Y),
		itoa(*b.lineThickness),
		itoa(*b.endPosition.X),
		itoa(*b.endPosition.Y),
	), nil
}
