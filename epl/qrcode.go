package epl

const (
	minScaleFactor = 1
	maxScaleFactor = 99
)

// Qrcode is a QR code symbol, encoded with the EPL "b" command.
type Qrcode struct {
	position        Position
	scaleFactor     *int
	correctionLevel *CorrectionLevel
	data            *string
}

var _ Printable = (*Qrcode)(nil)

// NewQrcode creates a Qrcode and applies the given options in order.
func NewQrcode(opts ...Option) (*Qrcode, error) {
	qrcode := &Qrcode{}
	if err := applyOptions(qrcode, opts); err != nil {
		return nil, err
	}

	return qrcode, nil
}

// Position returns the symbol origin.
func (q *Qrcode) Position() Position { return q.position.clone() }

// SetPosition sets the symbol origin. Negative coordinates are rejected.
func (q *Qrcode) SetPosition(p Position) error {
	if err := p.validate("position"); err != nil {
		return err
	}
	q.position = p.clone()

	return nil
}

// ScaleFactor returns the module scale factor and whether it was set.
func (q *Qrcode) ScaleFactor() (int, bool) { return deref(q.scaleFactor) }

// SetScaleFactor sets the module scale factor, in range of [1, 99].
func (q *Qrcode) SetScaleFactor(factor int) error {
	if factor < minScaleFactor || factor > maxScaleFactor {
		return newValueError("scale_factor", factor, ErrInvalidScaleFactor)
	}
	q.scaleFactor = &factor

	return nil
}

// ClearScaleFactor removes the module scale factor.
func (q *Qrcode) ClearScaleFactor() { q.scaleFactor = nil }

// CorrectionLevel returns the error correction level and whether it was set.
func (q *Qrcode) CorrectionLevel() (CorrectionLevel, bool) {
	if q.correctionLevel == nil {
		return "", false
	}
	return *q.correctionLevel, true
}

// SetCorrectionLevel sets the error correction level.
func (q *Qrcode) SetCorrectionLevel(level CorrectionLevel) error {
	if err := level.Validate(); err != nil {
		return err
	}
	q.correctionLevel = &level

	return nil
}

// ClearCorrectionLevel removes the error correction level.
func (q *Qrcode) ClearCorrectionLevel() { q.correctionLevel = nil }

// Data returns the encoded data and whether it was set.
func (q *Qrcode) Data() (string, bool) {
	if q.data == nil {
		return "", false
	}
	return *q.data, true
}

// SetData sets the encoded data. Line breaks are rejected.
func (q *Qrcode) SetData(data string) error {
	if err := validateData(data); err != nil {
		return err
	}
	q.data = &data

	return nil
}

// ClearData removes the encoded data.
func (q *Qrcode) ClearData() { q.data = nil }

func (q *Qrcode) requirements() []requirement {
	return append(positionRequirements(&q.position),
		requirement{present: func() bool { return q.data != nil }, message: msgMissingData},
		requirement{present: func() bool { return q.scaleFactor != nil }, message: "Can't print if the scale factor to be used is not given"},
		requirement{present: func() bool { return q.correctionLevel != nil }, message: "Can't print if the error correction level to be used is not given"},
	)
}

// ToEPL encodes the symbol as b<x>,<y>,Q,s<scale_factor>,e<correction_level>,"<data>".
func (q *Qrcode) ToEPL() (string, error) {
	if err := checkRequirements(q.requirements()); err != nil {
		return "", err
	}

	return commandLine("b",
		itoa(*q.position.X),
		itoa(*q.position.Y),
		"Q",
		"s"+itoa(*q.scaleFactor),
		"e"+string(*q.correctionLevel),
		quote(*q.data),
	), nil
}
