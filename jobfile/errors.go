package jobfile

import "errors"

var (
	// ErrUnknownFormat indicates a description file whose extension is not .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("unknown description format")

	// ErrUnknownElementType indicates an element whose type is not text, barcode, box, qrcode or character_set.
	ErrUnknownElementType = errors.New("unknown element type")

	// ErrInvalidPosition indicates a position that does not hold exactly two coordinates.
	ErrInvalidPosition = errors.New("position should hold exactly two coordinates")

	// ErrUndecodedKeys indicates keys in a description that map to no attribute.
	ErrUndecodedKeys = errors.New("description holds unknown keys")
)
