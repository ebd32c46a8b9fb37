package epl

import (
	"strconv"
	"strings"
)

// Printable is implemented by everything that can be placed in a label body.
//
// ToEPL validates that every required attribute is present and returns the
// EPL command line without the trailing newline. It never mutates the receiver.
type Printable interface {
	ToEPL() (string, error)
}

// Position is the (x, y) origin of an element in dots.
// Either coordinate may be nil until the element is encoded.
type Position struct {
	X *int
	Y *int
}

// Pos returns a position with both coordinates set.
func Pos(x, y int) Position {
	return Position{X: Int(x), Y: Int(y)}
}

// Int returns a pointer to v, for building partially set positions.
func Int(v int) *int {
	return &v
}

func (p Position) validate(attr string) error {
	for _, c := range []*int{p.X, p.Y} {
		if c != nil && *c < 0 {
			return newValueError(attr, *c, ErrInvalidPosition)
		}
	}
	return nil
}

func (p Position) clone() Position {
	var c Position
	if p.X != nil {
		c.X = Int(*p.X)
	}
	if p.Y != nil {
		c.Y = Int(*p.Y)
	}
	return c
}

// validateData rejects data that would not fit on a single command line.
func validateData(data string) error {
	if strings.ContainsAny(data, "\r\n") {
		return newValueError("data", data, ErrInvalidData)
	}
	return nil
}

// requirement is one entry of an element's ordered presence checklist.
type requirement struct {
	present func() bool
	message string
}

const (
	msgMissingX    = "Can't print if the X value is not given"
	msgMissingY    = "Can't print if the Y value is not given"
	msgMissingData = "Can't print if the data to be printed is not given"
)

func positionRequirements(p *Position) []requirement {
	return []requirement{
		{present: func() bool { return p.X != nil }, message: msgMissingX},
		{present: func() bool { return p.Y != nil }, message: msgMissingY},
	}
}

// checkRequirements returns a MissingAttributeError for the first absent attribute.
func checkRequirements(reqs []requirement) error {
	for _, req := range reqs {
		if !req.present() {
			return &MissingAttributeError{Message: req.message}
		}
	}
	return nil
}

// commandLine joins the tokens of a command with commas, prefixing the command letter.
func commandLine(command string, tokens ...string) string {
	var sb strings.Builder
	sb.WriteString(command)
	for i, token := range tokens {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(token)
	}
	return sb.String()
}

// quote wraps data in double quotes, escaping backslashes and quotes the way EPL expects.
func quote(data string) string {
	if !strings.ContainsAny(data, `"\`) {
		return `"` + data + `"`
	}

	var sb strings.Builder
	sb.Grow(len(data) + 4)
	sb.WriteByte('"')
	for _, ch := range data {
		if ch == '"' || ch == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(ch)
	}
	sb.WriteByte('"')

	return sb.String()
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
