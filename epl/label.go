package epl

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/arloliu/go-epl/internal/pool"
	"github.com/arloliu/go-epl/internal/util"
	"github.com/arloliu/go-epl/logger"
)

const (
	minPrintDensity = 0
	maxPrintDensity = 15
)

// Label is a complete print job: page setup followed by an ordered list of
// printable elements and the number of copies to print.
//
// Width, length/gap and density are optional; when unset their setup lines are
// omitted and the printer falls back to autosense or its stored defaults. The
// print speed is mandatory.
//
// A Label is not safe for concurrent use.
type Label struct {
	width        *int
	length       *int
	gap          *int
	printSpeed   *PrintSpeed
	printDensity *int
	copies       int
	elements     []Printable
	logger       logger.Logger
}

// NewLabel creates a Label with one copy and applies the given options in order.
func NewLabel(opts ...LabelOption) (*Label, error) {
	label := &Label{
		copies: 1,
		logger: logger.GetLogger(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(label); err != nil {
			return nil, err
		}
	}

	return label, nil
}

// Width returns the label width in dots and whether it was set.
func (l *Label) Width() (int, bool) { return deref(l.width) }

// SetWidth sets the label width in dots.
func (l *Label) SetWidth(width int) error {
	if width <= 0 {
		return newValueError("width", width, ErrInvalidWidth)
	}
	l.width = &width

	return nil
}

// Length returns the label length in dots and whether it was set.
func (l *Label) Length() (int, bool) { return deref(l.length) }

// Gap returns the gap between labels in dots and whether it was set.
func (l *Label) Gap() (int, bool) { return deref(l.gap) }

// SetLengthAndGap sets the label length and the gap between labels.
// The length must be positive; a zero gap selects continuous media.
func (l *Label) SetLengthAndGap(length, gap int) error {
	if length <= 0 {
		return newValueError("length", length, ErrInvalidLengthAndGap)
	}
	if gap < 0 {
		return newValueError("gap", gap, ErrInvalidLengthAndGap)
	}
	l.length = &length
	l.gap = &gap

	return nil
}

// PrintSpeed returns the print speed and whether it was set.
func (l *Label) PrintSpeed() (PrintSpeed, bool) {
	if l.printSpeed == nil {
		return 0, false
	}
	return *l.printSpeed, true
}

// SetPrintSpeed sets the print speed, in range of [0, 6].
func (l *Label) SetPrintSpeed(speed PrintSpeed) error {
	if err := speed.Validate(); err != nil {
		return err
	}
	l.printSpeed = &speed

	return nil
}

// PrintDensity returns the print density and whether it was set.
func (l *Label) PrintDensity() (int, bool) { return deref(l.printDensity) }

// SetPrintDensity sets the print density, in range of [0, 15].
func (l *Label) SetPrintDensity(density int) error {
	if density < minPrintDensity || density > maxPrintDensity {
		return newValueError("print_density", density, ErrInvalidPrintDensity)
	}
	l.printDensity = &density

	return nil
}

// ParsePrintDensity accepts an integer in [0, 15], as a number or a numeric string.
// Non-numeric input is rejected with ErrInvalidPrintDensity.
func ParsePrintDensity(value any) (int, error) {
	density, err := util.ToInt(value)
	if err != nil || density < minPrintDensity || density > maxPrintDensity {
		return 0, newValueError("print_density", value, ErrInvalidPrintDensity)
	}

	return density, nil
}

// Copies returns the number of copies to print. Defaults to 1.
func (l *Label) Copies() int { return l.copies }

// SetCopies sets the number of copies to print.
func (l *Label) SetCopies(copies int) error {
	if copies < 1 {
		return newValueError("copies", copies, ErrInvalidCopies)
	}
	l.copies = copies

	return nil
}

// Append adds elements to the label body. Elements are validated when the
// label is serialized, not here.
func (l *Label) Append(elements ...Printable) {
	l.elements = append(l.elements, elements...)
}

// Elements returns a copy of the label body.
func (l *Label) Elements() []Printable {
	return util.CloneSlice(l.elements, 0)
}

// ToEPL serializes the whole job.
//
// The job is laid out as:
//
//	O
//	Q<length>,<gap>   (only when set)
//	q<width>          (only when set)
//	S<print_speed>
//	D<print_density>  (only when set)
//	<empty line>
//	N
//	<one line per element>
//	P<copies>
//
// ErrPrintSpeedNotInformed is returned when no print speed was set. Element
// errors are wrapped with the element index. Nothing is returned on failure.
func (l *Label) ToEPL() (string, error) {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if err := l.serialize(buf, false); err != nil {
		return "", err
	}
	l.logger.Debug("label serialized", "elements", len(l.elements), "copies", l.copies, "bytes", buf.Len())

	return buf.String(), nil
}

// Encode serializes the job the way ToEPL does, then transcodes every element
// line into the code page selected by the last CharacterSet before it. Lines
// with no 8-bit character set ahead of them are sent unchanged.
//
// ErrUnencodableData is returned when data holds a character the code page lacks.
func (l *Label) Encode() ([]byte, error) {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if err := l.serialize(buf, true); err != nil {
		return nil, err
	}
	l.logger.Debug("label encoded", "elements", len(l.elements), "copies", l.copies, "bytes", buf.Len())

	return bytes.Clone(buf.Bytes()), nil
}

func (l *Label) serialize(buf *bytes.Buffer, transcode bool) error {
	if l.printSpeed == nil {
		return ErrPrintSpeedNotInformed
	}

	writeLine(buf, "O")
	if l.length != nil && l.gap != nil {
		writeLine(buf, commandLine("Q", itoa(*l.length), itoa(*l.gap)))
	}
	if l.width != nil {
		writeLine(buf, commandLine("q", itoa(*l.width)))
	}
	writeLine(buf, commandLine("S", l.printSpeed.String()))
	if l.printDensity != nil {
		writeLine(buf, commandLine("D", itoa(*l.printDensity)))
	}
	writeLine(buf, "")
	writeLine(buf, "N")

	var codePage encoding.Encoding
	for i, element := range l.elements {
		line, err := element.ToEPL()
		if err != nil {
			l.logger.Debug("label element rejected", "index", i, "element", fmt.Sprintf("%T", element), "error", err)
			return fmt.Errorf("element %d: %w", i, err)
		}

		if transcode && codePage != nil {
			line, _, err = transform.String(codePage.NewEncoder(), line)
			if err != nil {
				l.logger.Debug("label element rejected", "index", i, "element", fmt.Sprintf("%T", element), "error", err)
				return fmt.Errorf("element %d: %w: %w", i, ErrUnencodableData, err)
			}
		}
		writeLine(buf, line)

		if cs, ok := element.(*CharacterSet); ok {
			codePage, _ = cs.Encoding()
		}
	}

	writeLine(buf, commandLine("P", itoa(l.copies)))

	return nil
}

// WriteTo encodes the job into w, as returned by Encode. Nothing is written if
// encoding fails.
func (l *Label) WriteTo(w io.Writer) (int64, error) {
	job, err := l.Encode()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(job)

	return int64(n), err
}

// String returns the serialized job, or an empty string if it can't be serialized.
func (l *Label) String() string {
	job, _ := l.ToEPL()
	return job
}

func writeLine(buf *bytes.Buffer, line string) {
	buf.WriteString(line)
	buf.WriteByte('\n')
}

// LabelOption represents a functional option for configuring a Label.
type LabelOption interface {
	apply(*Label) error
}

type labelOptFunc struct {
	name      string
	applyFunc func(*Label) error
}

func (o *labelOptFunc) apply(l *Label) error { return o.applyFunc(l) }

func newLabelOptFunc(name string, f func(*Label) error) *labelOptFunc {
	return &labelOptFunc{name: name, applyFunc: f}
}

// WithWidth sets the label width in dots.
func WithWidth(width int) LabelOption {
	return newLabelOptFunc("WithWidth", func(l *Label) error {
		return l.SetWidth(width)
	})
}

// WithLengthAndGap sets the label length and the gap between labels, in dots.
func WithLengthAndGap(length, gap int) LabelOption {
	return newLabelOptFunc("WithLengthAndGap", func(l *Label) error {
		return l.SetLengthAndGap(length, gap)
	})
}

// WithPrintSpeed sets the print speed.
func WithPrintSpeed(speed PrintSpeed) LabelOption {
	return newLabelOptFunc("WithPrintSpeed", func(l *Label) error {
		return l.SetPrintSpeed(speed)
	})
}

// WithPrintDensity sets the print density.
func WithPrintDensity(density int) LabelOption {
	return newLabelOptFunc("WithPrintDensity", func(l *Label) error {
		return l.SetPrintDensity(density)
	})
}

// WithCopies sets the number of copies.
func WithCopies(copies int) LabelOption {
	return newLabelOptFunc("WithCopies", func(l *Label) error {
		return l.SetCopies(copies)
	})
}

// WithElements appends elements to the label body.
func WithElements(elements ...Printable) LabelOption {
	return newLabelOptFunc("WithElements", func(l *Label) error {
		l.Append(elements...)
		return nil
	})
}

// WithLogger sets the logger receiving serialization records.
// Defaults to logger.GetLogger().
func WithLogger(l logger.Logger) LabelOption {
	return newLabelOptFunc("WithLogger", func(label *Label) error {
		if l != nil {
			label.logger = l
		}
		return nil
	})
}
