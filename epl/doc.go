// Package epl builds EPL2 (Eltron Programming Language) print jobs for label printers.
//
// A job is a Label holding page setup (width, length/gap, speed, density, copies)
// and an ordered list of Printable elements: Text, Barcode, Box, Qrcode and
// CharacterSet. Each element encodes itself into one EPL command line.
//
// Validation happens in two tiers:
//   - Setters reject illegal values immediately and leave the previous value untouched.
//     The returned *ValueError wraps a sentinel such as ErrInvalidFont.
//   - ToEPL checks that every required attribute is present, in a fixed order, and
//     returns a *MissingAttributeError naming the first absent one. Checks that depend
//     on several attributes set in any order (language vs. number of data bits) also
//     run here.
//
// Usage Example:
//
//	text, err := epl.NewText(
//	    epl.WithPosition(epl.Pos(100, 150)),
//	    epl.WithFont(epl.Font3),
//	    epl.WithData("foobar"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	label, err := epl.NewLabel(epl.WithPrintSpeed(3), epl.WithElements(text))
//	if err != nil {
//	    return err
//	}
//
//	job, err := label.ToEPL()
//	// job == "O\nS3\n\nN\nA100,150,0,3,1,1,N,\"foobar\"\nP1\n"
//
// ToEPL returns the job as text. Encode and WriteTo return the bytes to send to
// the printer, with element data transcoded into the code page selected by the
// preceding CharacterSet. Transmitting the job to a printer is left to the caller.
package epl
