// Package smf reads and rewrites Standard MIDI File byte streams.
//
// The package works on in-memory byte slices and keeps positions
// explicit, so a caller can rebuild a file while copying every byte it
// does not mean to change.
package smf

import "fmt"

// FormatError reports structural damage in MIDI data. Offset is the
// byte position within the parsed buffer where the damage was found.
type FormatError struct {
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid MIDI data at offset %d: %s", e.Offset, e.Msg)
}

func errorf(offset int, format string, args ...any) *FormatError {
	return &FormatError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
