package wordlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFrequency reports a last field that is not a base-10 integer.
	ErrInvalidFrequency = errors.New("invalid frequency")
	// ErrMissingWord reports a qualifying line with fewer than two fields.
	ErrMissingWord = errors.New("missing word field")
	// ErrInvalidText reports a line that is not valid UTF-8 after decoding.
	ErrInvalidText = errors.New("invalid utf-8 text")
)

// LineError attaches a 1-based input line number to a record error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
