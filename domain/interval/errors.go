package interval

import (
	"errors"
	"fmt"
)

// ErrMalformedLine indicates a line that does not hold exactly four integers.
var ErrMalformedLine = errors.New("malformed line")

// ErrInvertedRange indicates a range whose start is greater than its end.
var ErrInvertedRange = errors.New("range start exceeds end")

// LineError ties a parse failure to the input line that caused it.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%q: %v", e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
