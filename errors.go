package gridtext

import (
	"errors"
	"fmt"
)

// ErrUnknownDialect is wrapped by DetectionError
// when no dialect predicate matched a document.
var ErrUnknownDialect = errors.New("unknown document dialect")

// DetectionError is returned when the dialect of a document
// could not be determined.
//
// Use errors.Is(err, ErrUnknownDialect) to check for it.
type DetectionError struct {
	// Hint is the file extension hint passed to detection, may be empty.
	Hint string

	// Line is the 1-based line where the predicate of the
	// hinted dialect failed, or 0 if there was no usable hint.
	Line int
}

func (e *DetectionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (hint %q failed at line %d)", ErrUnknownDialect, e.Hint, e.Line)
	}
	return ErrUnknownDialect.Error()
}

func (e *DetectionError) Unwrap() error {
	return ErrUnknownDialect
}

// ParseError is returned when a document matched a dialect
// but a line violates the grammar of that dialect.
// No partial grid is returned together with a ParseError.
type ParseError struct {
	Dialect Dialect
	// Line is the 1-based line number of the offending line.
	Line int
	// Text is the offending line.
	Text string
	Err  error
}

// NewParseError returns a ParseError for the 1-based line
// with the passed text and cause.
func NewParseError(dialect Dialect, line int, text string, err error) *ParseError {
	return &ParseError{Dialect: dialect, Line: line, Text: text, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s line %d: %s: %q", e.Dialect, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
