package dialects

import (
	"fmt"
	"log/slog"

	"github.com/domonda/go-gridtext"
	"github.com/domonda/go-gridtext/csvtable"
	"github.com/domonda/go-gridtext/diftable"
	"github.com/domonda/go-gridtext/mdtable"
	"github.com/domonda/go-gridtext/sertable"
	"github.com/domonda/go-gridtext/sylktable"
)

type options struct {
	csvSeparator string
}

// Option configures Parse.
type Option func(*options)

// WithCSVSeparator sets the field separator used for CSV documents.
// The default is ",", pass csvtable.AutoSeparator to detect it.
func WithCSVSeparator(separator string) Option {
	return func(o *options) {
		o.csvSeparator = separator
	}
}

// Parse detects the dialect of lines using the extension hint
// and parses them with the matching parser into a new Grid.
//
// Returns a *gridtext.DetectionError wrapping gridtext.ErrUnknownDialect
// if no dialect was detected, or the *gridtext.ParseError of the
// dialect parser. No grid is returned together with an error.
//
// Parsing the same lines twice results in equal grids.
func Parse(hint string, lines []string, opts ...Option) (*gridtext.Parsed, error) {
	detection := Detect(hint, lines)
	if !detection.Detected() {
		return nil, &gridtext.DetectionError{Hint: hint, Line: detection.Line}
	}
	parsed, err := ParseDialect(detection.Dialect, lines, opts...)
	if err != nil {
		return nil, err
	}
	if parsed.Skipped > 0 {
		slog.Debug("skipped records", "dialect", parsed.Dialect, "skipped", parsed.Skipped)
	}
	return parsed, nil
}

// ParseDialect parses lines with the parser of the passed dialect
// without detection.
func ParseDialect(dialect gridtext.Dialect, lines []string, opts ...Option) (*gridtext.Parsed, error) {
	o := options{csvSeparator: ","}
	for _, opt := range opts {
		opt(&o)
	}

	switch dialect {
	case gridtext.SER:
		return sertable.Parse(lines)
	case gridtext.CSV:
		return csvtable.ParseWithSeparator(lines, o.csvSeparator)
	case gridtext.SYLK:
		return sylktable.Parse(lines)
	case gridtext.Markdown:
		return mdtable.Parse(lines)
	case gridtext.DIF:
		return diftable.Parse(lines)
	case gridtext.Unknown:
		return nil, gridtext.ErrUnknownDialect
	}
	return nil, fmt.Errorf("invalid dialect %d", int(dialect))
}
