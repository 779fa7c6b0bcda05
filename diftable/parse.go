// Package diftable parses the Data Interchange Format (DIF).
//
// A DIF document starts with header sections like TABLE,
// VECTORS and TUPLES followed by a DATA section where every
// value is a pair of lines, a type indicator line and a value line:
//
//	TABLE
//	0,1
//	""
//	DATA
//	0,0
//	""
//	-1,0
//	BOT
//	1,0
//	"Name"
//	0,42
//	V
//	-1,0
//	EOD
//
// "-1,0" followed by BOT starts a new row and
// "-1,0" followed by EOD ends the data.
package diftable

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/domonda/go-gridtext"
)

// ErrValueBeforeRow is wrapped by the ParseError for a value
// that appears in the DATA section before the first BOT.
var ErrValueBeforeRow = errors.New("value before first BOT row marker")

type phase int

const (
	preData phase = iota
	inData
)

func (p phase) String() string {
	if p == inData {
		return "InData"
	}
	return "PreData"
}

// scanner holds the state while reading a DIF document.
type scanner struct {
	phase   phase
	row     int
	col     int
	grid    *gridtext.Grid
	skipped int
}

// step is the outcome of applying a directive.
type step struct {
	// consumed is the number of lines used, 1 or 2
	consumed int
	// stop ends the scan successfully
	stop bool
}

// directive is one kind of DATA section record
// recognized by a line and its following line.
// hasNext is false for the last line of the document.
type directive struct {
	name  string
	match func(line, next string, hasNext bool) bool
	apply func(s *scanner, line, next string) (step, error)
}

// directives are tested in order against every line of the DATA section.
var directives = []directive{
	{
		name: "dummy",
		match: func(line, next string, hasNext bool) bool {
			return line == "0,0" && hasNext && strings.TrimSpace(next) == `""`
		},
		apply: func(s *scanner, line, next string) (step, error) {
			return step{consumed: 2}, nil
		},
	},
	{
		name: "BOT",
		match: func(line, next string, hasNext bool) bool {
			return line == "-1,0" && hasNext && strings.EqualFold(strings.TrimSpace(next), "BOT")
		},
		apply: func(s *scanner, line, next string) (step, error) {
			s.row++
			s.col = 0
			return step{consumed: 2}, nil
		},
	},
	{
		name: "EOD",
		match: func(line, next string, hasNext bool) bool {
			return line == "-1,0" && hasNext && strings.EqualFold(strings.TrimSpace(next), "EOD")
		},
		apply: func(s *scanner, line, next string) (step, error) {
			return step{consumed: 2, stop: true}, nil
		},
	},
	{
		name: "string",
		match: func(line, next string, hasNext bool) bool {
			return strings.HasPrefix(line, "1,0") && hasNext
		},
		apply: func(s *scanner, line, next string) (step, error) {
			value := strings.Trim(strings.TrimSpace(next), `"`)
			if err := s.write(value); err != nil {
				return step{}, err
			}
			return step{consumed: 2}, nil
		},
	},
	{
		name: "numeric",
		match: func(line, next string, hasNext bool) bool {
			_, ok := numericLiteral(line)
			return ok
		},
		apply: func(s *scanner, line, next string) (step, error) {
			literal, _ := numericLiteral(line)
			if err := s.write(literal); err != nil {
				return step{}, err
			}
			if isValueIndicator(next) {
				return step{consumed: 2}, nil
			}
			return step{consumed: 1}, nil
		},
	},
}

// numericLiteral returns the number of a "0,<number>" line.
// Anything after a second comma is ignored.
func numericLiteral(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "0,")
	if !ok {
		return "", false
	}
	literal, _, _ := strings.Cut(rest, ",")
	literal = strings.TrimSpace(literal)
	if _, err := strconv.ParseFloat(literal, 64); err != nil {
		return "", false
	}
	return literal, true
}

func (s *scanner) write(value string) error {
	if s.row == 0 {
		return ErrValueBeforeRow
	}
	s.col++
	s.grid.Set(s.row, s.col, value)
	return nil
}

// isValueIndicator returns true for the line
// following the type indicator of a numeric value.
func isValueIndicator(line string) bool {
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "V", "NA", "TRUE", "FALSE", "ERROR":
		return true
	}
	return false
}

// Parse parses DIF lines into a new Grid.
//
// All lines before the DATA line are ignored.
// Within the DATA section the directives for dummy values,
// row starts (BOT), end of data (EOD), string values and
// numeric values are recognized. Every other non-blank line,
// including a "0," line without a valid number, is ignored
// and counted in Parsed.Skipped. Parsing stops at EOD
// or at the end of the lines.
//
// A value before the first row start results in a *gridtext.ParseError.
func Parse(lines []string) (*gridtext.Parsed, error) {
	s := scanner{grid: gridtext.NewGrid()}
	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])
		if s.phase == preData {
			if strings.EqualFold(line, "DATA") {
				s.phase = inData
			}
			i++
			continue
		}
		if line == "" {
			i++
			continue
		}

		var next string
		hasNext := i+1 < len(lines)
		if hasNext {
			next = lines[i+1]
		}
		d := matchDirective(line, next, hasNext)
		if d == nil {
			slog.Debug("skipping unknown DIF line", "line", i+1, "text", line)
			s.skipped++
			i++
			continue
		}
		st, err := d.apply(&s, line, next)
		if err != nil {
			return nil, gridtext.NewParseError(gridtext.DIF, i+1, line, err)
		}
		if st.stop {
			break
		}
		i += st.consumed
	}
	return &gridtext.Parsed{Dialect: gridtext.DIF, Grid: s.grid, Skipped: s.skipped}, nil
}

func matchDirective(line, next string, hasNext bool) *directive {
	for i := range directives {
		if directives[i].match(line, next, hasNext) {
			return &directives[i]
		}
	}
	return nil
}

// IsDIF reports if the first line, trimmed and case-insensitive,
// is TABLE or HEADER. If not, the failing line number 1 is returned.
func IsDIF(lines []string) (ok bool, line int) {
	if len(lines) == 0 {
		return false, 1
	}
	first := strings.ToUpper(strings.TrimSpace(lines[0]))
	if first != "TABLE" && first != "HEADER" {
		return false, 1
	}
	return true, 0
}
