// Package sylktable parses cell records of the
// Symbolic Link (SYLK) dialect.
//
// Only records starting with "C;X" are read as data,
// for example:
//
//	ID;P
//	C;X1;Y1;K"Hello"
//	C;X2;K42;Y2
//	E
package sylktable

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/domonda/go-gridtext"
)

// RecordPrefix marks the cell records of a SYLK document.
const RecordPrefix = "C;X"

// Parse parses the cell records of SYLK lines into a new Grid.
//
// The X (column), Y (row) and K (value) fields of a record
// may appear in any order. Quotes around K values are removed.
// A record without a positive X, a positive Y or a K field
// is skipped and counted in Parsed.Skipped.
// X or Y fields that are not integers result in a *gridtext.ParseError.
func Parse(lines []string) (*gridtext.Parsed, error) {
	parsed := &gridtext.Parsed{Dialect: gridtext.SYLK, Grid: gridtext.NewGrid()}
	for i, line := range lines {
		if !strings.HasPrefix(line, RecordPrefix) {
			continue
		}
		row, col, value, ok, err := parseRecord(line)
		if err != nil {
			return nil, gridtext.NewParseError(gridtext.SYLK, i+1, line, err)
		}
		if !ok {
			slog.Debug("skipping incomplete SYLK record", "line", i+1, "record", line)
			parsed.Skipped++
			continue
		}
		parsed.Grid.Set(row, col, value)
	}
	return parsed, nil
}

func parseRecord(line string) (row, col int, value string, ok bool, err error) {
	hasValue := false
	for _, field := range strings.Split(line, ";") {
		if field == "" {
			continue
		}
		switch field[0] {
		case 'X':
			col, err = strconv.Atoi(strings.TrimSpace(field[1:]))
			if err != nil {
				return 0, 0, "", false, fmt.Errorf("invalid X field %q: %w", field, err)
			}
		case 'Y':
			row, err = strconv.Atoi(strings.TrimSpace(field[1:]))
			if err != nil {
				return 0, 0, "", false, fmt.Errorf("invalid Y field %q: %w", field, err)
			}
		case 'K':
			value = strings.Trim(field[1:], `"`)
			hasValue = true
		}
	}
	return row, col, value, row > 0 && col > 0 && hasValue, nil
}

// IsSYLK reports if the first line starts with "ID".
// If not, the failing line number 1 is returned.
func IsSYLK(lines []string) (ok bool, line int) {
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "ID") {
		return false, 1
	}
	return true, 0
}
