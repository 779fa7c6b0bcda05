package csvtable

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/domonda/go-gridtext"
)

// ErrUnterminatedQuote is wrapped by the ParseError for
// a quoted field that is still open after the last line.
var ErrUnterminatedQuote = errors.New("quoted field not terminated")

// Parse parses comma separated lines into a new Grid.
// It is ParseWithSeparator(lines, ",").
func Parse(lines []string) (*gridtext.Parsed, error) {
	return ParseWithSeparator(lines, ",")
}

// ParseWithSeparator parses CSV lines with the passed single character
// separator into a new Grid.
//
// With AutoSeparator a "sep=X" declaration in the first line
// sets the separator and is not part of the grid, without it
// the separator is detected with DetectSeparator.
// With an explicit separator every line is data.
//
// Quoted fields may contain separators and line breaks.
// Every non-empty record gets the next row index starting at 1,
// fields are stored at their 1-based position with surrounding
// whitespace trimmed. Empty records are skipped.
//
// Fields with quote patterns that can't be interpreted and
// quoted fields that are not closed until the last line
// result in a *gridtext.ParseError.
func ParseWithSeparator(lines []string, separator string) (*gridtext.Parsed, error) {
	firstLineNo := 1
	if separator == AutoSeparator {
		if len(lines) > 0 {
			separator = parseSepHeaderLine([]byte(strings.TrimSuffix(lines[0], "\r")))
		}
		if separator != "" {
			lines = lines[1:]
			firstLineNo = 2
		} else {
			separator = DetectSeparator(lines)
		}
	}
	if len(separator) != 1 {
		return nil, fmt.Errorf("invalid CSV separator: %q", separator)
	}

	byteLines := make([][]byte, len(lines))
	for i, line := range lines {
		byteLines[i] = []byte(strings.TrimSuffix(line, "\r"))
	}

	records, recordLines, err := joinQuotedLines(byteLines, []byte(separator), "\n")
	if err == nil {
		var rows [][]string
		rows, err = readLines(records, []byte(separator))
		if err == nil {
			return newParsed(rows), nil
		}
	}
	var lineErr *lineError
	if errors.As(err, &lineErr) {
		lineIndex := lineErr.index
		if recordLines != nil {
			lineIndex = recordLines[lineErr.index]
		}
		return nil, gridtext.NewParseError(gridtext.CSV, firstLineNo+lineIndex, string(lineErr.line), lineErr.err)
	}
	return nil, err
}

func newParsed(rows [][]string) *gridtext.Parsed {
	grid := gridtext.NewGrid()
	rowIndex := 0
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		rowIndex++
		for col, value := range row {
			grid.Set(rowIndex, col+1, strings.TrimSpace(value))
		}
	}
	return &gridtext.Parsed{Dialect: gridtext.CSV, Grid: grid}
}

// IsCSV reports if every non-empty line contains
// a comma, semicolon or tab character.
// If not, the 1-based number of the first offending line is returned.
func IsCSV(lines []string) (ok bool, line int) {
	if len(lines) == 0 {
		return false, 1
	}
	for i, l := range lines {
		if l == "" {
			continue
		}
		if !strings.ContainsAny(l, ",;\t") {
			return false, i + 1
		}
	}
	return true, 0
}

// lineError is returned by readLines for a field
// with a quote pattern that can't be handled.
type lineError struct {
	index int
	line  []byte
	err   error
}

func (e *lineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.index+1, e.err)
}

func (e *lineError) Unwrap() error { return e.err }

// joinQuotedLines joins lines into records so that line breaks
// within quoted fields become newlineReplacement.
// A quote opens a quoted field only at the start of a field,
// within a quoted field "" is an escaped quote.
// recordLines holds the index of the first line of every record.
func joinQuotedLines(lines [][]byte, separator []byte, newlineReplacement string) (records [][]byte, recordLines []int, err error) {
	var (
		inQuotes   bool
		recordLine int
	)
	for lineIndex, line := range lines {
		if inQuotes {
			last := len(records) - 1
			record := slices.Clip(records[last])
			record = append(record, newlineReplacement...)
			records[last] = append(record, line...)
		} else {
			records = append(records, line)
			recordLines = append(recordLines, lineIndex)
			recordLine = lineIndex
		}
		inQuotes = scanQuotes(line, separator[0], inQuotes)
	}
	if inQuotes {
		return nil, nil, &lineError{
			index: recordLine,
			line:  lines[recordLine],
			err:   ErrUnterminatedQuote,
		}
	}
	return records, recordLines, nil
}

// scanQuotes returns if a quoted field is still open
// at the end of line when scanning starts with inQuotes.
func scanQuotes(line []byte, separator byte, inQuotes bool) bool {
	fieldStart := !inQuotes
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					i++
					continue
				}
				inQuotes = false
			}
			continue
		}
		switch {
		case c == separator:
			fieldStart = true
			continue
		case c == '"' && fieldStart:
			inQuotes = true
		}
		fieldStart = false
	}
	return inQuotes
}

// readLines parses CSV records into rows of string fields.
//
// Quoting and Escaping Rules (RFC 4180):
//   - Fields containing separator, newline, or quotes must be quoted
//   - Quotes within quoted fields are escaped by doubling: "" represents "
//
// If a field begins with a quote but doesn't end with one,
// a separator was within the quoted field and the following
// fields are joined until the closing quote.
// Records joined by joinQuotedLines are handled the same way.
//
// Empty lines become nil rows.
func readLines(lines [][]byte, separator []byte) (rows [][]string, err error) {
	rows = make([][]string, len(lines))
	for lineIndex, line := range lines {
		if len(line) == 0 {
			continue
		}

		fields := bytes.Split(line, separator)
		for i := 0; i < len(fields); i++ {
			field := fields[i]
			if len(field) < 2 {
				continue
			}

			leftQuotes, rightQuotes := countQuotesLeftRight(field)
			switch {
			case leftQuotes == 0 && rightQuotes == 0:
				// Unquoted field

			case leftQuotes == 1 && rightQuotes == 1, // Quoted field
				leftQuotes == 3 && rightQuotes == 1, // Quoted field beginning with escapted quote
				leftQuotes == 1 && rightQuotes == 3, // Quoted field ending with escapted quote
				leftQuotes == 3 && rightQuotes == 3, // Quoted field with escaped quotes inside
				leftQuotes == 2 && rightQuotes == 2: // Field not quoted, but escaped quotes inside

				field = field[1 : len(field)-1]

			case leftQuotes == 0 && rightQuotes >= 1:
				// Field internal quoting, no special handling needed

			case leftQuotes >= 1 && rightQuotes == 0:
				if leftQuotes == 2 {
					// Escaped quote at the beginning,
					// will be unescaped further down
					break
				}

				// A separator within a quoted field split it into
				// multiple fields, find the field with the closing quote
				for r := i + 1; r < len(fields); r++ {
					rField := fields[r]
					if len(rField) < 2 {
						continue
					}
					rLeftQuotes, rRightQuotes := countQuotesLeftRight(rField)
					var (
						rLeftOK  = rLeftQuotes == 0 || rLeftQuotes == 2 // may only begin with an escaped quote
						rRightOK = (leftQuotes == 1 || leftQuotes == 3) && (rRightQuotes == 1 || rRightQuotes == 3)
					)
					if rLeftOK && rRightOK {
						field = bytes.Join(fields[i:r+1], separator)
						field = field[1 : len(field)-1]
						copy(fields[i+1:], fields[r+1:])
						fields = fields[:len(fields)-(r-i)]
						break
					}
				}

			default:
				return nil, &lineError{
					index: lineIndex,
					line:  line,
					err:   fmt.Errorf("can't handle CSV field `%s`", field),
				}
			}

			fields[i] = bytes.ReplaceAll(field, []byte(`""`), []byte{'"'})
		}

		row := make([]string, len(fields))
		for i := range fields {
			row[i] = string(fields[i])
		}
		rows[lineIndex] = row
	}

	return rows, nil
}

// countQuotesLeft counts consecutive quote characters from the start of str.
func countQuotesLeft(str []byte) int {
	for i, c := range str {
		if c != '"' {
			return i
		}
	}
	return len(str)
}

// countQuotesRight counts consecutive quote characters from the end of str.
func countQuotesRight(str []byte) int {
	for i := len(str) - 1; i >= 0; i-- {
		if str[i] != '"' {
			return len(str) - 1 - i
		}
	}
	return len(str)
}

// countQuotesLeftRight counts consecutive quotes from both ends of str.
// If str consists only of quotes, they are split between
// left and right with left getting one more for an odd number.
//
// Example:
//
//	countQuotesLeftRight([]byte(`"value"`))    // 1, 1
//	countQuotesLeftRight([]byte(`""value""`))  // 2, 2
//	countQuotesLeftRight([]byte(`""""`))       // 2, 2
func countQuotesLeftRight(str []byte) (left, right int) {
	left = countQuotesLeft(str)
	right = countQuotesRight(str)

	if left == len(str) {
		left = (len(str) + 1) / 2
		right = len(str) - left
	}

	return left, right
}
