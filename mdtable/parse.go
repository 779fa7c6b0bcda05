// Package mdtable reads and writes Markdown (pipe) tables:
//
//	| Name | Age |
//	|------|----:|
//	| John | 30  |
//
// The header and separator lines are not part of the grid,
// the first data line becomes row 1.
package mdtable

import (
	"errors"
	"strings"

	"github.com/domonda/go-gridtext"
)

// ErrMissingHeader is wrapped by the ParseError for
// documents with less than two non-blank lines.
var ErrMissingHeader = errors.New("missing header or separator line")

// Parse parses Markdown table lines into a new Grid.
//
// Blank lines are discarded. The first two remaining lines
// are the header and separator and are not written to the grid.
// Every following line is trimmed of leading and trailing '|'
// characters and split at '|' into trimmed cell values.
func Parse(lines []string) (*gridtext.Parsed, error) {
	var (
		kept    []string
		lineNos []int
	)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
		lineNos = append(lineNos, i+1)
	}
	if len(kept) < 2 {
		lineNo, text := 1, ""
		if len(kept) == 1 {
			lineNo, text = lineNos[0], kept[0]
		}
		return nil, gridtext.NewParseError(gridtext.Markdown, lineNo, text, ErrMissingHeader)
	}

	grid := gridtext.NewGrid()
	for r, line := range kept[2:] {
		for c, value := range SplitRow(line) {
			grid.Set(r+1, c+1, value)
		}
	}
	return &gridtext.Parsed{Dialect: gridtext.Markdown, Grid: grid}, nil
}

// SplitRow returns the trimmed cell values of a table line.
func SplitRow(line string) []string {
	fields := strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

// IsMarkdown reports if lines look like a Markdown table:
// at least two non-blank lines, the first containing '|'
// and the second consisting only of "-:| " characters.
// If not, the failing line number 1 or 2 is returned,
// counting only non-blank lines.
func IsMarkdown(lines []string) (ok bool, line int) {
	var header, separator string
	n := 0
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		switch n {
		case 0:
			header = l
		case 1:
			separator = l
		}
		n++
		if n == 2 {
			break
		}
	}
	switch {
	case n < 2:
		return false, 1
	case !strings.Contains(header, "|"):
		return false, 1
	case strings.Trim(separator, "-:| ") != "":
		return false, 2
	}
	return true, 0
}
