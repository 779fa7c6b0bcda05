// Package sertable parses the SER dialect where every
// non-blank line holds one cell as "<address>:<value>",
// for example:
//
//	A1:Hello
//	B2:=A1
//
// Addresses use a single column letter A to Z
// followed by a positive row number.
package sertable

import (
	"errors"
	"strings"

	"github.com/domonda/go-gridtext"
)

// ErrMissingColon is wrapped by the ParseError
// for a non-blank line without a ':' separator.
var ErrMissingColon = errors.New("missing ':' between address and value")

// Parse parses SER lines into a new Grid.
// Blank lines are ignored and values are trimmed.
// A line without ':' or with an invalid address
// results in a *gridtext.ParseError.
func Parse(lines []string) (*gridtext.Parsed, error) {
	grid := gridtext.NewGrid()
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		position, value, found := strings.Cut(line, ":")
		if !found {
			return nil, gridtext.NewParseError(gridtext.SER, i+1, line, ErrMissingColon)
		}
		addr, err := gridtext.ParseAddress(strings.TrimSpace(position))
		if err != nil {
			return nil, gridtext.NewParseError(gridtext.SER, i+1, line, err)
		}
		grid.Set(addr.Row, addr.Col, strings.TrimSpace(value))
	}
	return &gridtext.Parsed{Dialect: gridtext.SER, Grid: grid}, nil
}

// IsSER reports if every non-blank line starts with an address
// of upper case letters and a positive row number followed by ':'.
// Multi-letter columns like "AA1" pass this check but are rejected
// by Parse because SER addresses are limited to single letters.
//
// If not, the 1-based number of the first offending line is returned.
func IsSER(lines []string) (ok bool, line int) {
	if len(lines) == 0 {
		return false, 1
	}
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		position, _, found := strings.Cut(l, ":")
		if !found || !isPosition(position) {
			return false, i + 1
		}
	}
	return true, 0
}

// isPosition matches ^[A-Z]+[1-9][0-9]*$
func isPosition(s string) bool {
	letters := 0
	for letters < len(s) && s[letters] >= 'A' && s[letters] <= 'Z' {
		letters++
	}
	if letters == 0 || letters == len(s) || s[letters] == '0' {
		return false
	}
	for _, c := range []byte(s[letters:]) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
