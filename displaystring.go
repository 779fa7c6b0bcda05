package gridtext

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// OverflowChar fills the sentinel returned by DisplayString
// for values that can't be shortened to the column width.
const OverflowChar = '#'

// DisplayString fits a cell value into a column of width characters
// the way spreadsheet applications shorten numbers:
//
//   - A value that already fits is returned unchanged without padding.
//   - Only decimal numbers (containing a '.') can be shortened.
//     They are rounded to as many fractional digits as fit,
//     or to an integer if the digits before the point fill the width.
//   - Everything else that is too long, including integers,
//     text and numbers with more leading digits than width,
//     results in width times OverflowChar.
//
// Surrounding whitespace and underscores between digits
// are accepted in numbers and count as leading characters.
// Width is counted in characters (runes).
// A width less than 1 returns an empty string.
//
// Example:
//
//	DisplayString("123.456", 4)     // "123"
//	DisplayString("1234.5432", 4)   // "1235"
//	DisplayString("100013.6789", 9) // "100013.68"
//	DisplayString("hello world", 5) // "#####"
func DisplayString(value string, width int) string {
	if width < 1 {
		return ""
	}
	if utf8.RuneCountInString(value) <= width {
		return value
	}

	point := strings.IndexByte(value, '.')
	if point < 0 {
		return Overflow(width)
	}
	num, ok := parseNumber(value)
	if !ok {
		return Overflow(width)
	}

	leadDigits := utf8.RuneCountInString(value[:point])
	switch {
	case leadDigits > width:
		return Overflow(width)
	case leadDigits == width:
		return strconv.FormatFloat(num, 'f', 0, 64)
	default:
		// One character is taken by the decimal point
		return strconv.FormatFloat(num, 'f', width-leadDigits-1, 64)
	}
}

// parseNumber parses a decimal floating point number
// with optional surrounding whitespace and underscores between digits.
// Hexadecimal notation is not a number here.
func parseNumber(value string) (float64, bool) {
	s := strings.TrimSpace(value)
	unsigned := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, false
	}
	if strings.Contains(s, "_") {
		for i := range len(s) {
			if s[i] == '_' && (i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1])) {
				return 0, false
			}
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Overflow returns the sentinel string for a value
// that does not fit into a column of width characters.
func Overflow(width int) string {
	if width < 1 {
		return ""
	}
	return strings.Repeat(string(OverflowChar), width)
}
