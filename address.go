package gridtext

import (
	"fmt"
	"slices"
	"strconv"
)

// MaxLetterColumn is the highest column that can be
// addressed by a single letter column name (Z).
//
// Grid itself has no upper bound for columns,
// only the letter addresses of the SER dialect are limited.
const MaxLetterColumn = 26

// Address is the 1-based row and column position of a cell.
type Address struct {
	Row int
	Col int
}

// Valid returns true if both Row and Col are positive.
func (a Address) Valid() bool {
	return a.Row > 0 && a.Col > 0
}

// String returns the address in A1 notation if the column
// can be written as single letter, or else as "R{row}C{col}".
func (a Address) String() string {
	if letter := ColumnLetter(a.Col); letter != "" {
		return letter + strconv.Itoa(a.Row)
	}
	return fmt.Sprintf("R%dC%d", a.Row, a.Col)
}

// ColumnLetter returns the letter A to Z for the 1-based
// column index col, or an empty string if col is out of that range.
func ColumnLetter(col int) string {
	if col < 1 || col > MaxLetterColumn {
		return ""
	}
	return string(rune('A' + col - 1))
}

// ColumnIndex returns the 1-based column index for an
// upper case column letter A to Z, or 0 for any other byte.
func ColumnIndex(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return int(letter-'A') + 1
}

// ParseAddress parses a cell address in single letter A1 notation
// like "A1" or "Z120". The column must be exactly one upper case
// letter and the row a positive integer without leading zeros.
func ParseAddress(str string) (Address, error) {
	if len(str) < 2 {
		return Address{}, fmt.Errorf("invalid cell address %q", str)
	}
	col := ColumnIndex(str[0])
	if col == 0 {
		return Address{}, fmt.Errorf("invalid column in cell address %q", str)
	}
	digits := str[1:]
	if digits[0] < '1' || digits[0] > '9' {
		return Address{}, fmt.Errorf("invalid row in cell address %q", str)
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Address{}, fmt.Errorf("invalid row in cell address %q", str)
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil {
		return Address{}, fmt.Errorf("invalid row in cell address %q: %w", str, err)
	}
	return Address{Row: row, Col: col}, nil
}

// MustParseAddress is like ParseAddress but panics on error.
// Meant for tests and package level variables.
func MustParseAddress(str string) Address {
	a, err := ParseAddress(str)
	if err != nil {
		panic(err)
	}
	return a
}

// ColumnLabel returns the spreadsheet style label of a
// 1-based column: A to Z, then AA, AB, and so on.
// Labels are only used for display, cell addresses
// of the SER dialect are limited to single letters.
func ColumnLabel(col int) string {
	if col < 1 {
		return ""
	}
	var label []byte
	for col > 0 {
		col--
		label = append(label, byte('A'+col%26))
		col /= 26
	}
	slices.Reverse(label)
	return string(label)
}
