// Package csvtable reads and writes the CSV dialect.
//
// Parsing follows RFC 4180 quoting rules and handles
// common deviations found in real world files:
//   - Quoted fields with embedded newlines, separators and quotes
//   - Escaped quotes (doubled quotes)
//   - Separator declaration header lines like "sep=;"
//
// Rows and columns of the resulting grid are 1-based
// positions among the non-empty rows and their fields.
package csvtable

import (
	"bytes"
	"strings"
)

// AutoSeparator can be passed to ParseWithSeparator
// to use a "sep=X" header line or else DetectSeparator.
const AutoSeparator = "auto"

// DetectSeparator returns the separator declared by a "sep=X" header line
// or else the most frequent of comma, semicolon and tab
// across all non-empty lines. Comma is returned if the counts are equal.
//
// Example:
//
//	DetectSeparator([]string{"Name;Age", "John;30"}) // ";"
//	DetectSeparator([]string{"sep=\t", "a\tb"})      // "\t"
func DetectSeparator(lines []string) string {
	if len(lines) > 0 {
		if sep := parseSepHeaderLine([]byte(lines[0])); sep != "" {
			return sep
		}
	}

	var commas, semicolons, tabs int
	for _, line := range lines {
		commas += strings.Count(line, ",")
		semicolons += strings.Count(line, ";")
		tabs += strings.Count(line, "\t")
	}
	switch {
	case semicolons > commas && semicolons > tabs:
		return ";"
	case tabs > commas && tabs > semicolons:
		return "\t"
	default:
		return ","
	}
}

// parseSepHeaderLine parses separator declaration header lines
// in the format "sep=X" or "SEP=X", optionally enclosed in double quotes.
// Returns an empty string if line is not a header line.
//
// Examples:
//
//	parseSepHeaderLine([]byte("sep=,"))      // Returns: ","
//	parseSepHeaderLine([]byte(`"SEP=;"`))    // Returns: ";"
//	parseSepHeaderLine([]byte("Name,Age"))   // Returns: ""
func parseSepHeaderLine(line []byte) (sep string) {
	if len(line) < 5 {
		return ""
	}
	if line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 {
		return ""
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	return string(line[4:5])
}

// EscapeQuotes escapes double quotes in a CSV field value according to RFC 4180.
// Each double quote character (") is replaced with two double quotes ("").
func EscapeQuotes(val string) string {
	return strings.ReplaceAll(val, `"`, `""`)
}
