// Package gridtext ingests plain-text spreadsheet documents
// written in one of several legacy dialects (SER, CSV, SYLK,
// Markdown tables and DIF) into a sparse Grid of raw cell values
// and formats computed cell values for fixed-width display.
//
// Dialect detection and the parsers live in the sub-packages
// dialects, sertable, csvtable, sylktable, mdtable and diftable.
// Renderers for Views of a Grid live in texttable, htmltable,
// csvtable, mdtable and sqltable.
package gridtext

import "strings"

// Dialect identifies one of the plain-text serializations
// a grid document can be written in.
//
// The zero value Unknown is returned by detection
// when no dialect matched.
type Dialect int

const (
	Unknown Dialect = iota
	SER
	CSV
	SYLK
	Markdown
	DIF
)

// Dialects returns all known dialects in the order
// they are tested when no extension hint matched.
func Dialects() []Dialect {
	return []Dialect{CSV, SYLK, Markdown, DIF, SER}
}

func (d Dialect) String() string {
	switch d {
	case SER:
		return "SER"
	case CSV:
		return "CSV"
	case SYLK:
		return "SYLK"
	case Markdown:
		return "Markdown"
	case DIF:
		return "DIF"
	}
	return "Unknown"
}

// Valid returns true if d is one of the five known dialects.
func (d Dialect) Valid() bool {
	return d >= SER && d <= DIF
}

// Extension returns the lower case file extension
// without a leading dot that is conventionally used
// for documents of the dialect.
func (d Dialect) Extension() string {
	switch d {
	case SER:
		return "ser"
	case CSV:
		return "csv"
	case SYLK:
		return "slk"
	case Markdown:
		return "md"
	case DIF:
		return "dif"
	}
	return ""
}

// DialectFromExtension maps a file extension hint to a Dialect.
// The hint is matched case-insensitively and may carry a leading dot,
// so "csv", ".csv" and ".CSV" all return CSV.
func DialectFromExtension(hint string) (Dialect, bool) {
	hint = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hint), "."))
	if hint == "" {
		return Unknown, false
	}
	for _, d := range Dialects() {
		if d.Extension() == hint {
			return d, true
		}
	}
	return Unknown, false
}

// Detection is the result of dialect detection.
type Detection struct {
	// Dialect is Unknown if no dialect predicate matched.
	Dialect Dialect

	// Line is the 1-based line number where the predicate
	// of the hinted dialect failed, or 0 if there was no
	// hint or the hinted predicate succeeded.
	Line int
}

// Detected returns true if a dialect was found.
func (d Detection) Detected() bool {
	return d.Dialect.Valid()
}

func (d Detection) String() string {
	if d.Detected() {
		return "Detected format: " + d.Dialect.String()
	}
	return "Unknown: Format not recognized"
}
