// Package dialects detects the dialect of a plain-text grid
// document and dispatches it to the matching parser.
//
// Detection uses cheap structural predicates instead of full
// grammar checks. An extension hint selects the predicate that
// is tested first; if it fails or there is no usable hint,
// all predicates are tested in the fixed order
// CSV, SYLK, Markdown, DIF, SER and the first match wins.
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

// Predicate reports if lines structurally look like a dialect.
// If not, the 1-based number of the offending line is returned.
type Predicate func(lines []string) (ok bool, line int)

// PredicateFor returns the structural predicate of a dialect.
func PredicateFor(dialect gridtext.Dialect) (Predicate, error) {
	switch dialect {
	case gridtext.SER:
		return sertable.IsSER, nil
	case gridtext.CSV:
		return csvtable.IsCSV, nil
	case gridtext.SYLK:
		return sylktable.IsSYLK, nil
	case gridtext.Markdown:
		return mdtable.IsMarkdown, nil
	case gridtext.DIF:
		return diftable.IsDIF, nil
	case gridtext.Unknown:
		return nil, fmt.Errorf("no predicate for %s dialect", dialect)
	}
	return nil, fmt.Errorf("invalid dialect %d", int(dialect))
}

// Detect determines the dialect of lines.
//
// The hint is a file extension like "csv" or ".md".
// If it maps to a dialect, that dialect's predicate is tested first.
// Otherwise or if that predicate fails, all predicates
// are tested in the order of gridtext.Dialects().
//
// The returned Detection has the Unknown dialect if nothing matched.
// Its Line is the line where the hinted predicate failed.
// An empty lines slice fails every predicate at line 1.
func Detect(hint string, lines []string) gridtext.Detection {
	var result gridtext.Detection
	if hinted, ok := gridtext.DialectFromExtension(hint); ok {
		isDialect, _ := PredicateFor(hinted)
		ok, line := isDialect(lines)
		if ok {
			return gridtext.Detection{Dialect: hinted}
		}
		slog.Debug("hinted dialect check failed", "dialect", hinted, "hint", hint, "line", line)
		result.Line = line
	}

	for _, dialect := range gridtext.Dialects() {
		isDialect, _ := PredicateFor(dialect)
		if ok, _ := isDialect(lines); ok {
			result.Dialect = dialect
			return result
		}
	}
	return result
}
