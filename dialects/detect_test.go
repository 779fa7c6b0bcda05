package dialects

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-gridtext"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		hint     string
		lines    []string
		want     gridtext.Dialect
		wantLine int
	}{
		{name: "csv", hint: ".csv", lines: []string{"Name,Age,Location", "John,30,New York", "Jane,25,San Francisco"}, want: gridtext.CSV},
		{name: "sylk", hint: ".slk", lines: []string{"ID;P", "C;X1;Y1", "C;X2;Y2"}, want: gridtext.SYLK},
		{name: "markdown", hint: ".md", lines: []string{"| Name  | Age |", "|-------|-----|", "| John  | 30  |"}, want: gridtext.Markdown},
		{name: "dif", hint: ".dif", lines: []string{"TABLE", "HEADER", "DATA"}, want: gridtext.DIF},
		{name: "ser", hint: ".ser", lines: []string{"A1:Hello", "B2:World", "C3:123", "D4:Test Value"}, want: gridtext.SER},
		{name: "hint without dot", hint: "ser", lines: []string{"A1:x"}, want: gridtext.SER},

		// Fallback order CSV, SYLK, Markdown, DIF, SER
		{name: "md hint with csv content", hint: ".md", lines: []string{"a,b", "1,2"}, want: gridtext.CSV, wantLine: 1},
		{name: "no hint ser", lines: []string{"A1:Hello"}, want: gridtext.SER},
		{name: "no hint markdown", lines: []string{"|A|B|", "|--|--|", "|1|2|"}, want: gridtext.Markdown},
		{name: "unknown hint", hint: ".txt", lines: []string{"TABLE"}, want: gridtext.DIF},
		{name: "csv before sylk", hint: "", lines: []string{"ID;P", "C;X1;Y1;K1"}, want: gridtext.CSV},
		{name: "sylk hint wins over csv", hint: "slk", lines: []string{"ID;P", "C;X1;Y1;K1"}, want: gridtext.SYLK},
		{name: "csv hint failing at line 3", hint: "csv", lines: []string{"A1:x,y", "B1:z;w", "C1:v"}, want: gridtext.SER, wantLine: 3},

		{name: "empty", lines: nil, want: gridtext.Unknown},
		{name: "empty with hint", hint: "md", lines: nil, want: gridtext.Unknown, wantLine: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.hint, tt.lines)
			require.Equal(t, tt.want, got.Dialect)
			require.Equal(t, tt.wantLine, got.Line)
		})
	}
}

func TestDetect_NotASpreadsheet(t *testing.T) {
	lines := []string{"I am not a spreadsheet"}
	for _, hint := range []string{"", "csv", ".slk", ".md", "dif", "ser", "txt"} {
		got := Detect(hint, lines)
		require.False(t, got.Detected(), "hint %q", hint)
		require.Equal(t, "Unknown: Format not recognized", got.String())
	}
}

func TestPredicateFor(t *testing.T) {
	for _, dialect := range gridtext.Dialects() {
		predicate, err := PredicateFor(dialect)
		require.NoError(t, err)
		require.NotNil(t, predicate)
		ok, line := predicate(nil)
		require.False(t, ok, "%s on empty lines", dialect)
		require.Equal(t, 1, line)
	}
	_, err := PredicateFor(gridtext.Unknown)
	require.Error(t, err)
	_, err = PredicateFor(gridtext.Dialect(42))
	require.Error(t, err)
}
