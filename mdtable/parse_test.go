package mdtable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-gridtext"
)

func TestParse(t *testing.T) {
	parsed, err := Parse([]string{"|A|B|", "|--|--|", "|1|2|"})
	require.NoError(t, err)
	require.Equal(t, gridtext.Markdown, parsed.Dialect)
	require.Equal(t, []gridtext.Entry{
		{Address: gridtext.Address{Row: 1, Col: 1}, Value: "1"},
		{Address: gridtext.Address{Row: 1, Col: 2}, Value: "2"},
	}, parsed.Grid.Entries())
	require.Equal(t, 1, parsed.Grid.RowMax())
	require.Equal(t, 2, parsed.Grid.ColMax())

	parsed, err = Parse([]string{
		"",
		"| Name  | Age |",
		"",
		"|-------|----:|",
		"| John  | 30  |",
		"",
		"  Jane  | 25 | extra ",
	})
	require.NoError(t, err)
	require.Equal(t, []gridtext.Entry{
		{Address: gridtext.Address{Row: 1, Col: 1}, Value: "John"},
		{Address: gridtext.Address{Row: 1, Col: 2}, Value: "30"},
		{Address: gridtext.Address{Row: 2, Col: 1}, Value: "Jane"},
		{Address: gridtext.Address{Row: 2, Col: 2}, Value: "25"},
		{Address: gridtext.Address{Row: 2, Col: 3}, Value: "extra"},
	}, parsed.Grid.Entries())

	// Header only
	parsed, err = Parse([]string{"|A|", "|-|"})
	require.NoError(t, err)
	require.Equal(t, 0, parsed.Grid.Len())
	require.Equal(t, 0, parsed.Grid.RowMax())
}

func TestParse_MissingHeader(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantLine int
	}{
		{name: "empty", lines: nil, wantLine: 1},
		{name: "single line", lines: []string{"", "", "|A|B|"}, wantLine: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.lines)
			require.Nil(t, parsed)
			require.ErrorIs(t, err, ErrMissingHeader)
			var parseErr *gridtext.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tt.wantLine, parseErr.Line)
		})
	}
}

func TestSplitRow(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, SplitRow("| a | b |"))
	require.Equal(t, []string{"a", "", "c"}, SplitRow("a||c"))
	require.Equal(t, []string{""}, SplitRow("|"))
}

func TestIsMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantOK   bool
		wantLine int
	}{
		{name: "valid", lines: []string{"| Name  | Age |", "|-------|-----|", "| John  | 30  |"}, wantOK: true},
		{name: "aligned", lines: []string{"|A|B|", "|:--|--:|"}, wantOK: true},
		{name: "blank lines", lines: []string{"", "|A|", "", "| - |"}, wantOK: true},
		{name: "empty", lines: nil, wantLine: 1},
		{name: "single line", lines: []string{"|A|B|"}, wantLine: 1},
		{name: "header without pipe", lines: []string{"a,b", "---"}, wantLine: 1},
		{name: "bad separator", lines: []string{"|A|B|", "|1|2|"}, wantLine: 2},
		{name: "csv", lines: []string{"Name,Age", "John,30"}, wantLine: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, line := IsMarkdown(tt.lines)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantLine, line)
		})
	}
}
