package gridtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// upperEvaluator formats all values as upper case
// to check that GridView uses the evaluator.
type upperEvaluator struct {
	RawEvaluator
}

func (e *upperEvaluator) FormattedCellValue(row, col int) string {
	return strings.ToUpper(e.RawEvaluator.FormattedCellValue(row, col))
}

func TestGridView(t *testing.T) {
	grid := NewGridFromEntries(
		Entry{Address: MustParseAddress("A1"), Value: "hello"},
		Entry{Address: MustParseAddress("C2"), Value: "world"},
	)
	view := NewGridView("doc", grid, nil)
	require.Equal(t, "doc", view.Title())
	require.Equal(t, []string{"A", "B", "C"}, view.Columns())
	require.Equal(t, 2, view.NumRows())
	require.Equal(t, "hello", view.Cell(0, 0))
	require.Equal(t, "", view.Cell(0, 1))
	require.Equal(t, "world", view.Cell(1, 2))
	require.Equal(t, "", view.Cell(2, 0))
	require.Equal(t, "", view.Cell(0, -1))

	require.Equal(t, [][]string{
		{"A", "B", "C"},
		{"hello", "", ""},
		{"", "", "world"},
	}, ViewStrings(view, true))
}

func TestGridView_Evaluator(t *testing.T) {
	grid := NewGridFromEntries(Entry{Address: MustParseAddress("B1"), Value: "=a1"})
	evaluator := &upperEvaluator{RawEvaluator: *NewRawEvaluator(nil)}
	Load(evaluator, grid)

	view := NewGridView("", grid, evaluator)
	require.Equal(t, [][]string{{"", "=A1"}}, ViewStrings(view, false))
}

func TestRawEvaluator(t *testing.T) {
	grid := NewGrid()
	evaluator := NewRawEvaluator(grid)
	evaluator.SetCell(2, 2, "x")
	require.Equal(t, "x", evaluator.FormattedCellValue(2, 2))
	require.Equal(t, "", evaluator.FormattedCellValue(1, 1))
	require.Equal(t, 2, grid.RowMax())
}

func TestStringsView(t *testing.T) {
	view := NewStringsView("t", [][]string{{"a", "b"}, {"1"}, {"2", "3"}})
	require.Equal(t, []string{"a", "b"}, view.Columns())
	require.Equal(t, 2, view.NumRows())
	require.Equal(t, "1", view.Cell(0, 0))
	require.Equal(t, "", view.Cell(0, 1))
	require.Equal(t, "3", view.Cell(1, 1))
	require.Equal(t, "", view.Cell(5, 0))

	view = NewStringsView("", [][]string{{"x"}}, "col")
	require.Equal(t, []string{"col"}, view.Columns())
	require.Equal(t, [][]string{{"x"}}, ViewStrings(view, false))
}
