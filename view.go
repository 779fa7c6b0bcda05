package gridtext

// View is a read-only table of strings with a title
// and column names. Rows and columns are 0-based.
//
// Renderers write Views so they don't need to know
// if the cells come from a parsed Grid, an Evaluator
// or any other source.
type View interface {
	// Title of the table, may be empty.
	Title() string
	// Columns returns the column names
	// which also define the number of columns.
	Columns() []string
	// NumRows returns the number of rows.
	NumRows() int
	// Cell returns the string of a cell
	// or an empty string for a missing cell.
	Cell(row, col int) string
}

// GridView is a View of a Grid where each cell
// is the formatted value of an Evaluator.
// Column names are the labels A, B, C, ...
type GridView struct {
	title     string
	grid      *Grid
	evaluator Evaluator
	cols      []string
}

var _ View = new(GridView)

// NewGridView returns a View with grid.RowMax() rows and grid.ColMax() columns.
// If evaluator is nil, the raw grid values are used.
func NewGridView(title string, grid *Grid, evaluator Evaluator) *GridView {
	if evaluator == nil {
		evaluator = NewRawEvaluator(grid)
	}
	cols := make([]string, grid.ColMax())
	for i := range cols {
		cols[i] = ColumnLabel(i + 1)
	}
	return &GridView{title: title, grid: grid, evaluator: evaluator, cols: cols}
}

func (v *GridView) Title() string     { return v.title }
func (v *GridView) Columns() []string { return v.cols }
func (v *GridView) NumRows() int      { return v.grid.RowMax() }

func (v *GridView) Cell(row, col int) string {
	if row < 0 || col < 0 || row >= v.NumRows() || col >= len(v.cols) {
		return ""
	}
	return v.evaluator.FormattedCellValue(row+1, col+1)
}

// StringsView is a View implementation that uses strings as cell values.
//
// A row within Rows can have fewer elements than Cols,
// in which case empty strings are returned for missing cells.
type StringsView struct {
	Tit  string
	Cols []string
	Rows [][]string
}

var _ View = new(StringsView)

// NewStringsView returns a StringsView for rows.
// If no cols are passed, the first row is used as column names
// and removed from the data rows.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	return &StringsView{Tit: title, Cols: cols, Rows: rows}
}

func (v *StringsView) Title() string     { return v.Tit }
func (v *StringsView) Columns() []string { return v.Cols }
func (v *StringsView) NumRows() int      { return len(v.Rows) }

func (v *StringsView) Cell(row, col int) string {
	if row < 0 || row >= len(v.Rows) || col < 0 || col >= len(v.Rows[row]) {
		return ""
	}
	return v.Rows[row][col]
}

// ViewStrings returns all cells of a view as rows of strings,
// optionally starting with a header row of the column names.
func ViewStrings(view View, addHeaderRow bool) (rows [][]string) {
	numCols := len(view.Columns())
	if addHeaderRow {
		rows = append(rows, append([]string(nil), view.Columns()...))
	}
	for row := 0; row < view.NumRows(); row++ {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col] = view.Cell(row, col)
		}
		rows = append(rows, rowStrs)
	}
	return rows
}
