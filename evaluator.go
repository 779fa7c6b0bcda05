package gridtext

// Evaluator is implemented by formula engines that recompute
// cell values from the raw values of a Grid.
//
// Rows and columns are 1-based.
type Evaluator interface {
	// SetCell sets the raw, unevaluated input of a cell.
	SetCell(row, col int, raw string)
	// FormattedCellValue returns the computed value
	// of a cell formatted as string.
	FormattedCellValue(row, col int) string
}

// Load sets all cells of grid at the evaluator.
func Load(evaluator Evaluator, grid *Grid) {
	for _, e := range grid.Entries() {
		evaluator.SetCell(e.Row, e.Col, e.Value)
	}
}

// RawEvaluator is an Evaluator that does not compute anything,
// formatted values are the raw values.
type RawEvaluator struct {
	grid *Grid
}

var _ Evaluator = new(RawEvaluator)

// NewRawEvaluator returns a RawEvaluator backed by grid.
// If grid is nil, a new empty Grid is used.
func NewRawEvaluator(grid *Grid) *RawEvaluator {
	if grid == nil {
		grid = NewGrid()
	}
	return &RawEvaluator{grid: grid}
}

func (e *RawEvaluator) SetCell(row, col int, raw string) {
	e.grid.Set(row, col, raw)
}

func (e *RawEvaluator) FormattedCellValue(row, col int) string {
	return e.grid.Value(row, col)
}
