package htmltable

import (
	"context"
	"fmt"
	"html/template"

	"github.com/domonda/go-gridtext"
)

// CellFormatter formats the cell of a view as HTML.
// The raw result indicates if the returned string is
// already HTML or if it has to be escaped.
type CellFormatter interface {
	FormatCell(ctx context.Context, view gridtext.View, row, col int) (str string, raw bool, err error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(ctx context.Context, view gridtext.View, row, col int) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, view gridtext.View, row, col int) (str string, raw bool, err error) {
	return f(ctx, view, row, col)
}

var (
	HTMLPreCellFormatter CellFormatterFunc = func(ctx context.Context, view gridtext.View, row, col int) (str string, raw bool, err error) {
		return "<pre>" + template.HTMLEscapeString(view.Cell(row, col)) + "</pre>", true, nil
	}

	HTMLCodeCellFormatter CellFormatterFunc = func(ctx context.Context, view gridtext.View, row, col int) (str string, raw bool, err error) {
		return "<code>" + template.HTMLEscapeString(view.Cell(row, col)) + "</code>", true, nil
	}

	_ CellFormatter = HTMLSpanClassCellFormatter("")
	_ CellFormatter = DisplayWidthCellFormatter(0)
)

// HTMLSpanClassCellFormatter formats the cell value within an HTML span element
// with the class of the underlying string value.
type HTMLSpanClassCellFormatter string

func (class HTMLSpanClassCellFormatter) FormatCell(ctx context.Context, view gridtext.View, row, col int) (str string, raw bool, err error) {
	text := template.HTMLEscapeString(view.Cell(row, col))
	return fmt.Sprintf("<span class='%s'>%s</span>", template.HTMLEscapeString(string(class)), text), true, nil
}

// DisplayWidthCellFormatter shortens the cell value to the
// underlying number of characters using gridtext.DisplayString.
type DisplayWidthCellFormatter int

func (width DisplayWidthCellFormatter) FormatCell(ctx context.Context, view gridtext.View, row, col int) (str string, raw bool, err error) {
	return gridtext.DisplayString(view.Cell(row, col), int(width)), false, nil
}
