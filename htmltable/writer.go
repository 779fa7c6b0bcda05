// Package htmltable writes a gridtext.View as HTML table.
//
// All cell values are HTML-escaped unless a CellFormatter
// registered for the column returns raw HTML.
//
// Example usage:
//
//	view := gridtext.NewGridView("Budget", parsed.Grid, nil)
//	err := htmltable.NewWriter().
//	    WithHeaderRow(true).
//	    WithTableClass("sheet").
//	    WriteView(ctx, os.Stdout, view)
package htmltable

import (
	"context"
	"errors"
	"html/template"
	"io"

	"github.com/domonda/go-gridtext"
)

// Writer writes views as HTML table elements.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	tableClass       string
	columnFormatters map[int]CellFormatter
	headerRow        bool
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter creates a new HTML table writer
// with the default templates, no formatters and no header row.
func NewWriter() *Writer {
	return &Writer{
		tableClass:       "",
		columnFormatters: make(map[int]CellFormatter),
		headerRow:        false,
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		footerTemplate:   FooterTemplate,
	}
}

// WriteView writes a view as HTML to dest.
// The title of the view is used as table caption.
//
// A column formatter returning errors.ErrUnsupported
// falls back to the escaped cell string.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view gridtext.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		numCols   = len(columns)
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			RawCells: make([]template.HTML, numCols),
		}
	)

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for i := range columns {
			templData.RawCells[i] = template.HTML(template.HTMLEscapeString(columns[i])) //#nosec G203
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col := 0; col < numCols; col++ {
			str, isRaw := view.Cell(row, col), false
			if colFormatter, ok := w.columnFormatters[col]; ok {
				s, raw, err := colFormatter.FormatCell(ctx, view, row, col)
				switch {
				case err == nil:
					str, isRaw = s, raw
				case !errors.Is(err, errors.ErrUnsupported):
					return err
				}
			}
			if !isRaw {
				str = template.HTMLEscapeString(str)
			}
			templData.RawCells[col] = template.HTML(str) //#nosec G203
		}

		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithHeaderRow returns a new writer with header row configuration.
// When enabled, the column names are rendered
// as first row using <th> elements.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
// The class will be rendered as: <table class='tableClass'>
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithColumnFormatter returns a new writer with the formatter registered for the 0-based column.
// If nil is passed as formatter, any previously registered formatter for this column is removed.
func (w *Writer) WithColumnFormatter(columnIndex int, formatter CellFormatter) *Writer {
	mod := w.clone()
	mod.columnFormatters = make(map[int]CellFormatter)
	for key, val := range w.columnFormatters {
		mod.columnFormatters[key] = val
	}
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

// WithTemplate returns a new writer with custom templates for rendering the HTML table.
// The templates receive TemplateContext and RowTemplateContext respectively.
func (w *Writer) WithTemplate(tableTemplate, rowTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = tableTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

// TableClass returns the CSS class configured for the table element.
func (w *Writer) TableClass() string {
	return w.tableClass
}
