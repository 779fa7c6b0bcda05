// Package texttable writes a gridtext.View as fixed-width text
// where every cell is fitted into its column width with
// gridtext.DisplayString and padded with spaces.
// Widths are measured in terminal cells, so East Asian
// wide characters count twice.
package texttable

import (
	"bytes"
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/domonda/go-gridtext"
)

// Padding defines how cells are aligned within their column.
type Padding int

const (
	AlignLeft Padding = iota
	AlignRight
	AlignCenter
)

// Writer writes views as fixed-width text.
//
// Writer is immutable, all With* methods return a modified copy.
type Writer struct {
	columnWidth  int
	columnWidths map[int]int
	padding      Padding
	headerRow    bool
	delimiter    string
	newLine      string
}

// NewWriter returns a Writer with a column width of 10,
// left aligned cells separated by a single space
// and "\n" line endings.
func NewWriter() *Writer {
	return &Writer{
		columnWidth: 10,
		padding:     AlignLeft,
		headerRow:   false,
		delimiter:   " ",
		newLine:     "\n",
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView writes the view to dest.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view gridtext.View) error {
	rows := gridtext.ViewStrings(view, w.headerRow)
	widths := w.ColumnWidths(rows, len(view.Columns()))

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row := range rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col, str := range rows[row] {
			if col > 0 {
				rowBuf.WriteString(w.delimiter)
			}
			rowBuf.WriteString(w.pad(fit(str, widths[col]), widths[col]))
		}
		rowBuf.WriteString(w.newLine)

		_, err := dest.Write(rowBuf.Bytes())
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

// ColumnWidths returns the width of every column.
// Explicitly set column widths take precedence over the
// common column width. If the common column width is zero,
// columns without explicit width are as wide as their widest cell.
func (w *Writer) ColumnWidths(rows [][]string, numCols int) []int {
	widths := make([]int, numCols)
	for col := range widths {
		if width, ok := w.columnWidths[col]; ok {
			widths[col] = width
			continue
		}
		if w.columnWidth > 0 {
			widths[col] = w.columnWidth
			continue
		}
		for _, row := range rows {
			if col < len(row) {
				widths[col] = max(widths[col], runewidth.StringWidth(row[col]))
			}
		}
	}
	return widths
}

// fit shortens str with gridtext.DisplayString.
// Values with wide characters that take more terminal cells
// than width become the overflow sentinel.
func fit(str string, width int) string {
	if utf8.RuneCountInString(str) <= width && runewidth.StringWidth(str) > width {
		return gridtext.Overflow(width)
	}
	return gridtext.DisplayString(str, width)
}

func (w *Writer) pad(str string, width int) string {
	padTotal := width - runewidth.StringWidth(str)
	if padTotal <= 0 {
		return str
	}
	switch w.padding {
	case AlignRight:
		return strings.Repeat(" ", padTotal) + str
	case AlignCenter:
		return strings.Repeat(" ", padTotal/2) + str + strings.Repeat(" ", (padTotal+1)/2)
	default:
		return runewidth.FillRight(str, width)
	}
}

// WithColumnWidth returns a writer using width for all columns
// without explicit width. A width of zero makes every column
// as wide as its widest cell, so no cell gets shortened.
func (w *Writer) WithColumnWidth(width int) *Writer {
	mod := w.clone()
	mod.columnWidth = max(width, 0)
	return mod
}

// WithColumnWidthAt returns a writer using width for the 0-based column col.
func (w *Writer) WithColumnWidthAt(col, width int) *Writer {
	mod := w.clone()
	mod.columnWidths = make(map[int]int, len(w.columnWidths)+1)
	for key, val := range w.columnWidths {
		mod.columnWidths[key] = val
	}
	mod.columnWidths[col] = width
	return mod
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

func (w *Writer) WithDelimiter(delimiter string) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}
