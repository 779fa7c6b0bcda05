package csvtable

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/domonda/go-gridtext"
)

// Writer writes a gridtext.View as CSV.
//
// Writer is immutable, all With* methods return a modified copy.
type Writer struct {
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	delimiter        rune
	newLine          string
}

// NewWriter returns a Writer using comma delimiters,
// "\r\n" line endings and no header row.
func NewWriter() *Writer {
	return &Writer{
		headerRow:        false,
		quoteAllFields:   false,
		quoteEmptyFields: false,
		escapeQuotes:     `""`,
		delimiter:        ',',
		newLine:          "\r\n",
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView writes the view to dest formatted as CSV.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view gridtext.View) error {
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	if w.headerRow {
		w.writeRow(rowBuf, view.Columns())
		if _, err := dest.Write(rowBuf.Bytes()); err != nil {
			return err
		}
	}
	numCols := len(view.Columns())
	row := make([]string, numCols)
	for r := 0; r < view.NumRows(); r++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for c := range row {
			row[c] = view.Cell(r, c)
		}
		rowBuf.Reset()
		w.writeRow(rowBuf, row)
		if _, err := dest.Write(rowBuf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeRow(rowBuf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			rowBuf.WriteRune(w.delimiter)
		}
		rowBuf.WriteString(w.escapeString(field))
	}
	rowBuf.WriteString(w.newLine)
}

func (w *Writer) escapeString(str string) string {
	// Just in case remove all \r,
	// \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsAny(str, "\n\""):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return str
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer) Delimiter() rune { return w.delimiter }

func (w *Writer) NewLine() string { return w.newLine }
