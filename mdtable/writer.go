package mdtable

import (
	"context"
	"io"
	"strings"

	"github.com/domonda/go-gridtext"
)

// Writer writes a gridtext.View as Markdown table.
// The column names of the view are used for the header line.
type Writer struct {
	// HeaderLines replace the generated header and separator
	// lines if not empty, for example to keep the header
	// of a parsed Markdown document.
	HeaderLines []string
}

// NewWriter returns a Writer that generates the
// header line from the column names of the view.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteView writes the view to dest as Markdown table with "\n" line endings.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view gridtext.View) error {
	var b strings.Builder
	cols := view.Columns()
	if len(w.HeaderLines) > 0 {
		for _, line := range w.HeaderLines {
			b.WriteString(strings.TrimSpace(line))
			b.WriteByte('\n')
		}
	} else {
		writeRow(&b, cols)
		separators := make([]string, len(cols))
		for i := range separators {
			separators[i] = "---"
		}
		writeRow(&b, separators)
	}
	if _, err := io.WriteString(dest, b.String()); err != nil {
		return err
	}

	row := make([]string, len(cols))
	for r := 0; r < view.NumRows(); r++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for c := range row {
			row[c] = view.Cell(r, c)
		}
		b.Reset()
		writeRow(&b, row)
		if _, err := io.WriteString(dest, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteByte('|')
	for _, cell := range cells {
		b.WriteByte(' ')
		b.WriteString(strings.ReplaceAll(cell, "|", `\|`))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
}
