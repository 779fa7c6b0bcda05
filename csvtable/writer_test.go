package csvtable

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-gridtext"
)

func TestWriter_WriteView(t *testing.T) {
	view := gridtext.NewStringsView("",
		[][]string{
			{"plain", "with,comma", `say "hi"`},
			{"", "multi\r\nline", "x"},
		},
		"A", "B", "C",
	)
	tests := []struct {
		name   string
		writer *Writer
		want   string
	}{
		{
			name:   "default",
			writer: NewWriter(),
			want:   "plain,\"with,comma\",\"say \"\"hi\"\"\"\r\n,\"multi\nline\",x\r\n",
		},
		{
			name:   "header semicolon LF",
			writer: NewWriter().WithHeaderRow(true).WithDelimiter(';').WithNewLine("\n"),
			want:   "A;B;C\nplain;with,comma;\"say \"\"hi\"\"\"\n;\"multi\nline\";x\n",
		},
		{
			name:   "quote all",
			writer: NewWriter().WithQuoteAllFields(true).WithNewLine("\n"),
			want:   "\"plain\",\"with,comma\",\"say \"\"hi\"\"\"\n\"\",\"multi\nline\",\"x\"\n",
		},
		{
			name:   "quote empty backslash escape",
			writer: NewWriter().WithQuoteEmptyFields(true).WithEscapeQuotes(`\"`).WithNewLine("\n"),
			want:   "plain,\"with,comma\",\"say \\\"hi\\\"\"\n\"\",\"multi\nline\",x\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := tt.writer.WriteView(context.Background(), &buf, view)
			require.NoError(t, err)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_Immutable(t *testing.T) {
	w := NewWriter()
	mod := w.WithDelimiter('\t').WithNewLine("\n")
	require.Equal(t, ',', w.Delimiter())
	require.Equal(t, "\r\n", w.NewLine())
	require.Equal(t, '\t', mod.Delimiter())
	require.Equal(t, "\n", mod.NewLine())
}

func TestWriter_RoundTrip(t *testing.T) {
	lines := []string{"a,\"b,c\"", "\"d \"\"e\"\"\",f"}
	parsed, err := Parse(lines)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = NewWriter().WithNewLine("\n").WriteView(context.Background(), &buf, gridtext.NewGridView("", parsed.Grid, nil))
	require.NoError(t, err)

	reparsed, err := Parse(gridtext.SplitLines(buf.String()))
	require.NoError(t, err)
	require.True(t, parsed.Grid.Equal(reparsed.Grid))
}
