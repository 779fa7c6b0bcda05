package sqltable

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/domonda/go-gridtext"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every connection of :memory: has its own database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestWriteViewReadView(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	grid := gridtext.NewGridFromEntries(
		gridtext.Entry{Address: gridtext.Address{Row: 1, Col: 1}, Value: "Name"},
		gridtext.Entry{Address: gridtext.Address{Row: 1, Col: 3}, Value: "Price"},
		gridtext.Entry{Address: gridtext.Address{Row: 2, Col: 1}, Value: `O'Brien "Jr."`},
		gridtext.Entry{Address: gridtext.Address{Row: 3, Col: 3}, Value: "1.25"},
	)
	view := gridtext.NewGridView("sheet", grid, nil)

	err := WriteView(ctx, db, "sheet", view)
	require.NoError(t, err)

	read, err := ReadView(ctx, db, "sheet")
	require.NoError(t, err)
	require.Equal(t, "sheet", read.Title())
	require.Equal(t, []string{"A", "B", "C"}, read.Columns())
	require.Equal(t, gridtext.ViewStrings(view, false), read.Rows)

	// Writing again replaces the table
	err = WriteView(ctx, db, "sheet", gridtext.NewStringsView("", [][]string{{"x"}}, "A"))
	require.NoError(t, err)
	read, err = ReadView(ctx, db, "sheet")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"x"}}, read.Rows)
}

func TestWriteViewQuotedNames(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	view := gridtext.NewStringsView("", [][]string{{"1", "2"}}, `col "a"`, "select")
	err := WriteView(ctx, db, `my "table"`, view)
	require.NoError(t, err)

	read, err := ReadView(ctx, db, `my "table"`)
	require.NoError(t, err)
	require.Equal(t, []string{`col "a"`, "select"}, read.Columns())
	require.Equal(t, [][]string{{"1", "2"}}, read.Rows)
}

func TestWriteViewErrors(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	err := WriteView(ctx, db, "empty", gridtext.NewStringsView("", nil))
	require.Error(t, err)

	_, err = ReadView(ctx, db, "missing")
	require.Error(t, err)
}

func TestScanRowsAsViewNull(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	rows, err := db.QueryContext(ctx, "SELECT 'a' AS x, NULL AS y")
	require.NoError(t, err)
	view, err := ScanRowsAsView(ctx, rows)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, view.Columns())
	require.Equal(t, [][]string{{"a", ""}}, view.Rows)
}

func TestQuoteIdentifier(t *testing.T) {
	require.Equal(t, `"sheet"`, QuoteIdentifier("sheet"))
	require.Equal(t, `"a""b"`, QuoteIdentifier(`a"b`))
}
