package sqltable

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/domonda/go-gridtext"
)

// ReadView reads all rows of table in insertion order
// as written by WriteView.
func ReadView(ctx context.Context, db *sql.DB, table string) (*gridtext.StringsView, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+QuoteIdentifier(table)+" ORDER BY rowid") //#nosec G202
	if err != nil {
		return nil, fmt.Errorf("can't read table %s: %w", table, err)
	}
	view, err := ScanRowsAsView(ctx, rows)
	if err != nil {
		return nil, err
	}
	view.Tit = table
	return view, nil
}

// ScanRowsAsView scans all rows into a StringsView
// using the result column names as view columns.
// NULL values become empty strings.
func ScanRowsAsView(ctx context.Context, rows Rows) (*gridtext.StringsView, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	view := &gridtext.StringsView{Cols: columns}

	for rows.Next() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		scanned := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range dest {
			dest[i] = &scanned[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return view, err
		}
		row := make([]string, len(columns))
		for i, s := range scanned {
			row[i] = s.String
		}
		view.Rows = append(view.Rows, row)
	}
	return view, rows.Err()
}
