// Package sqltable stores a gridtext.View as SQL table
// and reads it back.
//
// The SQL used is plain enough for SQLite, which is the
// database the command line tool writes to:
//
//	db, _ := sql.Open("sqlite", "sheet.db")
//	err := sqltable.WriteView(ctx, db, "sheet", view)
package sqltable

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/domonda/go-gridtext"
)

// QuoteIdentifier quotes a table or column name for SQL.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// WriteView (re)creates table with one TEXT column per view column
// named like the view columns and inserts all rows of the view
// within a single transaction.
func WriteView(ctx context.Context, db *sql.DB, table string, view gridtext.View) (err error) {
	cols := view.Columns()
	if len(cols) == 0 {
		return fmt.Errorf("can't write table %s without columns", table)
	}
	quotedCols := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, col := range cols {
		quotedCols[i] = QuoteIdentifier(col)
		placeholders[i] = "?"
	}
	quotedTable := QuoteIdentifier(table)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quotedTable) //#nosec G202
	if err != nil {
		return fmt.Errorf("can't drop table %s: %w", table, err)
	}
	_, err = tx.ExecContext(ctx, "CREATE TABLE "+quotedTable+" ("+strings.Join(quotedCols, " TEXT, ")+" TEXT)") //#nosec G202
	if err != nil {
		return fmt.Errorf("can't create table %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO "+quotedTable+" ("+strings.Join(quotedCols, ", ")+") VALUES ("+strings.Join(placeholders, ", ")+")") //#nosec G202
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]any, len(cols))
	for row := 0; row < view.NumRows(); row++ {
		for col := range args {
			args[col] = view.Cell(row, col)
		}
		_, err = stmt.ExecContext(ctx, args...)
		if err != nil {
			return fmt.Errorf("can't insert row %d into %s: %w", row+1, table, err)
		}
	}

	return tx.Commit()
}
