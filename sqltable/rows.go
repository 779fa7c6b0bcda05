package sqltable

import "database/sql"

var _ Rows = &sql.Rows{}

// Rows abstracts the methods of *sql.Rows used by ScanRowsAsView.
type Rows interface {
	Columns() ([]string, error)
	Scan(dest ...any) error
	Next() bool
	Close() error
	Err() error
}
