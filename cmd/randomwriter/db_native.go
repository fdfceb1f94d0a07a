//go:build !cgo_sqlite

package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// openHistoryDB opens the run-history database with the pure-Go driver.
func openHistoryDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite", dataSource)
}
