//go:build cgo_sqlite

package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// openHistoryDB opens the run-history database with the cgo driver.
func openHistoryDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite3", dataSource)
}
