package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// ConnectSQLite opens the history database. WAL keeps the reader handle
// usable while the writer holds the single write connection.
func ConnectSQLite(dbName string) (*sql.DB, error) {
	return sql.Open("sqlite", fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=500&", dbName))
}
