// internal/words/sqlite.go
//
// SQLite-backed word-list source.
// Reads the `words` table (one TEXT column named word) from a database file
// and feeds it through the same normalization as the plain-text loader.
// The database is only ever read; no game state is written back.

package words

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadDB loads the word list from a SQLite database file.
func LoadDB(dsn string) (*List, error) {
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word FROM words ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var raw []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		raw = append(raw, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return New(raw)
}
