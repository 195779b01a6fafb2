// Package sqlite persists a dictionary in a SQLite database, suitable as the
// backing store behind a cached in-memory dictionary.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lingo/pkg/lingo/dictionary"
)

// Store implements dictionary.Dictionary on a SQLite words table.
type Store struct {
	db *sql.DB
}

var _ dictionary.Dictionary = (*Store)(nil)

// Open opens (or creates) a SQLite dictionary at path with WAL mode enabled.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS words (
	word TEXT PRIMARY KEY
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Contains reports whether word is stored. Query failures read as absence.
func (s *Store) Contains(word string) bool {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM words WHERE word = ?", word).Scan(&one)
	return err == nil
}

// Add inserts word, reporting true iff the row is new.
func (s *Store) Add(word string) (bool, error) {
	res, err := s.db.Exec("INSERT OR IGNORE INTO words(word) VALUES(?)", word)
	if err != nil {
		return false, fmt.Errorf("add word: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add word: %w", err)
	}
	return n > 0, nil
}

// Sync is a no-op: the database is its own source of truth.
func (s *Store) Sync() error {
	return nil
}

// GetAll returns every stored word.
func (s *Store) GetAll() (map[string]struct{}, error) {
	rows, err := s.db.Query("SELECT word FROM words")
	if err != nil {
		return nil, fmt.Errorf("get all words: %w", err)
	}
	defer rows.Close()

	words := make(map[string]struct{})
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words[w] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get all words: %w", err)
	}
	return words, nil
}

// Seed inserts a batch of words in one transaction, ignoring duplicates.
// It returns the number of newly stored words.
func (s *Store) Seed(words []string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	defer tx.Rollback()

	added := 0
	for _, w := range words {
		res, err := tx.Exec("INSERT OR IGNORE INTO words(word) VALUES(?)", w)
		if err != nil {
			return 0, fmt.Errorf("seed %q: %w", w, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return added, nil
}
