// Package journal records accepted sentences in a SQLite database so a host
// can audit what the pipeline annotated and what Learn was fed. Records get
// ULID identifiers, which sort lexically by creation time.
package journal

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/cognicore/lingo/pkg/lingo/internalerr"
	"github.com/cognicore/lingo/pkg/lingo/meta"
	"github.com/cognicore/lingo/pkg/lingo/sentence"
)

// Journal persists annotated sentences.
type Journal struct {
	db *sql.DB

	mu      sync.Mutex // entropy is not safe for concurrent use
	entropy *ulid.MonotonicEntropy
}

// Open opens (or creates) a journal at path with WAL mode enabled.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	schema := `
CREATE TABLE IF NOT EXISTS sentences (
	id TEXT PRIMARY KEY,
	raw TEXT NOT NULL,
	tokens TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Journal{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record is one journaled sentence. Tokens holds the JSON-encoded annotated
// token sequence as written.
type Record struct {
	ID        string
	Raw       string
	Tokens    json.RawMessage
	CreatedAt time.Time
}

// tokenRecord is the stored form of one token.
type tokenRecord struct {
	Val  string                `json:"val"`
	Loc  [2]int                `json:"loc"`
	Meta map[string]meta.Value `json:"meta,omitempty"`
}

// Append stores a sentence and returns its new record id.
func (j *Journal) Append(snt *sentence.Sentence) (string, error) {
	if snt == nil {
		return "", fmt.Errorf("%w: nil sentence", internalerr.ErrInvalidInput)
	}
	now := time.Now().UTC()

	j.mu.Lock()
	id, err := ulid.New(ulid.Timestamp(now), j.entropy)
	j.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("mint id: %w", err)
	}

	tokens := snt.Tokens()
	records := make([]tokenRecord, len(tokens))
	for i, tok := range tokens {
		rec := tokenRecord{Val: tok.Val, Loc: [2]int{tok.Loc.Start, tok.Loc.Len}}
		for _, key := range tok.MetaKeys() {
			if rec.Meta == nil {
				rec.Meta = make(map[string]meta.Value)
			}
			val, _ := tok.Meta(key)
			rec.Meta[key] = val
		}
		records[i] = rec
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode tokens: %w", err)
	}

	_, err = j.db.Exec(
		"INSERT INTO sentences(id, raw, tokens, created_at) VALUES(?, ?, ?, ?)",
		id.String(), snt.Raw(), string(encoded), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("append sentence: %w", err)
	}

	return id.String(), nil
}

// Recent returns up to n records, newest first.
func (j *Journal) Recent(n int) ([]Record, error) {
	rows, err := j.db.Query(
		"SELECT id, raw, tokens, created_at FROM sentences ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("recent sentences: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var tokens, created string
		if err := rows.Scan(&rec.ID, &rec.Raw, &tokens, &created); err != nil {
			return nil, fmt.Errorf("scan sentence: %w", err)
		}
		rec.Tokens = json.RawMessage(tokens)
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent sentences: %w", err)
	}
	return records, nil
}
