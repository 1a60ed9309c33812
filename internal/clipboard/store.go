package clipboard

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// schema mirrors §6.5's entries table, grounded on the teacher's
// notes/store.go CREATE TABLE/CREATE INDEX pattern.
const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL,
	content BLOB NOT NULL,
	created_at INTEGER NOT NULL,
	pinned INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at DESC);
`

// Store is the SQLite-backed clipboard history, opened with the same
// busy-timeout/WAL pragmas the teacher uses for its notes database.
type Store struct {
	db        *sql.DB
	maxHistory int
}

// NewStore opens (creating if absent) the clipboard history database at
// dbPath and ensures its schema exists.
func NewStore(dbPath string, maxHistory int) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("clipboard: open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("clipboard: init schema: %w", err)
	}
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Store{db: db, maxHistory: maxHistory}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert records a new entry and then, whatever its kind, evicts the
// oldest unpinned rows beyond maxHistory (§3 "bounded... oldest unpinned
// entries are evicted first").
func (s *Store) Insert(kind ContentType, content string) (Entry, error) {
	now := time.Now()
	res, err := s.db.Exec(
		`INSERT INTO entries (type, content, created_at, pinned) VALUES (?, ?, ?, 0)`,
		kind.String(), content, now.UnixNano(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("clipboard: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("clipboard: insert id: %w", err)
	}
	if err := s.evictExcess(); err != nil {
		return Entry{}, err
	}
	return Entry{ID: id, Type: kind, Content: content, CreatedAt: now}, nil
}

// evictExcess deletes the oldest unpinned rows once the total row count
// exceeds maxHistory.
func (s *Store) evictExcess() error {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&total); err != nil {
		return fmt.Errorf("clipboard: count: %w", err)
	}
	excess := total - s.maxHistory
	if excess <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		`DELETE FROM entries WHERE id IN (
			SELECT id FROM entries WHERE pinned = 0 ORDER BY created_at ASC LIMIT ?
		)`, excess,
	)
	if err != nil {
		return fmt.Errorf("clipboard: evict: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first, up to limit (0 means
// no limit).
func (s *Store) List(limit int) ([]Entry, error) {
	query := `SELECT id, type, content, created_at, pinned FROM entries ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("clipboard: list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var typ string
		var createdAtNano int64
		var pinned int
		if err := rows.Scan(&e.ID, &typ, &e.Content, &createdAtNano, &pinned); err != nil {
			return nil, fmt.Errorf("clipboard: scan: %w", err)
		}
		if typ == ContentImage.String() {
			e.Type = ContentImage
		} else {
			e.Type = ContentText
		}
		e.CreatedAt = time.Unix(0, createdAtNano)
		e.Pinned = pinned != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

// SetPinned toggles whether an entry is exempt from eviction.
func (s *Store) SetPinned(id int64, pinned bool) error {
	v := 0
	if pinned {
		v = 1
	}
	_, err := s.db.Exec(`UPDATE entries SET pinned = ? WHERE id = ?`, v, id)
	return err
}

// Delete removes one entry by id.
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	return err
}

// Clear removes every unpinned entry.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM entries WHERE pinned = 0`)
	return err
}

// generateID produces a short random hex token, used as the placeholder
// content string for image entries stored in the LRU cache rather than
// inline in SQLite.
func generateID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "img_" + hex.EncodeToString(b), nil
}
