// Package store persists the daybook document in a SQLite database. The
// document is one JSON body read and rewritten wholesale; a revision
// counter guards every save so a write derived from a stale snapshot is
// rejected, and an append-only revision log records what changed.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"daybook/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrStaleRevision is returned by Save when the on-disk revision no
// longer matches the one the caller loaded.
var ErrStaleRevision = errors.New("document revision is stale")

// ErrNoChange can be returned from an Update callback to skip the save
// without reporting an error.
var ErrNoChange = errors.New("document unchanged")

// Store holds the single persisted document.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the document database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening document db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Snapshot is a loaded document plus the revision it was read at.
type Snapshot struct {
	Doc      model.Document
	Revision int64
}

// Load reads the current document. A database without a document row
// yields an empty document at revision zero; collections absent from the
// stored body come back nil and are treated as empty by the engines.
func (s *Store) Load() (Snapshot, error) {
	var body string
	var rev int64
	err := s.db.QueryRow("SELECT revision, body FROM document WHERE id = 1").Scan(&rev, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return Snapshot{}, fmt.Errorf("decoding document body: %w", err)
	}
	return Snapshot{Doc: doc, Revision: rev}, nil
}

// Save replaces the whole document. expectedRevision must match the
// revision the caller loaded; on mismatch nothing is written and
// ErrStaleRevision is returned. op is a short label for the revision
// log, e.g. "tx.record".
func (s *Store) Save(doc model.Document, expectedRevision int64, op string) (int64, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("encoding document body: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var current int64
	err = tx.QueryRow("SELECT revision FROM document WHERE id = 1").Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		current = 0
	case err != nil:
		return 0, err
	}
	if current != expectedRevision {
		return 0, fmt.Errorf("%w: have %d, want %d", ErrStaleRevision, current, expectedRevision)
	}

	next := current + 1
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO document (id, revision, body, saved_at)
		VALUES (1, ?, ?, ?)`, next, string(body), now)
	if err != nil {
		return 0, err
	}
	_, err = tx.Exec(`INSERT INTO revision_log (revision, op, saved_at)
		VALUES (?, ?, ?)`, next, op, now)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return next, nil
}

// Update runs a read-modify-write cycle under the store's writer lock:
// load, transform, save at the loaded revision. This is the only
// mutation path the commands use, so two logical operations can never
// interleave on the same snapshot.
func (s *Store) Update(op string, fn func(model.Document) (model.Document, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.Load()
	if err != nil {
		return err
	}
	doc, err := fn(snap.Doc)
	if errors.Is(err, ErrNoChange) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := s.Save(doc, snap.Revision, op); err != nil {
		return err
	}
	return nil
}

// LogEntry is one row of the revision log.
type LogEntry struct {
	Revision int64
	Op       string
	SavedAt  string
}

// History returns the most recent revision-log entries, newest first.
func (s *Store) History(limit int) ([]LogEntry, error) {
	rows, err := s.db.Query(`SELECT revision, op, saved_at FROM revision_log
		ORDER BY revision DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.Revision, &e.Op, &e.SavedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
