package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store owns the single long-lived SQLite handle for the process. All
// components borrow the handle from it; there is no explicit close path
// in normal operation, the lifetime is the process lifetime.
//
// writeMu is the write gate: every mutating statement-plus-commit runs
// under it, serializing writers racing across concurrent sessions so the
// embedded engine never sees interleaved writes ("database is locked").
// Readers do not take the gate; WAL mode lets them proceed while a write
// is in flight.
type Store struct {
	db      *sql.DB
	cache   *readCache
	dbPath  string
	writeMu sync.Mutex
}

// NewStore opens the file-backed database, enabling WAL mode. If the file
// is locked by an external process the open fails and is surfaced to the
// caller, not retried.
func NewStore(dbPath string) (*Store, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One shared handle for the whole process; SQLite doesn't benefit
	// from more.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:     db,
		dbPath: dbPath,
		cache:  newReadCache(readTTL),
	}, nil
}

// NewStoreWithTTL is NewStore with a caller-chosen read cache TTL. Tests
// use it to exercise expiry without waiting out the real window.
func NewStoreWithTTL(dbPath string, ttl time.Duration) (*Store, error) {
	s, err := NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	s.cache = newReadCache(ttl)
	return s, nil
}

// Close closes the database connection. Only tests call this.
func (s *Store) Close() error {
	return s.db.Close()
}
