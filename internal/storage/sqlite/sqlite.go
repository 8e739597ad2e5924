// Package sqlite opens the SQLite-backed implementation of storage.Store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/splitbill/internal/storage/sqlstore"
)

// pragmas are applied to every connection the driver opens.
const pragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// New opens the database at dbPath, creating parent directories, and runs
// migrations automatically.
//
// The pool is limited to a single connection. That serializes transactions,
// which is what makes the bill status check and the finalize compare-and-set
// atomic on SQLite.
func New(dbPath string) (*sqlstore.Store, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+pragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store, err := sqlstore.New(context.Background(), db, sqlstore.SQLite)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
