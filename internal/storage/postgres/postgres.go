// Package postgres opens the PostgreSQL-backed implementation of storage.Store.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // registers the "postgres" driver

	"github.com/mmynk/splitbill/internal/storage/sqlstore"
)

// New connects to the database described by dsn (a postgres:// URL or a
// key=value connection string) and runs migrations.
func New(ctx context.Context, dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database is not reachable: %w", err)
	}

	store, err := sqlstore.New(ctx, db, sqlstore.Postgres)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
