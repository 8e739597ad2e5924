// Package sqlstore implements storage.Store on database/sql.
// The same code serves SQLite and PostgreSQL; the Dialect decides placeholder
// syntax and row locking.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store over a *sql.DB.
type Store struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// New wraps an open database and runs migrations. The caller hands over
// ownership of db: Close closes it.
func New(ctx context.Context, db *sql.DB, dialect Dialect) (*Store, error) {
	if err := runMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Store{db: db, dialect: dialect, now: time.Now}, nil
}

// Dialect reports the SQL flavor of the store.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn binds a querier to a dialect so queries can be written with ?.
// Inside a transaction every statement must go through the tx conn: SQLite
// runs on a single connection and a query on the *sql.DB would block.
type conn struct {
	q       querier
	dialect Dialect
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.dialect.Rebind(query), args...)
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.dialect.Rebind(query), args...)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.dialect.Rebind(query), args...)
}

func (s *Store) conn() conn {
	return conn{q: s.db, dialect: s.dialect}
}

// withTx runs fn in a transaction, committing when fn returns nil.
func (s *Store) withTx(ctx context.Context, fn func(c conn) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(conn{q: tx, dialect: s.dialect}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// lockBill reads the bill status, taking a row lock where the dialect has one.
// It must run inside a transaction.
func (c conn) lockBill(ctx context.Context, billID string) (models.BillStatus, error) {
	return c.readStatus(ctx, billID, c.dialect.forUpdate())
}

func (c conn) billStatus(ctx context.Context, billID string) (models.BillStatus, error) {
	return c.readStatus(ctx, billID, "")
}

func (c conn) readStatus(ctx context.Context, billID, suffix string) (models.BillStatus, error) {
	var status models.BillStatus
	err := c.queryRow(ctx,
		"SELECT status FROM bills WHERE id = ?"+suffix,
		billID,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("bill %s: %w", billID, models.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get bill status: %w", err)
	}
	return status, nil
}

// requireMutable locks the bill and fails unless it is DRAFT or OPEN.
func (c conn) requireMutable(ctx context.Context, billID string) (models.BillStatus, error) {
	status, err := c.lockBill(ctx, billID)
	if err != nil {
		return "", err
	}
	if !status.Mutable() {
		return "", fmt.Errorf("%w: bill %s is %s", models.ErrInvalidState, billID, status)
	}
	return status, nil
}

// belongs checks that a row of table with the given id is on billID.
func (c conn) belongs(ctx context.Context, table, id, billID string) error {
	var one int
	err := c.queryRow(ctx,
		"SELECT 1 FROM "+table+" WHERE id = ? AND bill_id = ?",
		id, billID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s on bill %s: %w", table, id, billID, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", table, err)
	}
	return nil
}

// nextPosition returns the next insertion position for table on billID.
func (c conn) nextPosition(ctx context.Context, table, billID string) (int, error) {
	var pos int
	err := c.queryRow(ctx,
		"SELECT COALESCE(MAX(position), -1) + 1 FROM "+table+" WHERE bill_id = ?",
		billID,
	).Scan(&pos)
	if err != nil {
		return 0, fmt.Errorf("failed to get next %s position: %w", table, err)
	}
	return pos, nil
}

// affected reports rows affected by res as a bool.
func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}
