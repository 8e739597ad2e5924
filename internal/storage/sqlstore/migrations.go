package sqlstore

import (
	"context"
	"database/sql"
)

// schema is shared by SQLite and PostgreSQL, so it sticks to the common
// subset of both. Money is stored as TEXT decimal strings: SQLite's NUMERIC
// affinity would otherwise coerce values to REAL. Timestamps are Unix seconds.
// Participants and items carry a position column that keeps insertion order
// stable when several rows share a created_at second.
const schema = `
CREATE TABLE IF NOT EXISTS bills (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    currency TEXT NOT NULL,
    payer_display_name TEXT NOT NULL,
    tax_percentage TEXT NOT NULL,
    service_percentage TEXT NOT NULL,
    tip_amount TEXT NOT NULL,
    status TEXT NOT NULL,
    total_amount TEXT NOT NULL,
    tax_amount TEXT NOT NULL,
    service_amount TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    finalized_at BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    bill_id TEXT NOT NULL,
    display_name TEXT NOT NULL,
    is_payer BOOLEAN NOT NULL,
    position INTEGER NOT NULL,
    joined_at BIGINT NOT NULL,
    FOREIGN KEY (bill_id) REFERENCES bills(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    bill_id TEXT NOT NULL,
    name TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    unit_price TEXT NOT NULL,
    total_price TEXT NOT NULL,
    notes TEXT NOT NULL,
    position INTEGER NOT NULL,
    created_at BIGINT NOT NULL,
    FOREIGN KEY (bill_id) REFERENCES bills(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS claims (
    item_id TEXT NOT NULL,
    participant_id TEXT NOT NULL,
    bill_id TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    PRIMARY KEY (item_id, participant_id),
    FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE,
    FOREIGN KEY (participant_id) REFERENCES participants(id) ON DELETE CASCADE,
    FOREIGN KEY (bill_id) REFERENCES bills(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS final_totals (
    bill_id TEXT NOT NULL,
    participant_id TEXT NOT NULL,
    subtotal TEXT NOT NULL,
    tax_share TEXT NOT NULL,
    service_share TEXT NOT NULL,
    tip_share TEXT NOT NULL,
    total TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    PRIMARY KEY (bill_id, participant_id),
    FOREIGN KEY (bill_id) REFERENCES bills(id) ON DELETE CASCADE,
    FOREIGN KEY (participant_id) REFERENCES participants(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_participants_one_payer ON participants(bill_id) WHERE is_payer;
CREATE INDEX IF NOT EXISTS idx_participants_bill_id ON participants(bill_id);
CREATE INDEX IF NOT EXISTS idx_items_bill_id ON items(bill_id);
CREATE INDEX IF NOT EXISTS idx_claims_bill_id ON claims(bill_id);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
