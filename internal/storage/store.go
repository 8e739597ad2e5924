// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/splitbill/internal/models"
)

// FinalizeFunc computes the frozen totals for a locked bill snapshot.
// It runs inside the store's finalize transaction and must not call back
// into the store.
type FinalizeFunc func(bill *models.Bill) (*models.Finalization, error)

// Store defines the interface for bill storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer. It holds no arithmetic: totals are
// computed by the calculator and handed to FinalizeBill.
//
// Every mutation checks the bill's lifecycle state inside its own
// transaction and fails with models.ErrInvalidState once the bill is no
// longer DRAFT or OPEN. References to items or participants of another bill
// fail with models.ErrNotFound.
type Store interface {
	// CreateBill persists a new bill together with its payer participant
	// (the first entry of bill.Participants) and any initial items.
	// IDs, the share code and timestamps are populated by the store.
	// The status is OPEN when items are present, DRAFT otherwise.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves the full snapshot of a bill: items with claimant IDs
	// and participants in join order.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// GetBillByCode is GetBill keyed by the share code.
	GetBillByCode(ctx context.Context, code string) (*models.Bill, error)

	// UpdateBillSettings applies the non-nil settings and returns the updated bill.
	UpdateBillSettings(ctx context.Context, billID string, settings models.BillSettings) (*models.Bill, error)

	// AddParticipant adds a non-payer participant to participant.BillID.
	AddParticipant(ctx context.Context, participant *models.Participant) error

	// RenameParticipant changes a participant's display name.
	RenameParticipant(ctx context.Context, billID, participantID, displayName string) (*models.Participant, error)

	// AddItem adds an item to item.BillID, moving a DRAFT bill to OPEN.
	AddItem(ctx context.Context, item *models.Item) error

	// UpdateItem overwrites name, quantity, prices and notes of an existing item.
	UpdateItem(ctx context.Context, item *models.Item) error

	// DeleteItem removes an item and its claims.
	DeleteItem(ctx context.Context, billID, itemID string) error

	// AddClaim records a claim. A repeated claim is a no-op and reports
	// created=false.
	AddClaim(ctx context.Context, claim *models.Claim) (created bool, err error)

	// RemoveClaim deletes a claim. Removing a missing claim is not an error.
	RemoveClaim(ctx context.Context, billID, itemID, participantID string) error

	// FinalizeBill locks the bill, rejects it with models.ErrAlreadyFinalized
	// if it is already FINALIZED or ARCHIVED, calls fn on the locked snapshot,
	// stores the result and flips the status to FINALIZED, all in one
	// transaction. Concurrent calls finalize at most once.
	FinalizeBill(ctx context.Context, billID string, fn FinalizeFunc) (*models.Finalization, error)

	// GetFinalTotals returns the frozen totals in participant join order.
	// It fails with models.ErrInvalidState before finalization.
	GetFinalTotals(ctx context.Context, billID string) ([]models.FinalTotal, error)

	// ArchiveBill moves a FINALIZED bill to ARCHIVED.
	ArchiveBill(ctx context.Context, billID string) error

	// Close releases any resources held by the store.
	Close() error
}
