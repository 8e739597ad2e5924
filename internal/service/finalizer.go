package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/splitbill/internal/calculator"
	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/storage"
)

// ComputeFunc computes provisional participant totals for a bill snapshot.
// calculator.ComputeTotals is the production implementation.
type ComputeFunc func(bill *models.Bill) ([]models.ParticipantTotal, error)

// Finalizer freezes a bill's totals exactly once.
//
// The compute step, the FinalTotal writes and the status flip run in one
// store transaction over a locked bill row, so concurrent finalizations of
// the same bill produce one winner; the others fail with
// models.ErrAlreadyFinalized and leave the stored totals untouched.
type Finalizer struct {
	store       storage.Store
	compute     ComputeFunc
	now         func() time.Time
	onFinalized func()
}

// NewFinalizer creates a Finalizer. A nil compute defaults to calculator.ComputeTotals.
func NewFinalizer(store storage.Store, compute ComputeFunc) *Finalizer {
	if compute == nil {
		compute = calculator.ComputeTotals
	}
	return &Finalizer{store: store, compute: compute, now: time.Now}
}

// Finalize computes and freezes the totals of billID.
func (f *Finalizer) Finalize(ctx context.Context, billID string) (*models.Finalization, error) {
	fin, err := f.store.FinalizeBill(ctx, billID, f.freeze)
	if err != nil {
		return nil, err
	}

	slog.Info("Bill finalized",
		"bill_id", billID,
		"total_amount", fin.TotalAmount.String(),
		"participants", len(fin.Totals),
	)
	if f.onFinalized != nil {
		f.onFinalized()
	}
	return fin, nil
}

// freeze runs inside the store transaction on the locked snapshot.
func (f *Finalizer) freeze(bill *models.Bill) (*models.Finalization, error) {
	totals, err := f.compute(bill)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals for bill %s: %w", bill.ID, err)
	}

	summary := calculator.Summarize(totals)
	fin := &models.Finalization{
		FinalizedAt:   f.now().Unix(),
		TotalAmount:   summary.Total,
		TaxAmount:     summary.TaxAmount,
		ServiceAmount: summary.ServiceAmount,
		Totals:        make([]models.FinalTotal, len(totals)),
	}
	for i, t := range totals {
		fin.Totals[i] = models.FinalTotal{
			BillID:           bill.ID,
			ParticipantTotal: t,
			CreatedAt:        fin.FinalizedAt,
		}
	}
	return fin, nil
}
