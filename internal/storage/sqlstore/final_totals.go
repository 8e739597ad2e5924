package sqlstore

import (
	"context"
	"fmt"

	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/storage"
)

// FinalizeBill runs fn on a locked snapshot and freezes its result.
//
// The bill row is locked first (FOR UPDATE on PostgreSQL; SQLite serializes
// on its single connection), so of two concurrent calls exactly one reaches
// fn. The status flip is additionally guarded by a compare-and-set on
// DRAFT/OPEN.
func (s *Store) FinalizeBill(ctx context.Context, billID string, fn storage.FinalizeFunc) (*models.Finalization, error) {
	var fin *models.Finalization
	err := s.withTx(ctx, func(c conn) error {
		status, err := c.lockBill(ctx, billID)
		if err != nil {
			return err
		}
		if status.Frozen() {
			return fmt.Errorf("bill %s: %w", billID, models.ErrAlreadyFinalized)
		}
		if !status.Mutable() {
			return fmt.Errorf("%w: bill %s is %s", models.ErrInvalidState, billID, status)
		}

		bill, err := c.loadBill(ctx, "id", billID)
		if err != nil {
			return err
		}

		fin, err = fn(bill)
		if err != nil {
			return err
		}
		if fin.FinalizedAt == 0 {
			fin.FinalizedAt = s.now().Unix()
		}

		res, err := c.exec(ctx,
			`UPDATE bills SET status = ?, finalized_at = ?, total_amount = ?, tax_amount = ?, service_amount = ?
			WHERE id = ? AND status IN (?, ?)`,
			models.StatusFinalized, fin.FinalizedAt, fin.TotalAmount, fin.TaxAmount, fin.ServiceAmount,
			billID, models.StatusDraft, models.StatusOpen,
		)
		if err != nil {
			return fmt.Errorf("failed to finalize bill: %w", err)
		}
		ok, err := affected(res)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("bill %s: %w", billID, models.ErrAlreadyFinalized)
		}

		if _, err := c.exec(ctx, "DELETE FROM final_totals WHERE bill_id = ?", billID); err != nil {
			return fmt.Errorf("failed to clear final totals: %w", err)
		}
		for i := range fin.Totals {
			ft := &fin.Totals[i]
			ft.BillID = billID
			ft.CreatedAt = fin.FinalizedAt
			if _, err := c.exec(ctx,
				`INSERT INTO final_totals (bill_id, participant_id, subtotal, tax_share, service_share, tip_share, total, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				ft.BillID, ft.ParticipantID, ft.Subtotal, ft.TaxShare, ft.ServiceShare, ft.TipShare, ft.Total, ft.CreatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert final total: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fin, nil
}

// GetFinalTotals returns the frozen totals of a FINALIZED or ARCHIVED bill.
func (s *Store) GetFinalTotals(ctx context.Context, billID string) ([]models.FinalTotal, error) {
	c := s.conn()
	status, err := c.billStatus(ctx, billID)
	if err != nil {
		return nil, err
	}
	if !status.Frozen() {
		return nil, fmt.Errorf("%w: bill %s is %s, not finalized", models.ErrInvalidState, billID, status)
	}

	rows, err := c.query(ctx,
		`SELECT f.bill_id, f.participant_id, p.display_name,
		    f.subtotal, f.tax_share, f.service_share, f.tip_share, f.total, f.created_at
		FROM final_totals f JOIN participants p ON p.id = f.participant_id
		WHERE f.bill_id = ?
		ORDER BY p.position`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get final totals: %w", err)
	}
	defer rows.Close()

	var totals []models.FinalTotal
	for rows.Next() {
		var ft models.FinalTotal
		if err := rows.Scan(
			&ft.BillID, &ft.ParticipantID, &ft.DisplayName,
			&ft.Subtotal, &ft.TaxShare, &ft.ServiceShare, &ft.TipShare, &ft.Total, &ft.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan final total: %w", err)
		}
		totals = append(totals, ft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate final totals: %w", err)
	}
	return totals, nil
}
