package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitbill/internal/models"
)

const maxCodeAttempts = 5

const billColumns = `id, code, title, currency, payer_display_name,
    tax_percentage, service_percentage, tip_amount, status,
    total_amount, tax_amount, service_amount, created_at, finalized_at`

// CreateBill persists a new bill, its payer and its initial items.
func (s *Store) CreateBill(ctx context.Context, bill *models.Bill) error {
	if len(bill.Participants) != 1 || !bill.Participants[0].IsPayer {
		return fmt.Errorf("%w: bill must be created with exactly its payer", models.ErrInvalidArgument)
	}

	now := s.now().Unix()
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = now
	}
	if bill.Title == "" {
		bill.Title = generateTitle(bill.PayerDisplayName, time.Unix(bill.CreatedAt, 0))
	}
	bill.Status = models.StatusDraft
	if len(bill.Items) > 0 {
		bill.Status = models.StatusOpen
	}
	bill.TotalAmount = decimal.Zero
	bill.TaxAmount = decimal.Zero
	bill.ServiceAmount = decimal.Zero
	bill.FinalizedAt = 0

	return s.withTx(ctx, func(c conn) error {
		code, err := c.uniqueCode(ctx)
		if err != nil {
			return err
		}
		bill.Code = code

		_, err = c.exec(ctx,
			`INSERT INTO bills (`+billColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			bill.ID, bill.Code, bill.Title, bill.Currency, bill.PayerDisplayName,
			bill.TaxPercentage, bill.ServicePercentage, bill.TipAmount, bill.Status,
			bill.TotalAmount, bill.TaxAmount, bill.ServiceAmount, bill.CreatedAt, bill.FinalizedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bill: %w", err)
		}

		payer := &bill.Participants[0]
		payer.BillID = bill.ID
		if err := c.insertParticipant(ctx, payer, 0, now); err != nil {
			return err
		}

		for i := range bill.Items {
			item := &bill.Items[i]
			item.BillID = bill.ID
			item.ClaimedBy = nil
			if err := c.insertItem(ctx, item, i, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// uniqueCode draws share codes until one is unused.
func (c conn) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return "", err
		}
		var one int
		err = c.queryRow(ctx, "SELECT 1 FROM bills WHERE code = ?", code).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check bill code: %w", err)
		}
	}
	return "", fmt.Errorf("failed to find an unused bill code after %d attempts", maxCodeAttempts)
}

// GetBill retrieves a bill by ID, including all items and participants.
func (s *Store) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	return s.conn().loadBill(ctx, "id", billID)
}

// GetBillByCode retrieves a bill by its share code. Codes are matched
// case-insensitively.
func (s *Store) GetBillByCode(ctx context.Context, code string) (*models.Bill, error) {
	return s.conn().loadBill(ctx, "code", strings.ToUpper(strings.TrimSpace(code)))
}

// loadBill reads a full snapshot. Each result set is drained before the next
// query runs so the snapshot can be read on a single connection.
func (c conn) loadBill(ctx context.Context, column, value string) (*models.Bill, error) {
	bill := &models.Bill{}
	err := c.queryRow(ctx,
		"SELECT "+billColumns+" FROM bills WHERE "+column+" = ?",
		value,
	).Scan(
		&bill.ID, &bill.Code, &bill.Title, &bill.Currency, &bill.PayerDisplayName,
		&bill.TaxPercentage, &bill.ServicePercentage, &bill.TipAmount, &bill.Status,
		&bill.TotalAmount, &bill.TaxAmount, &bill.ServiceAmount, &bill.CreatedAt, &bill.FinalizedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bill %s: %w", value, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	if bill.Participants, err = c.listParticipants(ctx, bill.ID); err != nil {
		return nil, err
	}
	if bill.Items, err = c.listItems(ctx, bill.ID); err != nil {
		return nil, err
	}

	claims, err := c.listClaims(ctx, bill.ID)
	if err != nil {
		return nil, err
	}
	byItem := make(map[string]int, len(bill.Items))
	for i := range bill.Items {
		byItem[bill.Items[i].ID] = i
	}
	for _, claim := range claims {
		if i, ok := byItem[claim.ItemID]; ok {
			bill.Items[i].ClaimedBy = append(bill.Items[i].ClaimedBy, claim.ParticipantID)
		}
	}

	return bill, nil
}

// UpdateBillSettings applies the non-nil fields of settings.
func (s *Store) UpdateBillSettings(ctx context.Context, billID string, settings models.BillSettings) (*models.Bill, error) {
	var bill *models.Bill
	err := s.withTx(ctx, func(c conn) error {
		if _, err := c.requireMutable(ctx, billID); err != nil {
			return err
		}

		var sets []string
		var args []any
		if settings.Title != nil {
			sets = append(sets, "title = ?")
			args = append(args, *settings.Title)
		}
		if settings.TaxPercentage != nil {
			sets = append(sets, "tax_percentage = ?")
			args = append(args, *settings.TaxPercentage)
		}
		if settings.ServicePercentage != nil {
			sets = append(sets, "service_percentage = ?")
			args = append(args, *settings.ServicePercentage)
		}
		if settings.TipAmount != nil {
			sets = append(sets, "tip_amount = ?")
			args = append(args, *settings.TipAmount)
		}

		if len(sets) > 0 {
			args = append(args, billID)
			if _, err := c.exec(ctx,
				"UPDATE bills SET "+strings.Join(sets, ", ")+" WHERE id = ?",
				args...,
			); err != nil {
				return fmt.Errorf("failed to update bill: %w", err)
			}
		}

		var err error
		bill, err = c.loadBill(ctx, "id", billID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// ArchiveBill moves a FINALIZED bill to ARCHIVED.
func (s *Store) ArchiveBill(ctx context.Context, billID string) error {
	return s.withTx(ctx, func(c conn) error {
		status, err := c.lockBill(ctx, billID)
		if err != nil {
			return err
		}
		if status != models.StatusFinalized {
			return fmt.Errorf("%w: bill %s is %s, only FINALIZED bills can be archived",
				models.ErrInvalidState, billID, status)
		}

		res, err := c.exec(ctx,
			"UPDATE bills SET status = ? WHERE id = ? AND status = ?",
			models.StatusArchived, billID, models.StatusFinalized,
		)
		if err != nil {
			return fmt.Errorf("failed to archive bill: %w", err)
		}
		ok, err := affected(res)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: bill %s changed state concurrently", models.ErrInvalidState, billID)
		}
		return nil
	})
}

// generateTitle creates an auto-generated title from the payer's name.
func generateTitle(payer string, at time.Time) string {
	if payer == "" {
		return fmt.Sprintf("Bill - %s", at.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s's bill - %s", payer, at.Format("Jan 2, 2006"))
}
