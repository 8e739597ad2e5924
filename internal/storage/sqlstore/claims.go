package sqlstore

import (
	"context"
	"fmt"

	"github.com/mmynk/splitbill/internal/models"
)

// AddClaim records that a participant co-owns an item. The (item,
// participant) primary key makes a repeated claim a no-op.
func (s *Store) AddClaim(ctx context.Context, claim *models.Claim) (bool, error) {
	var created bool
	err := s.withTx(ctx, func(c conn) error {
		if err := c.checkClaimRefs(ctx, claim.BillID, claim.ItemID, claim.ParticipantID); err != nil {
			return err
		}
		if claim.CreatedAt == 0 {
			claim.CreatedAt = s.now().Unix()
		}
		res, err := c.exec(ctx,
			`INSERT INTO claims (item_id, participant_id, bill_id, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (item_id, participant_id) DO NOTHING`,
			claim.ItemID, claim.ParticipantID, claim.BillID, claim.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert claim: %w", err)
		}
		created, err = affected(res)
		return err
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// RemoveClaim deletes a claim if it exists.
func (s *Store) RemoveClaim(ctx context.Context, billID, itemID, participantID string) error {
	return s.withTx(ctx, func(c conn) error {
		if err := c.checkClaimRefs(ctx, billID, itemID, participantID); err != nil {
			return err
		}
		if _, err := c.exec(ctx,
			"DELETE FROM claims WHERE item_id = ? AND participant_id = ?",
			itemID, participantID,
		); err != nil {
			return fmt.Errorf("failed to delete claim: %w", err)
		}
		return nil
	})
}

// checkClaimRefs locks a mutable bill and checks that both ends of the
// claim belong to it.
func (c conn) checkClaimRefs(ctx context.Context, billID, itemID, participantID string) error {
	if _, err := c.requireMutable(ctx, billID); err != nil {
		return err
	}
	if err := c.belongs(ctx, "items", itemID, billID); err != nil {
		return err
	}
	return c.belongs(ctx, "participants", participantID, billID)
}

func (c conn) listClaims(ctx context.Context, billID string) ([]models.Claim, error) {
	rows, err := c.query(ctx,
		`SELECT c.item_id, c.participant_id, c.bill_id, c.created_at
		FROM claims c JOIN participants p ON p.id = c.participant_id
		WHERE c.bill_id = ?
		ORDER BY p.position`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}
	defer rows.Close()

	var claims []models.Claim
	for rows.Next() {
		var claim models.Claim
		if err := rows.Scan(&claim.ItemID, &claim.ParticipantID, &claim.BillID, &claim.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, claim)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate claims: %w", err)
	}
	return claims, nil
}
