package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/splitbill/internal/models"
)

// AddParticipant adds a non-payer participant to a mutable bill.
func (s *Store) AddParticipant(ctx context.Context, participant *models.Participant) error {
	if participant.IsPayer {
		return fmt.Errorf("%w: a bill has exactly one payer", models.ErrInvalidArgument)
	}
	return s.withTx(ctx, func(c conn) error {
		if _, err := c.requireMutable(ctx, participant.BillID); err != nil {
			return err
		}
		pos, err := c.nextPosition(ctx, "participants", participant.BillID)
		if err != nil {
			return err
		}
		return c.insertParticipant(ctx, participant, pos, s.now().Unix())
	})
}

func (c conn) insertParticipant(ctx context.Context, p *models.Participant, position int, now int64) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.JoinedAt == 0 {
		p.JoinedAt = now
	}
	_, err := c.exec(ctx,
		`INSERT INTO participants (id, bill_id, display_name, is_payer, position, joined_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.BillID, p.DisplayName, p.IsPayer, position, p.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// RenameParticipant changes the display name of a participant on a mutable bill.
func (s *Store) RenameParticipant(ctx context.Context, billID, participantID, displayName string) (*models.Participant, error) {
	var p *models.Participant
	err := s.withTx(ctx, func(c conn) error {
		if _, err := c.requireMutable(ctx, billID); err != nil {
			return err
		}
		res, err := c.exec(ctx,
			"UPDATE participants SET display_name = ? WHERE id = ? AND bill_id = ?",
			displayName, participantID, billID,
		)
		if err != nil {
			return fmt.Errorf("failed to rename participant: %w", err)
		}
		ok, err := affected(res)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("participant %s on bill %s: %w", participantID, billID, models.ErrNotFound)
		}
		p, err = c.getParticipant(ctx, billID, participantID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (c conn) getParticipant(ctx context.Context, billID, participantID string) (*models.Participant, error) {
	p := &models.Participant{}
	err := c.queryRow(ctx,
		`SELECT id, bill_id, display_name, is_payer, joined_at
		FROM participants WHERE id = ? AND bill_id = ?`,
		participantID, billID,
	).Scan(&p.ID, &p.BillID, &p.DisplayName, &p.IsPayer, &p.JoinedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("participant %s on bill %s: %w", participantID, billID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

func (c conn) listParticipants(ctx context.Context, billID string) ([]models.Participant, error) {
	rows, err := c.query(ctx,
		`SELECT id, bill_id, display_name, is_payer, joined_at
		FROM participants WHERE bill_id = ? ORDER BY position`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.BillID, &p.DisplayName, &p.IsPayer, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}
