package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/splitbill/internal/models"
)

// AddItem adds an item to a mutable bill. The first item moves the bill
// from DRAFT to OPEN.
func (s *Store) AddItem(ctx context.Context, item *models.Item) error {
	return s.withTx(ctx, func(c conn) error {
		status, err := c.requireMutable(ctx, item.BillID)
		if err != nil {
			return err
		}
		pos, err := c.nextPosition(ctx, "items", item.BillID)
		if err != nil {
			return err
		}
		item.ClaimedBy = nil
		if err := c.insertItem(ctx, item, pos, s.now().Unix()); err != nil {
			return err
		}

		if status == models.StatusDraft {
			if _, err := c.exec(ctx,
				"UPDATE bills SET status = ? WHERE id = ? AND status = ?",
				models.StatusOpen, item.BillID, models.StatusDraft,
			); err != nil {
				return fmt.Errorf("failed to open bill: %w", err)
			}
		}
		return nil
	})
}

func (c conn) insertItem(ctx context.Context, item *models.Item, position int, now int64) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = now
	}
	_, err := c.exec(ctx,
		`INSERT INTO items (id, bill_id, name, quantity, unit_price, total_price, notes, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.BillID, item.Name, item.Quantity, item.UnitPrice, item.TotalPrice,
		item.Notes, position, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// UpdateItem overwrites the editable fields of an item on a mutable bill.
// Claims are left untouched.
func (s *Store) UpdateItem(ctx context.Context, item *models.Item) error {
	return s.withTx(ctx, func(c conn) error {
		if _, err := c.requireMutable(ctx, item.BillID); err != nil {
			return err
		}
		res, err := c.exec(ctx,
			`UPDATE items SET name = ?, quantity = ?, unit_price = ?, total_price = ?, notes = ?
			WHERE id = ? AND bill_id = ?`,
			item.Name, item.Quantity, item.UnitPrice, item.TotalPrice, item.Notes,
			item.ID, item.BillID,
		)
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}
		ok, err := affected(res)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("item %s on bill %s: %w", item.ID, item.BillID, models.ErrNotFound)
		}
		return nil
	})
}

// DeleteItem removes an item and its claims from a mutable bill.
func (s *Store) DeleteItem(ctx context.Context, billID, itemID string) error {
	return s.withTx(ctx, func(c conn) error {
		if _, err := c.requireMutable(ctx, billID); err != nil {
			return err
		}
		if err := c.belongs(ctx, "items", itemID, billID); err != nil {
			return err
		}
		if _, err := c.exec(ctx, "DELETE FROM claims WHERE item_id = ?", itemID); err != nil {
			return fmt.Errorf("failed to delete claims: %w", err)
		}
		if _, err := c.exec(ctx, "DELETE FROM items WHERE id = ? AND bill_id = ?", itemID, billID); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		return nil
	})
}

func (c conn) listItems(ctx context.Context, billID string) ([]models.Item, error) {
	rows, err := c.query(ctx,
		`SELECT id, bill_id, name, quantity, unit_price, total_price, notes, created_at
		FROM items WHERE bill_id = ? ORDER BY position`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.BillID, &item.Name, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice, &item.Notes, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}
