package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitbill/internal/models"
)

// Runs only when POSTGRES_TEST_DSN points at a disposable database.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	ctx := context.Background()
	store, err := New(ctx, dsn)
	require.NoError(t, err)
	defer store.Close()

	bill := &models.Bill{
		Title:             "Team lunch",
		Currency:          "USD",
		PayerDisplayName:  "Alice",
		TaxPercentage:     decimal.RequireFromString("10"),
		ServicePercentage: decimal.Zero,
		TipAmount:         decimal.Zero,
		Participants:      []models.Participant{{DisplayName: "Alice", IsPayer: true}},
		Items: []models.Item{
			{Name: "Noodles", Quantity: 1, UnitPrice: decimal.RequireFromString("12.50"), TotalPrice: decimal.RequireFromString("12.50")},
		},
	}
	require.NoError(t, store.CreateBill(ctx, bill))

	got, err := store.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOpen, got.Status)
	require.Len(t, got.Items, 1)
	assert.True(t, decimal.RequireFromString("12.50").Equal(got.Items[0].TotalPrice))

	payerID := got.Participants[0].ID
	created, err := store.AddClaim(ctx, &models.Claim{BillID: bill.ID, ItemID: got.Items[0].ID, ParticipantID: payerID})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.AddClaim(ctx, &models.Claim{BillID: bill.ID, ItemID: got.Items[0].ID, ParticipantID: payerID})
	require.NoError(t, err)
	assert.False(t, created)

	fin, err := store.FinalizeBill(ctx, bill.ID, func(b *models.Bill) (*models.Finalization, error) {
		return &models.Finalization{
			TotalAmount: decimal.RequireFromString("13.75"),
			Totals: []models.FinalTotal{{ParticipantTotal: models.ParticipantTotal{
				ParticipantID: payerID,
				Subtotal:      decimal.RequireFromString("12.50"),
				Total:         decimal.RequireFromString("13.75"),
			}}},
		}, nil
	})
	require.NoError(t, err)
	assert.NotZero(t, fin.FinalizedAt)

	_, err = store.FinalizeBill(ctx, bill.ID, func(*models.Bill) (*models.Finalization, error) {
		t.Fatal("finalize callback must not run twice")
		return nil, nil
	})
	assert.ErrorIs(t, err, models.ErrAlreadyFinalized)
}
