package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitbill/internal/auth"
	"github.com/mmynk/splitbill/internal/calculator"
	"github.com/mmynk/splitbill/internal/middleware"
	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/storage/sqlite"
	"github.com/mmynk/splitbill/pkg/api"
	"github.com/mmynk/splitbill/pkg/api/apiconnect"
)

type testServer struct {
	client       apiconnect.BillServiceClient
	computeCalls atomic.Int32
	finalized    atomic.Int32
}

// setupTestServer serves a BillService backed by a temporary SQLite database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ts := &testServer{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := NewBillService(store, tokens,
		WithCompute(func(bill *models.Bill) ([]models.ParticipantTotal, error) {
			ts.computeCalls.Add(1)
			return calculator.ComputeTotals(bill)
		}),
		WithFinalizeHook(func() { ts.finalized.Add(1) }),
	)

	path, handler := apiconnect.NewBillServiceHandler(svc,
		connect.WithInterceptors(middleware.OptionalAuth(tokens)),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	ts.client = apiconnect.NewBillServiceClient(http.DefaultClient, server.URL)
	return ts
}

// request builds a request carrying token as a bearer credential, if set.
func request[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func assertCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}

type dinner struct {
	billID     string
	payerID    string
	payerToken string
	bobID      string
	bobToken   string
	steakID    string
	saladID    string
}

// createDinner creates a bill paid by Alice with Bob joined. The steak is
// left unclaimed so it falls to the payer; Bob claims the salad.
func createDinner(t *testing.T, ts *testServer) dinner {
	t.Helper()
	ctx := context.Background()

	created, err := ts.client.CreateBill(ctx, connect.NewRequest(&api.CreateBillRequest{
		Title:             "Dinner",
		PayerDisplayName:  "Alice",
		TaxPercentage:     d("10"),
		ServicePercentage: d("5"),
		TipAmount:         d("20"),
		Items: []*api.NewItem{
			{Name: "Steak", TotalPrice: d("35")},
			{Name: "Salad", TotalPrice: d("15")},
		},
	}))
	require.NoError(t, err)
	bill := created.Msg.Bill
	require.Len(t, bill.Items, 2)

	joined, err := ts.client.JoinBill(ctx, connect.NewRequest(&api.JoinBillRequest{
		BillID:      bill.ID,
		DisplayName: "Bob",
	}))
	require.NoError(t, err)

	dn := dinner{
		billID:     bill.ID,
		payerID:    created.Msg.PayerID,
		payerToken: created.Msg.PayerToken,
		bobID:      joined.Msg.Participant.ID,
		bobToken:   joined.Msg.Token,
		steakID:    bill.Items[0].ID,
		saladID:    bill.Items[1].ID,
	}

	_, err = ts.client.ClaimItem(ctx, request(&api.ClaimItemRequest{
		BillID: dn.billID,
		ItemID: dn.saladID,
	}, dn.bobToken))
	require.NoError(t, err)
	return dn
}

func TestCreateBill(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	resp, err := ts.client.CreateBill(ctx, connect.NewRequest(&api.CreateBillRequest{
		PayerDisplayName: "  Alice ",
		Currency:         "eur",
		Items: []*api.NewItem{
			{Name: "Beer", Quantity: 3, UnitPrice: d("4.50")},
		},
	}))
	require.NoError(t, err)

	bill := resp.Msg.Bill
	assert.NotEmpty(t, bill.ID)
	assert.Len(t, bill.Code, 7)
	assert.Equal(t, "EUR", bill.Currency)
	assert.Equal(t, "Alice", bill.PayerDisplayName)
	assert.True(t, strings.HasPrefix(bill.Title, "Alice's bill"), "title: %s", bill.Title)
	assert.Equal(t, string(models.StatusOpen), bill.Status)
	require.Len(t, bill.Participants, 1)
	assert.True(t, bill.Participants[0].IsPayer)
	assert.Equal(t, bill.Participants[0].ID, resp.Msg.PayerID)
	assert.NotEmpty(t, resp.Msg.PayerToken)

	require.Len(t, bill.Items, 1)
	assert.Equal(t, 3, bill.Items[0].Quantity)
	assertDecimal(t, "13.50", bill.Items[0].TotalPrice)
	assert.Empty(t, bill.Items[0].ClaimedBy)

	t.Run("defaults", func(t *testing.T) {
		resp, err := ts.client.CreateBill(ctx, connect.NewRequest(&api.CreateBillRequest{
			Title:            "Lunch",
			PayerDisplayName: "Carol",
		}))
		require.NoError(t, err)
		assert.Equal(t, DefaultCurrency, resp.Msg.Bill.Currency)
		assert.Equal(t, "Lunch", resp.Msg.Bill.Title)
		assert.Equal(t, string(models.StatusDraft), resp.Msg.Bill.Status)
	})

	t.Run("lookup by code", func(t *testing.T) {
		got, err := ts.client.GetBillByCode(ctx, connect.NewRequest(&api.GetBillByCodeRequest{
			Code: strings.ToLower(bill.Code),
		}))
		require.NoError(t, err)
		assert.Equal(t, bill.ID, got.Msg.Bill.ID)
	})
}

func TestCreateBill_Validation(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name    string
		req     *api.CreateBillRequest
		wantMsg string
	}{
		{
			name:    "missing payer name",
			req:     &api.CreateBillRequest{},
			wantMsg: "payer_display_name",
		},
		{
			name:    "tax above 100",
			req:     &api.CreateBillRequest{PayerDisplayName: "Alice", TaxPercentage: d("100.01")},
			wantMsg: "tax_percentage",
		},
		{
			name:    "negative tip",
			req:     &api.CreateBillRequest{PayerDisplayName: "Alice", TipAmount: d("-1")},
			wantMsg: "tip_amount",
		},
		{
			name:    "bad currency",
			req:     &api.CreateBillRequest{PayerDisplayName: "Alice", Currency: "US"},
			wantMsg: "currency",
		},
		{
			name: "item without name",
			req: &api.CreateBillRequest{
				PayerDisplayName: "Alice",
				Items:            []*api.NewItem{{TotalPrice: d("5")}},
			},
			wantMsg: "items[0].name",
		},
		{
			name: "negative price",
			req: &api.CreateBillRequest{
				PayerDisplayName: "Alice",
				Items:            []*api.NewItem{{Name: "Refund", TotalPrice: d("-5")}},
			},
			wantMsg: "items[0].total_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.client.CreateBill(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, connect.CodeInvalidArgument, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGetBill_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	_, err := ts.client.GetBill(ctx, connect.NewRequest(&api.GetBillRequest{BillID: "missing"}))
	assertCode(t, connect.CodeNotFound, err)

	_, err = ts.client.GetBillByCode(ctx, connect.NewRequest(&api.GetBillByCodeRequest{Code: "NOPE123"}))
	assertCode(t, connect.CodeNotFound, err)

	_, err = ts.client.GetTotals(ctx, connect.NewRequest(&api.GetTotalsRequest{BillID: "missing"}))
	assertCode(t, connect.CodeNotFound, err)
}

func TestGetTotals_Provisional(t *testing.T) {
	ts := setupTestServer(t)
	dn := createDinner(t, ts)

	resp, err := ts.client.GetTotals(context.Background(), connect.NewRequest(&api.GetTotalsRequest{
		BillID: dn.billID,
	}))
	require.NoError(t, err)

	msg := resp.Msg
	assert.False(t, msg.IsFinal)
	require.Len(t, msg.Totals, 2)

	alice, bob := msg.Totals[0], msg.Totals[1]
	assert.Equal(t, dn.payerID, alice.ParticipantID)
	assertDecimal(t, "35", alice.Subtotal)
	assertDecimal(t, "3.50", alice.TaxShare)
	assertDecimal(t, "1.75", alice.ServiceShare)
	assertDecimal(t, "14", alice.TipShare)
	assertDecimal(t, "54.25", alice.Total)

	assert.Equal(t, dn.bobID, bob.ParticipantID)
	assert.Equal(t, "Bob", bob.DisplayName)
	assertDecimal(t, "15", bob.Subtotal)
	assertDecimal(t, "23.25", bob.Total)

	assertDecimal(t, "50", msg.Subtotal)
	assertDecimal(t, "5", msg.TaxAmount)
	assertDecimal(t, "2.50", msg.ServiceAmount)
	assertDecimal(t, "20", msg.TipAmount)
	assertDecimal(t, "77.50", msg.GrandTotal)

	require.Len(t, msg.Transfers, 1)
	assert.Equal(t, dn.bobID, msg.Transfers[0].FromParticipantID)
	assert.Equal(t, dn.payerID, msg.Transfers[0].ToParticipantID)
	assertDecimal(t, "23.25", msg.Transfers[0].Amount)
}

func TestClaimItem(t *testing.T) {
	ts := setupTestServer(t)
	dn := createDinner(t, ts)
	ctx := context.Background()

	t.Run("claiming twice is a no-op", func(t *testing.T) {
		resp, err := ts.client.ClaimItem(ctx, request(&api.ClaimItemRequest{
			BillID: dn.billID,
			ItemID: dn.saladID,
		}, dn.bobToken))
		require.NoError(t, err)
		assert.False(t, resp.Msg.Created)
		assert.Equal(t, []string{dn.bobID}, resp.Msg.Item.ClaimedBy)
	})

	t.Run("payer claims on behalf of a participant", func(t *testing.T) {
		resp, err := ts.client.ClaimItem(ctx, request(&api.ClaimItemRequest{
			BillID:        dn.billID,
			ItemID:        dn.steakID,
			ParticipantID: dn.bobID,
		}, dn.payerToken))
		require.NoError(t, err)
		assert.True(t, resp.Msg.Created)
		assert.Equal(t, []string{dn.bobID}, resp.Msg.Item.ClaimedBy)
	})

	t.Run("shared claim splits equally", func(t *testing.T) {
		_, err := ts.client.ClaimItem(ctx, request(&api.ClaimItemRequest{
			BillID: dn.billID,
			ItemID: dn.steakID,
		}, dn.payerToken))
		require.NoError(t, err)

		resp, err := ts.client.GetTotals(ctx, connect.NewRequest(&api.GetTotalsRequest{BillID: dn.billID}))
		require.NoError(t, err)
		assertDecimal(t, "17.5", resp.Msg.Totals[0].Subtotal)
		assertDecimal(t, "32.5", resp.Msg.Totals[1].Subtotal)
	})

	t.Run("unclaim is idempotent", func(t *testing.T) {
		for range 2 {
			resp, err := ts.client.UnclaimItem(ctx, request(&api.UnclaimItemRequest{
				BillID: dn.billID,
				ItemID: dn.steakID,
			}, dn.bobToken))
			require.NoError(t, err)
			assert.Equal(t, []string{dn.payerID}, resp.Msg.Item.ClaimedBy)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := ts.client.ClaimItem(ctx, request(&api.ClaimItemRequest{
			BillID: dn.billID,
			ItemID: "missing",
		}, dn.bobToken))
		assertCode(t, connect.CodeNotFound, err)
	})
}

func TestAuthorization(t *testing.T) {
	ts := setupTestServer(t)
	dn := createDinner(t, ts)
	other := createDinner(t, ts)
	ctx := context.Background()

	addItem := func(token string) error {
		_, err := ts.client.AddItem(ctx, request(&api.AddItemRequest{
			BillID: dn.billID,
			Item:   &api.NewItem{Name: "Wine", TotalPrice: d("30")},
		}, token))
		return err
	}

	t.Run("no token", func(t *testing.T) {
		assertCode(t, connect.CodeUnauthenticated, addItem(""))
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		assertCode(t, connect.CodeUnauthenticated, addItem("not-a-jwt"))
	})

	t.Run("participant cannot edit items", func(t *testing.T) {
		assertCode(t, connect.CodePermissionDenied, addItem(dn.bobToken))
	})

	t.Run("payer of another bill", func(t *testing.T) {
		assertCode(t, connect.CodePermissionDenied, addItem(other.payerToken))
	})

	t.Run("participant cannot claim for someone else", func(t *testing.T) {
		_, err := ts.client.ClaimItem(ctx, request(&api.ClaimItemRequest{
			BillID:        dn.billID,
			ItemID:        dn.steakID,
			ParticipantID: dn.payerID,
		}, dn.bobToken))
		assertCode(t, connect.CodePermissionDenied, err)
	})

	t.Run("claim without token", func(t *testing.T) {
		_, err := ts.client.ClaimItem(ctx, connect.NewRequest(&api.ClaimItemRequest{
			BillID:        dn.billID,
			ItemID:        dn.steakID,
			ParticipantID: dn.bobID,
		}))
		assertCode(t, connect.CodeUnauthenticated, err)
	})

	t.Run("participant cannot finalize", func(t *testing.T) {
		_, err := ts.client.FinalizeBill(ctx, request(&api.FinalizeBillRequest{BillID: dn.billID}, dn.bobToken))
		assertCode(t, connect.CodePermissionDenied, err)
	})

	t.Run("payer can edit items", func(t *testing.T) {
		assert.NoError(t, addItem(dn.payerToken))
	})
}

func TestItems(t *testing.T) {
	ts := setupTestServer(t)
	dn := createDinner(t, ts)
	ctx := context.Background()

	added, err := ts.client.AddItem(ctx, request(&api.AddItemRequest{
		BillID: dn.billID,
		Item:   &api.NewItem{Name: "Wine", Quantity: 2, UnitPrice: d("12")},
	}, dn.payerToken))
	require.NoError(t, err)
	assert.Equal(t, 2, added.Msg.Item.Quantity)
	assertDecimal(t, "24", added.Msg.Item.TotalPrice)

	name := "Red wine"
	updated, err := ts.client.UpdateItem(ctx, request(&api.UpdateItemRequest{
		BillID:     dn.billID,
		ItemID:     added.Msg.Item.ID,
		Name:       &name,
		TotalPrice: dp("26"),
	}, dn.payerToken))
	require.NoError(t, err)
	assert.Equal(t, "Red wine", updated.Msg.Item.Name)
	assert.Equal(t, 2, updated.Msg.Item.Quantity)
	assertDecimal(t, "26", updated.Msg.Item.TotalPrice)

	t.Run("update keeps claims", func(t *testing.T) {
		resp, err := ts.client.UpdateItem(ctx, request(&api.UpdateItemRequest{
			BillID:     dn.billID,
			ItemID:     dn.saladID,
			TotalPrice: dp("16"),
		}, dn.payerToken))
		require.NoError(t, err)
		assert.Equal(t, []string{dn.bobID}, resp.Msg.Item.ClaimedBy)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := ts.client.DeleteItem(ctx, request(&api.DeleteItemRequest{
			BillID: dn.billID,
			ItemID: dn.saladID,
		}, dn.payerToken))
		require.NoError(t, err)

		bill, err := ts.client.GetBill(ctx, connect.NewRequest(&api.GetBillRequest{BillID: dn.billID}))
		require.NoError(t, err)
		require.Len(t, bill.Msg.Bill.Items, 2)
		assert.Equal(t, dn.steakID, bill.Msg.Bill.Items[0].ID)
		assert.Equal(t, "Red wine", bill.Msg.Bill.Items[1].Name)
	})

	t.Run("item of another bill", func(t *testing.T) {
		_, err := ts.client.UpdateItem(ctx, request(&api.UpdateItemRequest{
			BillID:     dn.billID,
			ItemID:     "missing",
			TotalPrice: dp("1"),
		}, dn.payerToken))
		assertCode(t, connect.CodeNotFound, err)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		zero := 0
		_, err := ts.client.UpdateItem(ctx, request(&api.UpdateItemRequest{
			BillID:   dn.billID,
			ItemID:   dn.steakID,
			Quantity: &zero,
		}, dn.payerToken))
		assertCode(t, connect.CodeInvalidArgument, err)
	})
}

func TestUpdateBill(t *testing.T) {
	ts := setupTestServer(t)
	dn := createDinner(t, ts)
	ctx := context.Background()

	resp, err := ts.client.UpdateBill(ctx, request(&api.UpdateBillRequest{
		BillID:    dn.billID,
		TipAmount: dp("0"),
	}, dn.payerToken))
	require.NoError(t, err)
	assertDecimal(t, "0", resp.Msg.Bill.TipAmount)
	assertDecimal(t, "10", resp.Msg.Bill.TaxPercentage)
	assert.Equal(t, "Dinner", resp.Msg.Bill.Title)

	totals, err := ts.client.GetTotals(ctx, connect.NewRequest(&api.GetTotalsRequest{BillID: dn.billID}))
	require.NoError(t, err)
	assertDecimal(t, "57.50", totals.Msg.GrandTotal)

	_, err = ts.client.UpdateBill(ctx, request(&api.UpdateBillRequest{
		BillID:            dn.billID,
		ServicePercentage: dp("150"),
	}, dn.payerToken))
	assertCode(t, connect.CodeInvalidArgument, err)
}

func TestJoinBill(t *testing.T) {
	ts := setupTestServer(t)
	dn := createDinner(t, ts)
	ctx := context.Background()

	carol, err := ts.client.JoinBill(ctx, connect.NewRequest(&api.JoinBillRequest{
		BillID:      dn.billID,
		DisplayName: "Carol",
	}))
	require.NoError(t, err)
	assert.False(t, carol.Msg.Participant.IsPayer)

	t.Run("rejoin renames", func(t *testing.T) {
		resp, err := ts.client.JoinBill(ctx, request(&api.JoinBillRequest{
			BillID:      dn.billID,
			DisplayName: "Caroline",
		}, carol.Msg.Token))
		require.NoError(t, err)
		assert.Equal(t, carol.Msg.Participant.ID, resp.Msg.Participant.ID)
		assert.Equal(t, "Caroline", resp.Msg.Participant.DisplayName)
	})

	t.Run("join order", func(t *testing.T) {
		resp, err := ts.client.ListParticipants(ctx, connect.NewRequest(&api.ListParticipantsRequest{
			BillID: dn.billID,
		}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Participants, 3)
		assert.Equal(t, "Alice", resp.Msg.Participants[0].DisplayName)
		assert.True(t, resp.Msg.Participants[0].IsPayer)
		assert.Equal(t, "Bob", resp.Msg.Participants[1].DisplayName)
		assert.Equal(t, "Caroline", resp.Msg.Participants[2].DisplayName)
	})

	t.Run("unknown bill", func(t *testing.T) {
		_, err := ts.client.JoinBill(ctx, connect.NewRequest(&api.JoinBillRequest{
			BillID:      "missing",
			DisplayName: "Dave",
		}))
		assertCode(t, connect.CodeNotFound, err)
	})
}

func TestFinalizeBill(t *testing.T) {
	ts := setupTestServer(t)
	dn := createDinner(t, ts)
	ctx := context.Background()

	_, err := ts.client.GetFinalTotals(ctx, connect.NewRequest(&api.GetFinalTotalsRequest{BillID: dn.billID}))
	assertCode(t, connect.CodeFailedPrecondition, err)

	fin, err := ts.client.FinalizeBill(ctx, request(&api.FinalizeBillRequest{BillID: dn.billID}, dn.payerToken))
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusFinalized), fin.Msg.Bill.Status)
	assert.NotZero(t, fin.Msg.Bill.FinalizedAt)
	assertDecimal(t, "77.50", fin.Msg.Bill.TotalAmount)
	assertDecimal(t, "5", fin.Msg.Bill.TaxAmount)
	assertDecimal(t, "2.50", fin.Msg.Bill.ServiceAmount)
	require.Len(t, fin.Msg.Totals, 2)
	assertDecimal(t, "54.25", fin.Msg.Totals[0].Total)
	assertDecimal(t, "23.25", fin.Msg.Totals[1].Total)
	assert.Equal(t, int32(1), ts.finalized.Load())

	t.Run("totals are frozen", func(t *testing.T) {
		calls := ts.computeCalls.Load()

		resp, err := ts.client.GetTotals(ctx, connect.NewRequest(&api.GetTotalsRequest{BillID: dn.billID}))
		require.NoError(t, err)
		assert.True(t, resp.Msg.IsFinal)
		assertDecimal(t, "77.50", resp.Msg.GrandTotal)
		require.Len(t, resp.Msg.Transfers, 1)
		assertDecimal(t, "23.25", resp.Msg.Transfers[0].Amount)

		final, err := ts.client.GetFinalTotals(ctx, connect.NewRequest(&api.GetFinalTotalsRequest{BillID: dn.billID}))
		require.NoError(t, err)
		assert.Equal(t, fin.Msg.Bill.FinalizedAt, final.Msg.FinalizedAt)
		require.Len(t, final.Msg.Totals, 2)
		assert.Equal(t, "Bob", final.Msg.Totals[1].DisplayName)

		assert.Equal(t, calls, ts.computeCalls.Load(), "frozen totals must not be recomputed")
	})

	t.Run("second finalize", func(t *testing.T) {
		_, err := ts.client.FinalizeBill(ctx, request(&api.FinalizeBillRequest{BillID: dn.billID}, dn.payerToken))
		assertCode(t, connect.CodeFailedPrecondition, err)
		assert.Equal(t, int32(1), ts.finalized.Load())
	})

	t.Run("mutations are rejected", func(t *testing.T) {
		_, err := ts.client.ClaimItem(ctx, request(&api.ClaimItemRequest{
			BillID: dn.billID,
			ItemID: dn.steakID,
		}, dn.bobToken))
		assertCode(t, connect.CodeFailedPrecondition, err)

		_, err = ts.client.AddItem(ctx, request(&api.AddItemRequest{
			BillID: dn.billID,
			Item:   &api.NewItem{Name: "Dessert", TotalPrice: d("8")},
		}, dn.payerToken))
		assertCode(t, connect.CodeFailedPrecondition, err)

		_, err = ts.client.UpdateBill(ctx, request(&api.UpdateBillRequest{
			BillID:    dn.billID,
			TipAmount: dp("5"),
		}, dn.payerToken))
		assertCode(t, connect.CodeFailedPrecondition, err)

		_, err = ts.client.JoinBill(ctx, connect.NewRequest(&api.JoinBillRequest{
			BillID:      dn.billID,
			DisplayName: "Late",
		}))
		assertCode(t, connect.CodeFailedPrecondition, err)
	})
}

func TestArchiveBill(t *testing.T) {
	ts := setupTestServer(t)
	dn := createDinner(t, ts)
	ctx := context.Background()

	_, err := ts.client.ArchiveBill(ctx, request(&api.ArchiveBillRequest{BillID: dn.billID}, dn.payerToken))
	assertCode(t, connect.CodeFailedPrecondition, err)

	_, err = ts.client.FinalizeBill(ctx, request(&api.FinalizeBillRequest{BillID: dn.billID}, dn.payerToken))
	require.NoError(t, err)

	_, err = ts.client.ArchiveBill(ctx, request(&api.ArchiveBillRequest{BillID: dn.billID}, dn.bobToken))
	assertCode(t, connect.CodePermissionDenied, err)

	resp, err := ts.client.ArchiveBill(ctx, request(&api.ArchiveBillRequest{BillID: dn.billID}, dn.payerToken))
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusArchived), resp.Msg.Bill.Status)

	final, err := ts.client.GetFinalTotals(ctx, connect.NewRequest(&api.GetFinalTotalsRequest{BillID: dn.billID}))
	require.NoError(t, err)
	assert.Len(t, final.Msg.Totals, 2)

	_, err = ts.client.FinalizeBill(ctx, request(&api.FinalizeBillRequest{BillID: dn.billID}, dn.payerToken))
	assertCode(t, connect.CodeFailedPrecondition, err)
}
