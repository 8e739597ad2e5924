package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/pkg/api"
)

func TestValidateRequest(t *testing.T) {
	title := ""
	tests := []struct {
		name    string
		msg     any
		wantErr string
	}{
		{
			name: "valid",
			msg: &api.CreateBillRequest{
				PayerDisplayName: "Alice",
				TaxPercentage:    d("8.875"),
				Items:            []*api.NewItem{{Name: "Pizza", TotalPrice: d("18")}},
			},
		},
		{
			name:    "percentage upper bound is inclusive",
			msg:     &api.CreateBillRequest{PayerDisplayName: "Alice", ServicePercentage: d("100")},
			wantErr: "",
		},
		{
			name:    "nil item",
			msg:     &api.CreateBillRequest{PayerDisplayName: "Alice", Items: []*api.NewItem{nil}},
			wantErr: "'items[0]' is required",
		},
		{
			name:    "missing bill id",
			msg:     &api.GetTotalsRequest{},
			wantErr: "'bill_id' is required",
		},
		{
			name:    "empty title on update",
			msg:     &api.UpdateBillRequest{BillID: "b1", Title: &title},
			wantErr: "'title' must be at least 1 characters",
		},
		{
			name:    "negative tip on update",
			msg:     &api.UpdateBillRequest{BillID: "b1", TipAmount: dp("-0.01")},
			wantErr: "'tip_amount' must be a non-negative amount",
		},
		{
			name:    "missing item",
			msg:     &api.AddItemRequest{BillID: "b1"},
			wantErr: "'item' is required",
		},
		{
			name:    "unset optional fields pass",
			msg:     &api.UpdateItemRequest{BillID: "b1", ItemID: "i1"},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.msg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, models.ErrInvalidArgument)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
