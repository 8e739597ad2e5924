package service

import (
	"github.com/mmynk/splitbill/internal/calculator"
	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/pkg/api"
)

func toAPIBill(bill *models.Bill) *api.Bill {
	out := &api.Bill{
		ID:                bill.ID,
		Code:              bill.Code,
		Title:             bill.Title,
		Currency:          bill.Currency,
		PayerDisplayName:  bill.PayerDisplayName,
		TaxPercentage:     bill.TaxPercentage,
		ServicePercentage: bill.ServicePercentage,
		TipAmount:         bill.TipAmount,
		Status:            string(bill.Status),
		TotalAmount:       bill.TotalAmount,
		TaxAmount:         bill.TaxAmount,
		ServiceAmount:     bill.ServiceAmount,
		CreatedAt:         bill.CreatedAt,
		FinalizedAt:       bill.FinalizedAt,
		Items:             make([]*api.Item, len(bill.Items)),
		Participants:      toAPIParticipants(bill.Participants),
	}
	for i := range bill.Items {
		out.Items[i] = toAPIItem(&bill.Items[i])
	}
	return out
}

func toAPIItem(item *models.Item) *api.Item {
	claimedBy := item.ClaimedBy
	if claimedBy == nil {
		claimedBy = []string{}
	}
	return &api.Item{
		ID:         item.ID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		TotalPrice: item.TotalPrice,
		Notes:      item.Notes,
		ClaimedBy:  claimedBy,
	}
}

func toAPIParticipant(p *models.Participant) *api.Participant {
	return &api.Participant{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		IsPayer:     p.IsPayer,
		JoinedAt:    p.JoinedAt,
	}
}

func toAPIParticipants(ps []models.Participant) []*api.Participant {
	out := make([]*api.Participant, len(ps))
	for i := range ps {
		out[i] = toAPIParticipant(&ps[i])
	}
	return out
}

func toAPITotals(totals []models.ParticipantTotal) []*api.ParticipantTotal {
	out := make([]*api.ParticipantTotal, len(totals))
	for i, t := range totals {
		out[i] = &api.ParticipantTotal{
			ParticipantID: t.ParticipantID,
			DisplayName:   t.DisplayName,
			Subtotal:      t.Subtotal,
			TaxShare:      t.TaxShare,
			ServiceShare:  t.ServiceShare,
			TipShare:      t.TipShare,
			Total:         t.Total,
		}
	}
	return out
}

func toAPITransfers(transfers []calculator.Transfer) []*api.Transfer {
	out := make([]*api.Transfer, len(transfers))
	for i, t := range transfers {
		out[i] = &api.Transfer{
			FromParticipantID: t.From,
			ToParticipantID:   t.To,
			Amount:            t.Amount,
		}
	}
	return out
}

// participantTotals unwraps frozen totals.
func participantTotals(final []models.FinalTotal) []models.ParticipantTotal {
	out := make([]models.ParticipantTotal, len(final))
	for i, ft := range final {
		out[i] = ft.ParticipantTotal
	}
	return out
}
