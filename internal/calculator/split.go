package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/money"
)

// ComputeTotals computes each participant's share of a bill snapshot.
// The result has one entry per participant, in bill participant order.
//
// Algorithm:
//   - an item claimed by N participants adds total_price/N to each claimant's subtotal
//   - an unclaimed item adds its full total_price to the payer's subtotal
//   - tax and service are computed on the bill subtotal, then apportioned by subtotal share
//   - the fixed tip is apportioned by subtotal share
//
// No rounding happens here. The only error is ErrInvariantViolation, for a
// claim by a stranger or an unclaimed item on a bill without a payer.
func ComputeTotals(bill *models.Bill) ([]models.ParticipantTotal, error) {
	totals := make([]models.ParticipantTotal, len(bill.Participants))
	index := make(map[string]int, len(bill.Participants))
	payer := -1

	for i, p := range bill.Participants {
		totals[i] = models.ParticipantTotal{
			ParticipantID: p.ID,
			DisplayName:   p.DisplayName,
			Subtotal:      decimal.Zero,
			TaxShare:      decimal.Zero,
			ServiceShare:  decimal.Zero,
			TipShare:      decimal.Zero,
			Total:         decimal.Zero,
		}
		index[p.ID] = i
		if p.IsPayer && payer < 0 {
			payer = i
		}
	}

	for _, item := range bill.Items {
		claimants := distinct(item.ClaimedBy)

		if len(claimants) == 0 {
			if payer < 0 {
				return nil, fmt.Errorf("%w: item %s is unclaimed and bill %s has no payer",
					models.ErrInvariantViolation, item.ID, bill.ID)
			}
			totals[payer].Subtotal = totals[payer].Subtotal.Add(item.TotalPrice)
			continue
		}

		share := money.Share(item.TotalPrice, len(claimants))
		for _, participantID := range claimants {
			i, ok := index[participantID]
			if !ok {
				return nil, fmt.Errorf("%w: item %s claimed by unknown participant %s",
					models.ErrInvariantViolation, item.ID, participantID)
			}
			totals[i].Subtotal = totals[i].Subtotal.Add(share)
		}
	}

	billSubtotal := decimal.Zero
	for _, t := range totals {
		billSubtotal = billSubtotal.Add(t.Subtotal)
	}

	taxAmount := money.Percent(billSubtotal, bill.TaxPercentage)
	serviceAmount := money.Percent(billSubtotal, bill.ServicePercentage)

	for i := range totals {
		t := &totals[i]
		// Proportional returns zero when billSubtotal is zero.
		t.TaxShare = money.Proportional(t.Subtotal, billSubtotal, taxAmount)
		t.ServiceShare = money.Proportional(t.Subtotal, billSubtotal, serviceAmount)
		t.TipShare = money.Proportional(t.Subtotal, billSubtotal, bill.TipAmount)
		t.Total = money.Sum(t.Subtotal, t.TaxShare, t.ServiceShare, t.TipShare)
	}

	return totals, nil
}

// distinct drops repeated participant IDs, keeping first-seen order.
func distinct(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
