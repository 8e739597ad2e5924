package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/money"
)

// Summary aggregates participant totals into bill-level amounts.
type Summary struct {
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	ServiceAmount decimal.Decimal
	TipAmount     decimal.Decimal
	Total         decimal.Decimal
}

// Summarize sums each column of totals.
func Summarize(totals []models.ParticipantTotal) Summary {
	s := Summary{
		Subtotal:      decimal.Zero,
		TaxAmount:     decimal.Zero,
		ServiceAmount: decimal.Zero,
		TipAmount:     decimal.Zero,
		Total:         decimal.Zero,
	}
	for _, t := range totals {
		s.Subtotal = s.Subtotal.Add(t.Subtotal)
		s.TaxAmount = s.TaxAmount.Add(t.TaxShare)
		s.ServiceAmount = s.ServiceAmount.Add(t.ServiceShare)
		s.TipAmount = s.TipAmount.Add(t.TipShare)
		s.Total = s.Total.Add(t.Total)
	}
	return s
}

// Transfer is money one participant owes another.
type Transfer struct {
	From   string // participant who owes
	To     string // participant who is owed
	Amount decimal.Decimal
}

// TransfersToPayer lists what each non-payer owes the payer, rounded to cents.
// The payer covered the whole bill, so every other participant with a
// non-zero total settles directly with them.
func TransfersToPayer(totals []models.ParticipantTotal, payerID string) []Transfer {
	var transfers []Transfer
	for _, t := range totals {
		if t.ParticipantID == payerID {
			continue
		}
		amount := money.RoundCents(t.Total)
		if !amount.IsPositive() {
			continue
		}
		transfers = append(transfers, Transfer{
			From:   t.ParticipantID,
			To:     payerID,
			Amount: amount,
		})
	}
	return transfers
}
