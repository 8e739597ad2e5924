// Package money holds the decimal helpers shared by the calculator, the store
// and the wire layer.
//
// Amounts are shopspring decimals. Division is carried at
// decimal.DivisionPrecision fractional digits (16 by default) and nothing is
// rounded until Display.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of fractional digits shown to people.
const DisplayPlaces = 2

var hundred = decimal.NewFromInt(100)

// Share splits amount into n equal parts. It returns zero when n <= 0.
func Share(amount decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromInt(int64(n)))
}

// Percent returns amount * pct / 100.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// Proportional returns part * amount / whole, or zero when whole is zero.
//
//	tipShare := money.Proportional(subtotal, billSubtotal, tip)
func Proportional(part, whole, amount decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(amount).Div(whole)
}

// Sum adds values. Sum() is zero.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Display rounds half away from zero to DisplayPlaces and formats with a fixed
// number of digits ("3.5" becomes "3.50").
func Display(d decimal.Decimal) string {
	return d.StringFixed(DisplayPlaces)
}

// RoundCents rounds d to DisplayPlaces.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(DisplayPlaces)
}

// Parse reads a decimal string such as "12.50".
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// IsPercentage reports whether 0 <= d <= 100.
func IsPercentage(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(hundred)
}
