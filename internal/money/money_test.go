package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestShare(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		n      int
		want   decimal.Decimal
	}{
		{"even split", d("30.00"), 2, d("15")},
		{"single owner", d("12.34"), 1, d("12.34")},
		{"four ways", d("10"), 4, d("2.5")},
		{"no owners", d("10"), 0, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Share(tt.amount, tt.n)
			assert.True(t, tt.want.Equal(got), "Share(%s, %d) = %s, want %s", tt.amount, tt.n, got, tt.want)
		})
	}
}

func TestShare_ThirdsAreEqual(t *testing.T) {
	a := Share(d("10"), 3)
	b := Share(d("10"), 3)
	assert.True(t, a.Equal(b))
	// carried at division precision, not rounded to cents
	assert.True(t, a.GreaterThan(d("3.33")))
}

func TestPercent(t *testing.T) {
	assert.True(t, d("5").Equal(Percent(d("50"), d("10"))))
	assert.True(t, d("2.5").Equal(Percent(d("50"), d("5"))))
	assert.True(t, decimal.Zero.Equal(Percent(d("50"), decimal.Zero)))
}

func TestProportional(t *testing.T) {
	assert.True(t, d("14").Equal(Proportional(d("35"), d("50"), d("20"))))
	assert.True(t, d("3.5").Equal(Proportional(d("35"), d("50"), d("5"))))

	t.Run("zero whole yields zero", func(t *testing.T) {
		assert.True(t, decimal.Zero.Equal(Proportional(d("10"), decimal.Zero, d("20"))))
	})
}

func TestSum(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(Sum()))
	assert.True(t, d("77.5").Equal(Sum(d("50"), d("5"), d("2.5"), d("20"))))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "3.50", Display(d("3.5")))
	assert.Equal(t, "3.33", Display(Share(d("10"), 3)))
	assert.Equal(t, "0.01", Display(d("0.005")))
	assert.Equal(t, "0.00", Display(decimal.Zero))
}

func TestParse(t *testing.T) {
	got, err := Parse("12.50")
	require.NoError(t, err)
	assert.True(t, d("12.5").Equal(got))

	_, err = Parse("twelve")
	assert.Error(t, err)
}

func TestIsPercentage(t *testing.T) {
	assert.True(t, IsPercentage(decimal.Zero))
	assert.True(t, IsPercentage(d("100")))
	assert.True(t, IsPercentage(d("12.5")))
	assert.False(t, IsPercentage(d("100.01")))
	assert.False(t, IsPercentage(d("-1")))
}
