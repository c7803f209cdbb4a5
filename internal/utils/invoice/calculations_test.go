package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	"github.com/smartstore/smartstore_backend/internal/utils/invoice"
)

func line(qty, price, discountPct, taxPct string) domain.LineItem {
	return domain.LineItem{
		Quantity:        decimal.RequireFromString(qty),
		UnitPrice:       decimal.RequireFromString(price),
		DiscountPercent: decimal.RequireFromString(discountPct),
		TaxPercent:      decimal.RequireFromString(taxPct),
	}
}

func TestComputeTotals_EmptyLines(t *testing.T) {
	totals := invoice.ComputeTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.DiscountTotal.IsZero())
	assert.True(t, totals.TaxTotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_TwoLines(t *testing.T) {
	// Line A: 2 x 100 with 10% discount and 5% tax -> amount 200, disc 20, tax 9.
	// Line B: 1 x 50 flat -> amount 50.
	lines := []domain.LineItem{
		line("2", "100", "10", "5"),
		line("1", "50", "0", "0"),
	}

	totals := invoice.ComputeTotals(lines)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal=%s", totals.Subtotal)
	assert.True(t, totals.DiscountTotal.Equal(decimal.NewFromInt(20)), "discount=%s", totals.DiscountTotal)
	assert.True(t, totals.TaxTotal.Equal(decimal.NewFromInt(9)), "tax=%s", totals.TaxTotal)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(239)), "total=%s", totals.Total)
}

func TestComputeTotals_Identity(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.LineItem
	}{
		{
			name:  "single plain line",
			lines: []domain.LineItem{line("3", "19.99", "0", "0")},
		},
		{
			name: "mixed discounts and taxes",
			lines: []domain.LineItem{
				line("2", "100", "10", "5"),
				line("5", "12.5", "25", "18"),
				line("1", "0.01", "100", "12"),
			},
		},
		{
			name: "fractional quantities",
			lines: []domain.LineItem{
				line("0.5", "250", "5", "5"),
				line("1.25", "80", "0", "12"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := invoice.ComputeTotals(tt.lines)

			// total == subtotal - discountTotal + taxTotal, always.
			expected := totals.Subtotal.Sub(totals.DiscountTotal).Add(totals.TaxTotal)
			assert.True(t, totals.Total.Equal(expected))

			// Non-negative inputs produce non-negative components.
			assert.False(t, totals.Subtotal.IsNegative())
			assert.False(t, totals.DiscountTotal.IsNegative())
			assert.False(t, totals.TaxTotal.IsNegative())
			assert.False(t, totals.Total.IsNegative())
		})
	}
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	a := line("2", "100", "10", "5")
	b := line("5", "12.5", "25", "18")
	c := line("1", "50", "0", "0")

	forward := invoice.ComputeTotals([]domain.LineItem{a, b, c})
	reverse := invoice.ComputeTotals([]domain.LineItem{c, b, a})

	assert.True(t, forward.Total.Equal(reverse.Total))
	assert.True(t, forward.Subtotal.Equal(reverse.Subtotal))
}

func TestComputeTotals_NegativeInputsFlowThrough(t *testing.T) {
	// Negative components are not rejected here; upstream validation owns that.
	totals := invoice.ComputeTotals([]domain.LineItem{line("-2", "100", "0", "0")})

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(-200)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(-200)))
}

func TestDerivePaymentStatus(t *testing.T) {
	total := decimal.NewFromInt(239)

	tests := []struct {
		name        string
		amountPaid  string
		wantStatus  domain.PaymentStatus
		wantBalance string
	}{
		{"paid in full", "239", domain.StatusPaid, "0"},
		{"overpaid", "300", domain.StatusPaid, "0"},
		{"partial", "100", domain.StatusPartial, "139"},
		{"nothing paid", "0", domain.StatusUnpaid, "239"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, balance := invoice.DerivePaymentStatus(total, decimal.RequireFromString(tt.amountPaid))

			assert.Equal(t, tt.wantStatus, status)
			assert.True(t, balance.Equal(decimal.RequireFromString(tt.wantBalance)), "balance=%s", balance)
		})
	}
}

func TestDerivePaymentStatus_BalanceNeverNegative(t *testing.T) {
	status, balance := invoice.DerivePaymentStatus(decimal.NewFromInt(50), decimal.NewFromInt(80))

	require.Equal(t, domain.StatusPaid, status)
	assert.True(t, balance.IsZero())
}

func TestDerivePaymentStatus_ZeroTotalNothingPaidStaysUnpaid(t *testing.T) {
	// A non-positive total with no payment stays UNPAID. Deliberate quirk,
	// kept for parity with the committed invoice history.
	status, balance := invoice.DerivePaymentStatus(decimal.Zero, decimal.Zero)

	assert.Equal(t, domain.StatusUnpaid, status)
	assert.True(t, balance.IsZero())
}
