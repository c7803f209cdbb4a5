package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Totals holds the derived money components of an invoice.
type Totals struct {
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
}

// LineAmounts returns the raw amount, discount and tax for a single line.
// Discount applies to the line amount; tax applies to the post-discount amount.
func LineAmounts(line domain.LineItem) (amount, discount, tax decimal.Decimal) {
	amount = line.Quantity.Mul(line.UnitPrice)
	discount = amount.Mul(line.DiscountPercent).Div(oneHundred)
	tax = amount.Sub(discount).Mul(line.TaxPercent).Div(oneHundred)
	return amount, discount, tax
}

// LineTotal returns amount - discount + tax for a single line.
func LineTotal(line domain.LineItem) decimal.Decimal {
	amount, discount, tax := LineAmounts(line)
	return amount.Sub(discount).Add(tax)
}

// ComputeTotals folds the lines in input order into invoice totals.
// Tax is computed per line on the post-discount amount and then summed, not
// applied to the aggregate subtotal. Negative quantities or prices are not
// rejected here; callers validate non-negativity upstream.
func ComputeTotals(lines []domain.LineItem) Totals {
	t := Totals{
		Subtotal:      decimal.Zero,
		DiscountTotal: decimal.Zero,
		TaxTotal:      decimal.Zero,
		Total:         decimal.Zero,
	}
	for _, line := range lines {
		amount, discount, tax := LineAmounts(line)
		t.Subtotal = t.Subtotal.Add(amount)
		t.DiscountTotal = t.DiscountTotal.Add(discount)
		t.TaxTotal = t.TaxTotal.Add(tax)
	}
	t.Total = t.Subtotal.Sub(t.DiscountTotal).Add(t.TaxTotal)
	return t
}

// DerivePaymentStatus maps an invoice total and the amount paid onto the
// payment status and the outstanding balance. The balance is clamped at zero.
// A non-positive total with nothing paid stays UNPAID; that quirk is part of
// the contract and must not be "fixed" here.
func DerivePaymentStatus(total, amountPaid decimal.Decimal) (domain.PaymentStatus, decimal.Decimal) {
	balanceDue := total.Sub(amountPaid)
	if balanceDue.IsNegative() {
		balanceDue = decimal.Zero
	}

	switch {
	case amountPaid.GreaterThanOrEqual(total) && amountPaid.IsPositive():
		return domain.StatusPaid, balanceDue
	case amountPaid.IsPositive():
		return domain.StatusPartial, balanceDue
	default:
		return domain.StatusUnpaid, balanceDue
	}
}
