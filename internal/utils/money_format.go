package utils

import (
	"github.com/shopspring/decimal"
)

// displayPrecision is the number of decimal places shown to users. Stored
// amounts keep full precision; rounding happens only at display time.
const displayPrecision = 2

// FormatAmount formats an amount for display with two decimal places.
// Example: 12.3456 returns "12.35".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(displayPrecision)
}

// FormatWithPrecision formats an amount with the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
