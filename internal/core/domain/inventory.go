package domain

import "github.com/shopspring/decimal"

// StockChange is one product-level stock mutation applied atomically with the
// transaction commit that caused it. Deletes never produce StockChanges; an
// invoice delete is not compensated.
type StockChange struct {
	ProductID      string
	QuantityDelta  decimal.Decimal // Positive for purchases, negative for sales
	SoldTodayDelta decimal.Decimal // Advisory sold counter increment, sales only
	ClampAtZero    bool            // Sale dispatch clamps stock at zero on write
}
