package domain

import "github.com/shopspring/decimal"

// Product represents a stocked item belonging to a single store.
type Product struct {
	ProductID    string          `json:"productID"`    // Primary Key (UUID)
	StoreID      string          `json:"storeID"`      // Owning tenant
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`         // e.g. "kg", "pcs"
	Stock        decimal.Decimal `json:"stock"`        // On-hand quantity; clamped at zero on sale dispatch
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellPrice    decimal.Decimal `json:"sellPrice"`
	ReorderPoint decimal.Decimal `json:"reorderPoint"` // Low-stock threshold
	SoldToday    decimal.Decimal `json:"soldToday"`    // Advisory counter, not reset on day rollover
	AuditFields
}

// IsLowStock reports whether the product has fallen to or below its reorder point.
func (p Product) IsLowStock() bool {
	return p.Stock.LessThanOrEqual(p.ReorderPoint)
}
