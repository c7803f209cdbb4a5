package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries behind the
// dashboard. All sums are computed in SQL; nothing here mutates state.
type ReportingRepository interface {
	// GetSalesTotalForDay sums sale totals whose invoice date falls on the given day.
	GetSalesTotalForDay(ctx context.Context, storeID string, day time.Time) (decimal.Decimal, error)

	// GetDailySalesTotals sums sale totals per day over [from, to), oldest first.
	GetDailySalesTotals(ctx context.Context, storeID string, from, to time.Time) ([]domain.DailySalesTotal, error)

	// CountProducts returns the number of products in a store.
	CountProducts(ctx context.Context, storeID string) (int, error)

	// ListLowStockProducts returns products at or below their reorder point.
	ListLowStockProducts(ctx context.Context, storeID string) ([]domain.Product, error)
}
