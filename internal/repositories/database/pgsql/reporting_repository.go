package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates the read-only dashboard query repository.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetSalesTotalForDay sums sale totals whose invoice date falls on the given day.
func (r *PgxReportingRepository) GetSalesTotalForDay(ctx context.Context, storeID string, day time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM transactions
		WHERE store_id = $1 AND kind = $2
		  AND date >= $3 AND date < $4;
	`, storeID, domain.KindSale, day, day.AddDate(0, 0, 1)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum sales for day: %w", err)
	}
	return total, nil
}

// GetDailySalesTotals sums sale totals per day over [from, to), oldest first.
// Days with no sales are absent from the result.
func (r *PgxReportingRepository) GetDailySalesTotals(ctx context.Context, storeID string, from, to time.Time) ([]domain.DailySalesTotal, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT date_trunc('day', date) AS day, SUM(total)
		FROM transactions
		WHERE store_id = $1 AND kind = $2
		  AND date >= $3 AND date < $4
		GROUP BY day
		ORDER BY day;
	`, storeID, domain.KindSale, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily sales totals: %w", err)
	}
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailySalesTotal, error) {
		var t domain.DailySalesTotal
		err := row.Scan(&t.Day, &t.Total)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily sales totals: %w", err)
	}
	return totals, nil
}

// CountProducts returns the number of products in a store.
func (r *PgxReportingRepository) CountProducts(ctx context.Context, storeID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE store_id = $1;`, storeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// ListLowStockProducts returns products at or below their reorder point,
// lowest stock first.
func (r *PgxReportingRepository) ListLowStockProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE store_id = $1 AND stock <= reorder_point
		ORDER BY stock;
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query low-stock products: %w", err)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to scan low-stock products: %w", err)
	}
	return products, nil
}
