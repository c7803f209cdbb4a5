package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
)

const productColumns = `product_id, store_id, name, category, unit, stock, cost_price, sell_price, reorder_point, sold_today, created_at, created_by, last_updated_at, last_updated_by`

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product catalogue data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.CollectableRow) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ProductID,
		&p.StoreID,
		&p.Name,
		&p.Category,
		&p.Unit,
		&p.Stock,
		&p.CostPrice,
		&p.SellPrice,
		&p.ReorderPoint,
		&p.SoldToday,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.StoreID,
		product.Name,
		product.Category,
		product.Unit,
		product.Stock,
		product.CostPrice,
		product.SellPrice,
		product.ReorderPoint,
		product.SoldToday,
		product.CreatedAt,
		product.CreatedBy,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("product %s already exists", product.ProductID))
		}
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by ID within a store.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, storeID, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE store_id = $1 AND product_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, storeID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product %s: %w", productID, err)
	}
	product, err := pgx.CollectOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan product %s: %w", productID, err)
	}
	return &product, nil
}

// FindProductsByIDs retrieves multiple products keyed by product ID. Missing
// IDs are simply absent from the result map.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, storeID string, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE store_id = $1 AND product_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, storeID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to scan products by IDs: %w", err)
	}

	result := make(map[string]domain.Product, len(products))
	for _, p := range products {
		result[p.ProductID] = p
	}
	return result, nil
}

// ListProducts retrieves all products for a store, ordered by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE store_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

// UpdateProduct updates an existing product's editable fields.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products SET
			name = $3,
			category = $4,
			unit = $5,
			stock = $6,
			cost_price = $7,
			sell_price = $8,
			reorder_point = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE store_id = $1 AND product_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		product.StoreID,
		product.ProductID,
		product.Name,
		product.Category,
		product.Unit,
		product.Stock,
		product.CostPrice,
		product.SellPrice,
		product.ReorderPoint,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product. Transaction lines keep their snapshots.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, storeID, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE store_id = $1 AND product_id = $2;`, storeID, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
