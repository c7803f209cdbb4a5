package repositories

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// ProductReader defines read operations for product data. Every method is
// scoped to a single store; there are no cross-tenant reads.
type ProductReader interface {
	// FindProductByID retrieves a product by ID within a store.
	FindProductByID(ctx context.Context, storeID, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products keyed by product ID.
	// Missing IDs are simply absent from the result map.
	FindProductsByIDs(ctx context.Context, storeID string, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves all products for a store.
	ListProducts(ctx context.Context, storeID string) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data.
type ProductWriter interface {
	// SaveProduct inserts a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's editable fields.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product. Committed transactions keep their
	// line snapshots, so history survives the delete.
	DeleteProduct(ctx context.Context, storeID, productID string) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
