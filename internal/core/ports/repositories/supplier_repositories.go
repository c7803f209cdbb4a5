package repositories

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// SupplierRepositoryFacade defines the repository surface for supplier master data.
type SupplierRepositoryFacade interface {
	// SaveSupplier inserts a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// FindSupplierByID retrieves a supplier by ID within a store.
	FindSupplierByID(ctx context.Context, storeID, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves all suppliers for a store.
	ListSuppliers(ctx context.Context, storeID string) ([]domain.Supplier, error)

	// UpdateSupplier updates an existing supplier.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error

	// DeleteSupplier removes a supplier. Purchase history references suppliers
	// by name only and is untouched.
	DeleteSupplier(ctx context.Context, storeID, supplierID string) error
}
