package services

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	"github.com/smartstore/smartstore_backend/internal/dto"
)

// SupplierSvcFacade defines the service surface for supplier master data.
type SupplierSvcFacade interface {
	// CreateSupplier adds a supplier.
	CreateSupplier(ctx context.Context, storeID string, req dto.CreateSupplierRequest, actor string) (*domain.Supplier, error)

	// ListSuppliers retrieves all suppliers for a store.
	ListSuppliers(ctx context.Context, storeID string) ([]domain.Supplier, error)

	// UpdateSupplier edits a supplier.
	UpdateSupplier(ctx context.Context, storeID, supplierID string, req dto.UpdateSupplierRequest, actor string) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier without touching purchase history.
	DeleteSupplier(ctx context.Context, storeID, supplierID string) error
}
