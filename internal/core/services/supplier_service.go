package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
)

// supplierService implements the SupplierSvcFacade interface.
type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

// CreateSupplier adds a supplier.
func (s *supplierService) CreateSupplier(ctx context.Context, storeID string, req dto.CreateSupplierRequest, actor string) (*domain.Supplier, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationFailedError("supplier name is required")
	}

	now := time.Now().UTC()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		StoreID:    storeID,
		Name:       req.Name,
		Mobile:     req.Mobile,
		Address:    req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier",
			slog.String("store_id", storeID),
			slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier created",
		slog.String("store_id", storeID),
		slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

// ListSuppliers retrieves all suppliers for a store.
func (s *supplierService) ListSuppliers(ctx context.Context, storeID string) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, storeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers", slog.String("store_id", storeID))
		return nil, err
	}
	return suppliers, nil
}

// UpdateSupplier edits a supplier.
func (s *supplierService) UpdateSupplier(ctx context.Context, storeID, supplierID string, req dto.UpdateSupplierRequest, actor string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, storeID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidationFailedError("supplier name cannot be empty")
		}
		supplier.Name = *req.Name
	}
	if req.Mobile != nil {
		supplier.Mobile = *req.Mobile
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	supplier.LastUpdatedAt = time.Now().UTC()
	supplier.LastUpdatedBy = actor

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier",
			slog.String("store_id", storeID),
			slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier updated",
		slog.String("store_id", storeID),
		slog.String("supplier_id", supplierID))
	return supplier, nil
}

// DeleteSupplier removes a supplier. Purchase invoices reference suppliers by
// name only, so history is untouched.
func (s *supplierService) DeleteSupplier(ctx context.Context, storeID, supplierID string) error {
	if err := s.supplierRepo.DeleteSupplier(ctx, storeID, supplierID); err != nil {
		s.LogError(ctx, err, "Failed to delete supplier",
			slog.String("store_id", storeID),
			slog.String("supplier_id", supplierID))
		return err
	}
	s.LogInfo(ctx, "Supplier deleted",
		slog.String("store_id", storeID),
		slog.String("supplier_id", supplierID))
	return nil
}
