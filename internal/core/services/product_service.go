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

// productService implements the ProductSvcFacade interface.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct adds a product to the store's catalogue.
func (s *productService) CreateProduct(ctx context.Context, storeID string, req dto.CreateProductRequest, actor string) (*domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationFailedError("product name is required")
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:    uuid.NewString(),
		StoreID:      storeID,
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		Stock:        req.Stock,
		CostPrice:    req.CostPrice,
		SellPrice:    req.SellPrice,
		ReorderPoint: req.ReorderPoint,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product",
			slog.String("store_id", storeID),
			slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.LogInfo(ctx, "Product created",
		slog.String("store_id", storeID),
		slog.String("product_id", product.ProductID))
	return &product, nil
}

// GetProductByID retrieves a single product.
func (s *productService) GetProductByID(ctx context.Context, storeID, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts retrieves the full catalogue for a store.
func (s *productService) ListProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, storeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.String("store_id", storeID))
		return nil, err
	}
	return products, nil
}

// UpdateProduct applies a direct edit to a product. Stock set through here is
// a manual correction and bypasses the sale/purchase adjustment path.
func (s *productService) UpdateProduct(ctx context.Context, storeID, productID string, req dto.UpdateProductRequest, actor string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidationFailedError("product name cannot be empty")
		}
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.SellPrice != nil {
		product.SellPrice = *req.SellPrice
	}
	if req.ReorderPoint != nil {
		product.ReorderPoint = *req.ReorderPoint
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = actor

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product",
			slog.String("store_id", storeID),
			slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.LogInfo(ctx, "Product updated",
		slog.String("store_id", storeID),
		slog.String("product_id", productID))
	return product, nil
}

// DeleteProduct removes a product from the catalogue. Line snapshots on
// committed invoices keep the name, so history is unaffected.
func (s *productService) DeleteProduct(ctx context.Context, storeID, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, storeID, productID); err != nil {
		s.LogError(ctx, err, "Failed to delete product",
			slog.String("store_id", storeID),
			slog.String("product_id", productID))
		return err
	}
	s.LogInfo(ctx, "Product deleted",
		slog.String("store_id", storeID),
		slog.String("product_id", productID))
	return nil
}
