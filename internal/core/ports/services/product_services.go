package services

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	"github.com/smartstore/smartstore_backend/internal/dto"
)

// ProductSvcFacade defines the service surface for catalogue management.
type ProductSvcFacade interface {
	// CreateProduct adds a product to the store's catalogue.
	CreateProduct(ctx context.Context, storeID string, req dto.CreateProductRequest, actor string) (*domain.Product, error)

	// GetProductByID retrieves a single product.
	GetProductByID(ctx context.Context, storeID, productID string) (*domain.Product, error)

	// ListProducts retrieves the full catalogue for a store.
	ListProducts(ctx context.Context, storeID string) ([]domain.Product, error)

	// UpdateProduct applies a direct edit to a product.
	UpdateProduct(ctx context.Context, storeID, productID string, req dto.UpdateProductRequest, actor string) (*domain.Product, error)

	// DeleteProduct removes a product from the catalogue.
	DeleteProduct(ctx context.Context, storeID, productID string) error
}
