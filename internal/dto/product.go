package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// CreateProductRequest defines data for adding a product to a store's catalogue.
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	Stock        decimal.Decimal `json:"stock"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellPrice    decimal.Decimal `json:"sellPrice"`
	ReorderPoint decimal.Decimal `json:"reorderPoint"`
}

// UpdateProductRequest defines data for editing a product. Stock edits here are
// direct corrections; transaction commits adjust stock separately.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Unit         *string          `json:"unit"`
	Stock        *decimal.Decimal `json:"stock"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	SellPrice    *decimal.Decimal `json:"sellPrice"`
	ReorderPoint *decimal.Decimal `json:"reorderPoint"`
}

// ProductResponse defines data returned for a product.
type ProductResponse struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	Stock        decimal.Decimal `json:"stock"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellPrice    decimal.Decimal `json:"sellPrice"`
	ReorderPoint decimal.Decimal `json:"reorderPoint"`
	SoldToday    decimal.Decimal `json:"soldToday"`
	LowStock     bool            `json:"lowStock"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Category:     p.Category,
		Unit:         p.Unit,
		Stock:        p.Stock,
		CostPrice:    p.CostPrice,
		SellPrice:    p.SellPrice,
		ReorderPoint: p.ReorderPoint,
		SoldToday:    p.SoldToday,
		LowStock:     p.IsLowStock(),
		CreatedAt:    p.CreatedAt,
	}
}

// ListProductsResponse wraps a list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToListProductsResponse converts a slice of domain.Product to the list DTO.
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	list := make([]ProductResponse, len(products))
	for i, p := range products {
		list[i] = ToProductResponse(&p)
	}
	return ListProductsResponse{Products: list}
}
