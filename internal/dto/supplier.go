package dto

import (
	"time"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// CreateSupplierRequest defines data for adding a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
}

// UpdateSupplierRequest defines data for editing a supplier.
type UpdateSupplierRequest struct {
	Name    *string `json:"name"`
	Mobile  *string `json:"mobile"`
	Address *string `json:"address"`
}

// SupplierResponse defines data returned for a supplier.
type SupplierResponse struct {
	SupplierID string    `json:"supplierID"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Mobile:     s.Mobile,
		Address:    s.Address,
		CreatedAt:  s.CreatedAt,
	}
}

// ListSuppliersResponse wraps a list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToListSuppliersResponse converts a slice of domain.Supplier to the list DTO.
func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	list := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		list[i] = ToSupplierResponse(&s)
	}
	return ListSuppliersResponse{Suppliers: list}
}
