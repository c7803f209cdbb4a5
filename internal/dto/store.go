package dto

import (
	"time"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// CreateStoreRequest defines data for registering a new store tenant.
// Login credentials are generated server-side and returned once.
type CreateStoreRequest struct {
	StoreName  string     `json:"storeName" binding:"required"`
	OwnerName  string     `json:"ownerName" binding:"required"`
	Mobile     string     `json:"mobile" binding:"required"`
	Email      string     `json:"email" binding:"omitempty,email"`
	Address    string     `json:"address"`
	PlanType   string     `json:"planType" binding:"omitempty,oneof=Monthly Yearly"`
	StartDate  *time.Time `json:"startDate"`
	ExpiryDate *time.Time `json:"expiryDate"`
}

// UpdateStoreRequest defines data for editing a store registration.
// A non-empty Password rotates the store's login credential.
type UpdateStoreRequest struct {
	StoreName  *string             `json:"storeName"`
	OwnerName  *string             `json:"ownerName"`
	Mobile     *string             `json:"mobile"`
	Email      *string             `json:"email" binding:"omitempty,email"`
	Address    *string             `json:"address"`
	PlanType   *string             `json:"planType" binding:"omitempty,oneof=Monthly Yearly"`
	StartDate  *time.Time          `json:"startDate"`
	ExpiryDate *time.Time          `json:"expiryDate"`
	Status     *domain.StoreStatus `json:"status" binding:"omitempty,oneof=active suspended"`
	Password   *string             `json:"password"`
}

// StoreResponse defines data returned for a store registration.
type StoreResponse struct {
	StoreID    string             `json:"storeID"`
	StoreName  string             `json:"storeName"`
	OwnerName  string             `json:"ownerName"`
	Mobile     string             `json:"mobile"`
	Email      string             `json:"email"`
	Address    string             `json:"address"`
	PlanType   string             `json:"planType"`
	StartDate  time.Time          `json:"startDate"`
	ExpiryDate time.Time          `json:"expiryDate"`
	Status     domain.StoreStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// CreateStoreResponse carries the registration plus the generated credentials.
// The plaintext password is only ever returned here.
type CreateStoreResponse struct {
	Store    StoreResponse `json:"store"`
	Password string        `json:"password"`
}

// ToStoreResponse converts a domain.Store to its response DTO.
func ToStoreResponse(s *domain.Store) StoreResponse {
	return StoreResponse{
		StoreID:    s.StoreID,
		StoreName:  s.StoreName,
		OwnerName:  s.OwnerName,
		Mobile:     s.Mobile,
		Email:      s.Email,
		Address:    s.Address,
		PlanType:   s.PlanType,
		StartDate:  s.StartDate,
		ExpiryDate: s.ExpiryDate,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
	}
}

// ListStoresResponse wraps the tenant registry listing.
type ListStoresResponse struct {
	Stores []StoreResponse `json:"stores"`
}

// ToListStoresResponse converts a slice of domain.Store to the list DTO.
func ToListStoresResponse(stores []domain.Store) ListStoresResponse {
	list := make([]StoreResponse, len(stores))
	for i, s := range stores {
		list[i] = ToStoreResponse(&s)
	}
	return ListStoresResponse{Stores: list}
}

// UpdateSettingsRequest defines the per-tenant profile fields.
type UpdateSettingsRequest struct {
	StoreName string `json:"storeName" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	GSTIN     string `json:"gstin"`
}

// SettingsResponse defines data returned for store settings.
type SettingsResponse struct {
	StoreName string `json:"storeName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	GSTIN     string `json:"gstin"`
}

// ToSettingsResponse converts domain.StoreSettings to its response DTO.
func ToSettingsResponse(s *domain.StoreSettings) SettingsResponse {
	return SettingsResponse{
		StoreName: s.StoreName,
		Address:   s.Address,
		Phone:     s.Phone,
		GSTIN:     s.GSTIN,
	}
}
