package services

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	"github.com/smartstore/smartstore_backend/internal/dto"
)

// StoreSvcFacade defines the tenant-registry administration surface.
type StoreSvcFacade interface {
	// RegisterStore creates a new tenant with generated credentials and
	// returns the plaintext password exactly once.
	RegisterStore(ctx context.Context, req dto.CreateStoreRequest, actor string) (*domain.Store, string, error)

	// GetStoreByID retrieves one store registration.
	GetStoreByID(ctx context.Context, storeID string) (*domain.Store, error)

	// ListStores retrieves all registered stores.
	ListStores(ctx context.Context) ([]domain.Store, error)

	// UpdateStore edits a registration; a supplied password rotates the credential.
	UpdateStore(ctx context.Context, storeID string, req dto.UpdateStoreRequest, actor string) (*domain.Store, error)

	// DeleteStore removes a tenant and its partitioned data.
	DeleteStore(ctx context.Context, storeID string) error
}

// SettingsSvcFacade defines the per-tenant profile surface.
type SettingsSvcFacade interface {
	// GetSettings retrieves a store's profile, falling back to the registry
	// record when the store has never saved settings.
	GetSettings(ctx context.Context, storeID string) (*domain.StoreSettings, error)

	// UpdateSettings upserts a store's profile.
	UpdateSettings(ctx context.Context, storeID string, req dto.UpdateSettingsRequest) (*domain.StoreSettings, error)
}
