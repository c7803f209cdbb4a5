package repositories

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// StoreReader defines read operations against the tenant registry.
type StoreReader interface {
	// FindStoreByID retrieves a store record, including its password hash.
	FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error)

	// ListStores retrieves all registered stores.
	ListStores(ctx context.Context) ([]domain.Store, error)
}

// StoreWriter defines write operations against the tenant registry.
type StoreWriter interface {
	// SaveStore inserts a new store.
	SaveStore(ctx context.Context, store domain.Store) error

	// UpdateStore updates an existing store record.
	UpdateStore(ctx context.Context, store domain.Store) error

	// DeleteStore removes a store from the registry. Tenant data rows keyed
	// by the store ID are cascaded by the schema.
	DeleteStore(ctx context.Context, storeID string) error
}

// SettingsRepository defines per-tenant settings access.
type SettingsRepository interface {
	// GetSettings retrieves the settings row for a store, or ErrNotFound.
	GetSettings(ctx context.Context, storeID string) (*domain.StoreSettings, error)

	// SaveSettings upserts the settings row for a store.
	SaveSettings(ctx context.Context, settings domain.StoreSettings) error
}

// StoreRepositoryFacade combines all store registry repository interfaces.
type StoreRepositoryFacade interface {
	StoreReader
	StoreWriter
	SettingsRepository
}
