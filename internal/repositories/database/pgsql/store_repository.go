package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
)

const storeColumns = `store_id, password_hash, store_name, owner_name, mobile, email, address, plan_type, start_date, expiry_date, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxStoreRepository struct {
	BaseRepository
}

// newPgxStoreRepository creates a new repository for the tenant registry and settings.
func newPgxStoreRepository(pool *pgxpool.Pool) portsrepo.StoreRepositoryFacade {
	return &PgxStoreRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StoreRepositoryFacade = (*PgxStoreRepository)(nil)

func scanStore(row pgx.CollectableRow) (domain.Store, error) {
	var s domain.Store
	err := row.Scan(
		&s.StoreID,
		&s.PasswordHash,
		&s.StoreName,
		&s.OwnerName,
		&s.Mobile,
		&s.Email,
		&s.Address,
		&s.PlanType,
		&s.StartDate,
		&s.ExpiryDate,
		&s.Status,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// SaveStore inserts a new store registration.
func (r *PgxStoreRepository) SaveStore(ctx context.Context, store domain.Store) error {
	query := `
		INSERT INTO stores (` + storeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		store.StoreID,
		store.PasswordHash,
		store.StoreName,
		store.OwnerName,
		store.Mobile,
		store.Email,
		store.Address,
		store.PlanType,
		store.StartDate,
		store.ExpiryDate,
		store.Status,
		store.CreatedAt,
		store.CreatedBy,
		store.LastUpdatedAt,
		store.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("store %s already exists", store.StoreID))
		}
		return fmt.Errorf("failed to save store %s: %w", store.StoreID, err)
	}
	return nil
}

// FindStoreByID retrieves a store record including its password hash.
func (r *PgxStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+storeColumns+`
		FROM stores
		WHERE store_id = $1;
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query store %s: %w", storeID, err)
	}
	store, err := pgx.CollectOneRow(rows, scanStore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan store %s: %w", storeID, err)
	}
	return &store, nil
}

// ListStores retrieves all registered stores, newest first.
func (r *PgxStoreRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+storeColumns+`
		FROM stores
		ORDER BY created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	stores, err := pgx.CollectRows(rows, scanStore)
	if err != nil {
		return nil, fmt.Errorf("failed to scan stores: %w", err)
	}
	return stores, nil
}

// UpdateStore updates an existing store record.
func (r *PgxStoreRepository) UpdateStore(ctx context.Context, store domain.Store) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE stores SET
			password_hash = $2,
			store_name = $3,
			owner_name = $4,
			mobile = $5,
			email = $6,
			address = $7,
			plan_type = $8,
			start_date = $9,
			expiry_date = $10,
			status = $11,
			last_updated_at = $12,
			last_updated_by = $13
		WHERE store_id = $1;
	`,
		store.StoreID,
		store.PasswordHash,
		store.StoreName,
		store.OwnerName,
		store.Mobile,
		store.Email,
		store.Address,
		store.PlanType,
		store.StartDate,
		store.ExpiryDate,
		store.Status,
		store.LastUpdatedAt,
		store.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update store %s: %w", store.StoreID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteStore removes a store. The schema cascades the delete across every
// tenant-scoped table.
func (r *PgxStoreRepository) DeleteStore(ctx context.Context, storeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM stores WHERE store_id = $1;`, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete store %s: %w", storeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetSettings retrieves the settings row for a store.
func (r *PgxStoreRepository) GetSettings(ctx context.Context, storeID string) (*domain.StoreSettings, error) {
	var s domain.StoreSettings
	err := r.Pool.QueryRow(ctx, `
		SELECT store_id, store_name, address, phone, gstin
		FROM store_settings
		WHERE store_id = $1;
	`, storeID).Scan(&s.StoreID, &s.StoreName, &s.Address, &s.Phone, &s.GSTIN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query settings for store %s: %w", storeID, err)
	}
	return &s, nil
}

// SaveSettings upserts the settings row for a store.
func (r *PgxStoreRepository) SaveSettings(ctx context.Context, settings domain.StoreSettings) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO store_settings (store_id, store_name, address, phone, gstin)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (store_id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			gstin = EXCLUDED.gstin;
	`,
		settings.StoreID,
		settings.StoreName,
		settings.Address,
		settings.Phone,
		settings.GSTIN,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for store %s: %w", settings.StoreID, err)
	}
	return nil
}
