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

const supplierColumns = `supplier_id, store_id, name, mobile, address, created_at, created_by, last_updated_at, last_updated_by`

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier master data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func scanSupplier(row pgx.CollectableRow) (domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.StoreID,
		&s.Name,
		&s.Mobile,
		&s.Address,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// SaveSupplier inserts a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.StoreID,
		supplier.Name,
		supplier.Mobile,
		supplier.Address,
		supplier.CreatedAt,
		supplier.CreatedBy,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("supplier %s already exists", supplier.SupplierID))
		}
		return fmt.Errorf("failed to save supplier %s: %w", supplier.SupplierID, err)
	}
	return nil
}

// FindSupplierByID retrieves a supplier by ID within a store.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, storeID, supplierID string) (*domain.Supplier, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		WHERE store_id = $1 AND supplier_id = $2;
	`, storeID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier %s: %w", supplierID, err)
	}
	supplier, err := pgx.CollectOneRow(rows, scanSupplier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan supplier %s: %w", supplierID, err)
	}
	return &supplier, nil
}

// ListSuppliers retrieves all suppliers for a store, ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, storeID string) ([]domain.Supplier, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		WHERE store_id = $1
		ORDER BY name;
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	suppliers, err := pgx.CollectRows(rows, scanSupplier)
	if err != nil {
		return nil, fmt.Errorf("failed to scan suppliers: %w", err)
	}
	return suppliers, nil
}

// UpdateSupplier updates an existing supplier.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE suppliers SET
			name = $3,
			mobile = $4,
			address = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE store_id = $1 AND supplier_id = $2;
	`,
		supplier.StoreID,
		supplier.SupplierID,
		supplier.Name,
		supplier.Mobile,
		supplier.Address,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", supplier.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSupplier removes a supplier.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, storeID, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE store_id = $1 AND supplier_id = $2;`, storeID, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
