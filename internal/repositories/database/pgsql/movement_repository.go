package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	"github.com/smartstore/smartstore_backend/internal/utils/pagination"
)

const movementColumns = `movement_id, store_id, kind, party_name, amount, date, mode, note, created_at, created_by, last_updated_at, last_updated_by`

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for receipts and payments.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

func scanMovement(row pgx.CollectableRow) (domain.MoneyMovement, error) {
	var m domain.MoneyMovement
	err := row.Scan(
		&m.MovementID,
		&m.StoreID,
		&m.Kind,
		&m.PartyName,
		&m.Amount,
		&m.Date,
		&m.Mode,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveMovement inserts a new receipt or payment.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.MoneyMovement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		movement.MovementID,
		movement.StoreID,
		movement.Kind,
		movement.PartyName,
		movement.Amount,
		movement.Date,
		movement.Mode,
		movement.Note,
		movement.CreatedAt,
		movement.CreatedBy,
		movement.LastUpdatedAt,
		movement.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("movement %s already exists", movement.MovementID))
		}
		return fmt.Errorf("failed to save movement %s: %w", movement.MovementID, err)
	}
	return nil
}

// ListMovements retrieves a page of one kind of movement, newest first, using
// a created_at cursor.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, storeID string, kind domain.MovementKind, limit int, nextToken *string) ([]domain.MoneyMovement, *string, error) {
	args := []any{storeID, kind}
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE store_id = $1 AND kind = $2`

	if nextToken != nil {
		lastCreated, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError(err.Error())
		}
		query += ` AND created_at < $3`
		args = append(args, lastCreated)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query movements: %w", err)
	}
	movements, err := pgx.CollectRows(rows, scanMovement)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan movements: %w", err)
	}

	var token *string
	if len(movements) > limit {
		movements = movements[:limit]
		t := pagination.EncodeDateBasedToken(movements[len(movements)-1].CreatedAt)
		token = &t
	}
	return movements, token, nil
}

// ListAllMovements retrieves the full movement history of one kind for the
// ledger fold.
func (r *PgxMovementRepository) ListAllMovements(ctx context.Context, storeID string, kind domain.MovementKind) ([]domain.MoneyMovement, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		WHERE store_id = $1 AND kind = $2
		ORDER BY created_at DESC;
	`, storeID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query all movements: %w", err)
	}
	movements, err := pgx.CollectRows(rows, scanMovement)
	if err != nil {
		return nil, fmt.Errorf("failed to scan all movements: %w", err)
	}
	return movements, nil
}

// DeleteMovement removes a movement.
func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, storeID, movementID string, kind domain.MovementKind) error {
	tag, err := r.Pool.Exec(ctx, `
		DELETE FROM movements
		WHERE store_id = $1 AND movement_id = $2 AND kind = $3;
	`, storeID, movementID, kind)
	if err != nil {
		return fmt.Errorf("failed to delete movement %s: %w", movementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
