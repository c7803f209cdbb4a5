package repositories

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// MovementReader defines read operations for standalone receipts and payments.
type MovementReader interface {
	// ListMovements retrieves a paginated list of one kind of movement,
	// newest first, using token-based pagination.
	ListMovements(ctx context.Context, storeID string, kind domain.MovementKind, limit int, nextToken *string) ([]domain.MoneyMovement, *string, error)

	// ListAllMovements retrieves the full movement history of one kind for
	// the ledger fold.
	ListAllMovements(ctx context.Context, storeID string, kind domain.MovementKind) ([]domain.MoneyMovement, error)
}

// MovementWriter defines write operations for movements.
type MovementWriter interface {
	// SaveMovement inserts a new receipt or payment.
	SaveMovement(ctx context.Context, movement domain.MoneyMovement) error

	// DeleteMovement removes a movement.
	DeleteMovement(ctx context.Context, storeID, movementID string, kind domain.MovementKind) error
}

// MovementRepositoryFacade combines all movement repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
