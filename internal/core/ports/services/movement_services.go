package services

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	"github.com/smartstore/smartstore_backend/internal/dto"
)

// MovementSvcFacade defines the service surface for standalone receipts and payments.
type MovementSvcFacade interface {
	// CreateMovement records a receipt or payment against a party.
	CreateMovement(ctx context.Context, storeID string, kind domain.MovementKind, req dto.CreateMovementRequest, actor string) (*domain.MoneyMovement, error)

	// ListMovements retrieves a page of movements of one kind, newest first.
	ListMovements(ctx context.Context, storeID string, kind domain.MovementKind, limit int, nextToken *string) ([]domain.MoneyMovement, *string, error)

	// DeleteMovement removes a movement.
	DeleteMovement(ctx context.Context, storeID, movementID string, kind domain.MovementKind) error
}
