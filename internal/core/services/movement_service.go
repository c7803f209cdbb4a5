package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
	"github.com/smartstore/smartstore_backend/internal/utils"
)

// movementService implements the MovementSvcFacade interface.
type movementService struct {
	BaseService
	movementRepo portsrepo.MovementRepositoryFacade
	now          func() time.Time
}

// MovementServiceOption is a functional option for configuring the movement service.
type MovementServiceOption func(*movementService)

// WithMovementClock overrides the time source, used by tests to pin movement IDs.
func WithMovementClock(now func() time.Time) MovementServiceOption {
	return func(s *movementService) {
		s.now = now
	}
}

// NewMovementService creates a new movement service.
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, options ...MovementServiceOption) portssvc.MovementSvcFacade {
	svc := &movementService{
		movementRepo: movementRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// MovementID builds the identifier for a movement created at the given
// instant: the kind prefix plus the Unix timestamp in milliseconds.
func MovementID(kind domain.MovementKind, at time.Time) string {
	return fmt.Sprintf("%s-%d", kind.IDPrefix(), at.UnixMilli())
}

// CreateMovement records a receipt or payment against a party.
func (s *movementService) CreateMovement(ctx context.Context, storeID string, kind domain.MovementKind, req dto.CreateMovementRequest, actor string) (*domain.MoneyMovement, error) {
	if strings.TrimSpace(req.PartyName) == "" {
		return nil, apperrors.NewValidationFailedError("party name is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("amount must be positive")
	}

	now := s.now().UTC()
	movement := domain.MoneyMovement{
		MovementID: MovementID(kind, now),
		StoreID:    storeID,
		Kind:       kind,
		PartyName:  req.PartyName,
		Amount:     req.Amount,
		Date:       dateOrNow(req.Date, now),
		Mode:       paymentModeOrDefault(req.Mode),
		Note:       req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		s.LogError(ctx, err, "Failed to save movement",
			slog.String("store_id", storeID),
			slog.String("movement_id", movement.MovementID))
		return nil, fmt.Errorf("failed to save movement: %w", err)
	}

	s.LogInfo(ctx, "Movement recorded",
		slog.String("store_id", storeID),
		slog.String("movement_id", movement.MovementID),
		slog.String("kind", string(kind)),
		slog.String("amount", utils.FormatAmount(movement.Amount)))
	return &movement, nil
}

// ListMovements retrieves a page of movements of one kind, newest first.
func (s *movementService) ListMovements(ctx context.Context, storeID string, kind domain.MovementKind, limit int, nextToken *string) ([]domain.MoneyMovement, *string, error) {
	if limit <= 0 {
		limit = 25
	}
	movements, token, err := s.movementRepo.ListMovements(ctx, storeID, kind, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements",
			slog.String("store_id", storeID),
			slog.String("kind", string(kind)))
		return nil, nil, err
	}
	return movements, token, nil
}

// DeleteMovement removes a movement. The party's ledger balance shifts
// accordingly on the next fold; nothing else is touched.
func (s *movementService) DeleteMovement(ctx context.Context, storeID, movementID string, kind domain.MovementKind) error {
	if err := s.movementRepo.DeleteMovement(ctx, storeID, movementID, kind); err != nil {
		s.LogError(ctx, err, "Failed to delete movement",
			slog.String("store_id", storeID),
			slog.String("movement_id", movementID))
		return err
	}
	s.LogInfo(ctx, "Movement deleted",
		slog.String("store_id", storeID),
		slog.String("movement_id", movementID))
	return nil
}
