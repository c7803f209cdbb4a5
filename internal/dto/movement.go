package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// CreateMovementRequest defines data for recording a standalone receipt or
// payment. The kind comes from the route.
type CreateMovementRequest struct {
	PartyName string          `json:"partyName" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      *time.Time      `json:"date"`
	Mode      string          `json:"mode"`
	Note      string          `json:"note"`
}

// MovementResponse defines data returned for a movement.
type MovementResponse struct {
	MovementID string          `json:"movementID"`
	Kind       string          `json:"kind"`
	PartyName  string          `json:"partyName"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Mode       string          `json:"mode"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToMovementResponse converts a domain.MoneyMovement to its response DTO.
func ToMovementResponse(m *domain.MoneyMovement) MovementResponse {
	return MovementResponse{
		MovementID: m.MovementID,
		Kind:       string(m.Kind),
		PartyName:  m.PartyName,
		Amount:     m.Amount,
		Date:       m.Date,
		Mode:       m.Mode,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

// ListMovementsResponse wraps a page of movements with the next cursor.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToListMovementsResponse converts a page of domain movements to the list DTO.
func ToListMovementsResponse(movements []domain.MoneyMovement, nextToken *string) ListMovementsResponse {
	list := make([]MovementResponse, len(movements))
	for i, m := range movements {
		list[i] = ToMovementResponse(&m)
	}
	return ListMovementsResponse{Movements: list, NextToken: nextToken}
}
