package services

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// ReportingSvcFacade defines read-only dashboard reporting.
type ReportingSvcFacade interface {
	// DashboardSummary assembles today's sales total, catalogue size,
	// low-stock products and the seven-day sales trend.
	DashboardSummary(ctx context.Context, storeID string) (*domain.DashboardSummary, error)
}
