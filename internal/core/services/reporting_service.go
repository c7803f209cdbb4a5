package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
)

// Days of sales history folded into the dashboard trend.
const salesTrendDays = 7

// reportingService implements the ReportingSvcFacade interface.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	now           func() time.Time
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DashboardSummary assembles today's sales total, catalogue size, low-stock
// products and the seven-day sales trend.
func (s *reportingService) DashboardSummary(ctx context.Context, storeID string) (*domain.DashboardSummary, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	todaysTotal, err := s.reportingRepo.GetSalesTotalForDay(ctx, storeID, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum today's sales", slog.String("store_id", storeID))
		return nil, err
	}

	productCount, err := s.reportingRepo.CountProducts(ctx, storeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count products", slog.String("store_id", storeID))
		return nil, err
	}

	lowStock, err := s.reportingRepo.ListLowStockProducts(ctx, storeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list low-stock products", slog.String("store_id", storeID))
		return nil, err
	}

	from := today.AddDate(0, 0, -(salesTrendDays - 1))
	trend, err := s.reportingRepo.GetDailySalesTotals(ctx, storeID, from, today.AddDate(0, 0, 1))
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales trend", slog.String("store_id", storeID))
		return nil, err
	}

	return &domain.DashboardSummary{
		TodaysSalesTotal: todaysTotal,
		ProductCount:     productCount,
		LowStockProducts: lowStock,
		SalesTrend:       trend,
	}, nil
}
