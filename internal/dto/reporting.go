package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// DailySalesTotalResponse is one day's summed sale totals.
type DailySalesTotalResponse struct {
	Day   time.Time       `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// DashboardSummaryResponse carries the store dashboard headline numbers.
type DashboardSummaryResponse struct {
	TodaysSalesTotal decimal.Decimal           `json:"todaysSalesTotal"`
	ProductCount     int                       `json:"productCount"`
	LowStockProducts []ProductResponse         `json:"lowStockProducts"`
	SalesTrend       []DailySalesTotalResponse `json:"salesTrend"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its response DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	lowStock := make([]ProductResponse, len(s.LowStockProducts))
	for i, p := range s.LowStockProducts {
		lowStock[i] = ToProductResponse(&p)
	}
	trend := make([]DailySalesTotalResponse, len(s.SalesTrend))
	for i, d := range s.SalesTrend {
		trend[i] = DailySalesTotalResponse{Day: d.Day, Total: d.Total}
	}
	return DashboardSummaryResponse{
		TodaysSalesTotal: s.TodaysSalesTotal,
		ProductCount:     s.ProductCount,
		LowStockProducts: lowStock,
		SalesTrend:       trend,
	}
}
