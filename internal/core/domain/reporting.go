package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesTotal is one day's summed sale totals, used by the sales trend chart.
type DailySalesTotal struct {
	Day   time.Time       `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// DashboardSummary aggregates the headline numbers for a store's dashboard.
type DashboardSummary struct {
	TodaysSalesTotal decimal.Decimal   `json:"todaysSalesTotal"`
	ProductCount     int               `json:"productCount"`
	LowStockProducts []Product         `json:"lowStockProducts"` // stock <= reorder point
	SalesTrend       []DailySalesTotal `json:"salesTrend"`       // last seven days, oldest first
}
