package analytics

import (
	"context"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// Windows accepted by the analytics endpoints, in days.
const (
	Window7  = 7
	Window30 = 30
	Window90 = 90
)

// Overview is the platform KPI block.
type Overview struct {
	VendorCount        int64 `json:"vendor_count"`
	ActiveVendorCount  int64 `json:"active_vendor_count"`
	CustomerCount      int64 `json:"customer_count"`
	OrderCount         int64 `json:"order_count"`
	TotalRevenueCents  int64 `json:"total_revenue_cents"`
	WindowRevenueCents int64 `json:"window_revenue_cents"`
	AvgOrderValueCents int64 `json:"avg_order_value_cents"`
}

// DayPoint is one calendar-day bucket of the revenue/order series.
type DayPoint struct {
	Date         string `json:"date"` // UTC YYYY-MM-DD
	RevenueCents int64  `json:"revenue_cents"`
	OrderCount   int64  `json:"order_count"`
}

// StatusCount is the all-time order count for one status.
type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

// DayOfWeekCount buckets windowed orders by weekday, Sunday-first.
type DayOfWeekCount struct {
	Day   int   `json:"day"` // 0 = Sunday
	Count int64 `json:"count"`
}

// VendorRevenue is one row of the top-vendors ranking.
type VendorRevenue struct {
	VendorID     string `json:"vendor_id"`
	Name         string `json:"name"`
	RevenueCents int64  `json:"revenue_cents"`
	OrderCount   int64  `json:"order_count"`
}

// Service computes read-only rollups over the order collection. Every call
// recomputes from raw rows; nothing is cached.
type Service interface {
	Overview(ctx context.Context, windowDays int) (*Overview, error)
	// RevenueSeries returns one point per calendar day across the window,
	// ascending, with zero buckets for empty days.
	RevenueSeries(ctx context.Context, windowDays int) ([]DayPoint, error)
	// StatusBreakdown counts orders by status across all time.
	StatusBreakdown(ctx context.Context) ([]StatusCount, error)
	DayOfWeekBreakdown(ctx context.Context, windowDays int) ([]DayOfWeekCount, error)
	// TopVendors ranks the top 10 vendors by windowed revenue, descending,
	// ties broken by ascending vendor id.
	TopVendors(ctx context.Context, windowDays int) ([]VendorRevenue, error)
}
