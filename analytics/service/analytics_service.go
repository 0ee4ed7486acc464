package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	analyticspkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/analytics"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

type analyticsService struct {
	repo analyticspkg.Repository
	// now is swappable so tests can pin the window edge.
	now func() time.Time
}

// NewAnalyticsService constructs a Service backed by the provided repository.
func NewAnalyticsService(repo analyticspkg.Repository) analyticspkg.Service {
	return &analyticsService{repo: repo, now: time.Now}
}

// NewAnalyticsServiceAt is NewAnalyticsService with an injected clock.
func NewAnalyticsServiceAt(repo analyticspkg.Repository, now func() time.Time) analyticspkg.Service {
	return &analyticsService{repo: repo, now: now}
}

// normalizeWindow clamps the caller-specified window to a supported value.
func normalizeWindow(days int) int {
	switch days {
	case analyticspkg.Window7, analyticspkg.Window30, analyticspkg.Window90:
		return days
	}
	return analyticspkg.Window30
}

// windowStart is midnight UTC of the first day in the window, so a 30-day
// window covers today plus the 29 preceding calendar days.
func (s *analyticsService) windowStart(days int) time.Time {
	today := s.now().UTC().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, -(days - 1))
}

func (s *analyticsService) Overview(ctx context.Context, windowDays int) (*analyticspkg.Overview, error) {
	windowDays = normalizeWindow(windowDays)

	ov := &analyticspkg.Overview{}
	var err error
	if ov.VendorCount, err = s.repo.CountVendors(ctx); err != nil {
		return nil, err
	}
	if ov.ActiveVendorCount, err = s.repo.CountActiveVendors(ctx); err != nil {
		return nil, err
	}
	if ov.CustomerCount, err = s.repo.CountCustomers(ctx); err != nil {
		return nil, err
	}
	if ov.OrderCount, err = s.repo.CountOrders(ctx); err != nil {
		return nil, err
	}

	orders, err := s.repo.ListAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	start := s.windowStart(windowDays)
	var revenueOrders int64
	for _, o := range orders {
		if !o.Status.RevenueBearing() {
			continue
		}
		ov.TotalRevenueCents += o.TotalCents
		revenueOrders++
		if !o.CreatedAt.UTC().Before(start) {
			ov.WindowRevenueCents += o.TotalCents
		}
	}
	if revenueOrders > 0 {
		ov.AvgOrderValueCents = ov.TotalRevenueCents / revenueOrders
	}
	return ov, nil
}

func (s *analyticsService) RevenueSeries(ctx context.Context, windowDays int) ([]analyticspkg.DayPoint, error) {
	windowDays = normalizeWindow(windowDays)
	start := s.windowStart(windowDays)

	orders, err := s.repo.ListOrdersSince(ctx, start)
	if err != nil {
		return nil, err
	}

	revenue := make(map[string]int64, windowDays)
	counts := make(map[string]int64, windowDays)
	for _, o := range orders {
		day := o.CreatedAt.UTC().Format("2006-01-02")
		counts[day]++
		if o.Status.RevenueBearing() {
			revenue[day] += o.TotalCents
		}
	}

	// Emit every day in the window, ascending, zero-filled.
	series := make([]analyticspkg.DayPoint, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, analyticspkg.DayPoint{
			Date:         day,
			RevenueCents: revenue[day],
			OrderCount:   counts[day],
		})
	}
	return series, nil
}

func (s *analyticsService) StatusBreakdown(ctx context.Context) ([]analyticspkg.StatusCount, error) {
	orders, err := s.repo.ListAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[entity.OrderStatus]int64)
	for _, o := range orders {
		counts[o.Status]++
	}
	all := []entity.OrderStatus{
		entity.OrderPending, entity.OrderConfirmed, entity.OrderPreparing,
		entity.OrderReady, entity.OrderPickedUp, entity.OrderDelivered,
		entity.OrderCompleted, entity.OrderCancelled,
	}
	out := make([]analyticspkg.StatusCount, 0, len(all))
	for _, st := range all {
		out = append(out, analyticspkg.StatusCount{Status: st, Count: counts[st]})
	}
	return out, nil
}

func (s *analyticsService) DayOfWeekBreakdown(ctx context.Context, windowDays int) ([]analyticspkg.DayOfWeekCount, error) {
	windowDays = normalizeWindow(windowDays)
	orders, err := s.repo.ListOrdersSince(ctx, s.windowStart(windowDays))
	if err != nil {
		return nil, err
	}
	var buckets [7]int64
	for _, o := range orders {
		buckets[int(o.CreatedAt.UTC().Weekday())]++ // Sunday = 0
	}
	out := make([]analyticspkg.DayOfWeekCount, 7)
	for i := range buckets {
		out[i] = analyticspkg.DayOfWeekCount{Day: i, Count: buckets[i]}
	}
	return out, nil
}

func (s *analyticsService) TopVendors(ctx context.Context, windowDays int) ([]analyticspkg.VendorRevenue, error) {
	windowDays = normalizeWindow(windowDays)
	orders, err := s.repo.ListOrdersSince(ctx, s.windowStart(windowDays))
	if err != nil {
		return nil, err
	}

	revenue := make(map[uuid.UUID]int64)
	counts := make(map[uuid.UUID]int64)
	for _, o := range orders {
		if !o.Status.RevenueBearing() {
			continue
		}
		revenue[o.VendorID] += o.TotalCents
		counts[o.VendorID]++
	}

	ids := make([]uuid.UUID, 0, len(revenue))
	for id := range revenue {
		ids = append(ids, id)
	}
	names, err := s.repo.VendorNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]analyticspkg.VendorRevenue, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, analyticspkg.VendorRevenue{
			VendorID:     id.String(),
			Name:         names[id],
			RevenueCents: revenue[id],
			OrderCount:   counts[id],
		})
	}
	// Descending by revenue; equal revenues ordered by vendor id so the
	// ranking is stable across runs.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RevenueCents != rows[j].RevenueCents {
			return rows[i].RevenueCents > rows[j].RevenueCents
		}
		return rows[i].VendorID < rows[j].VendorID
	})
	if len(rows) > 10 {
		rows = rows[:10]
	}
	return rows, nil
}
