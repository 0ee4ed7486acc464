package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// fakeAnalyticsRepo serves canned orders; counts are derived from them.
type fakeAnalyticsRepo struct {
	orders []entity.Order
	names  map[uuid.UUID]string
}

func (f *fakeAnalyticsRepo) CountVendors(context.Context) (int64, error) {
	return int64(len(f.names)), nil
}

func (f *fakeAnalyticsRepo) CountActiveVendors(context.Context) (int64, error) {
	return int64(len(f.names)), nil
}

func (f *fakeAnalyticsRepo) CountCustomers(context.Context) (int64, error) { return 0, nil }

func (f *fakeAnalyticsRepo) CountOrders(context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeAnalyticsRepo) ListAllOrders(context.Context) ([]entity.Order, error) {
	return f.orders, nil
}

func (f *fakeAnalyticsRepo) ListOrdersSince(_ context.Context, since time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if !o.CreatedAt.UTC().Before(since) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) VendorNames(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	for _, id := range ids {
		out[id] = f.names[id]
	}
	return out, nil
}

// pinned is the fixed "now" for every test: a Thursday.
var pinned = time.Date(2025, 3, 6, 15, 30, 0, 0, time.UTC)

func at(daysAgo int) time.Time { return pinned.AddDate(0, 0, -daysAgo) }

func order(vendorID uuid.UUID, status entity.OrderStatus, totalCents int64, created time.Time) entity.Order {
	return entity.Order{
		ID:         uuid.New(),
		VendorID:   vendorID,
		CustomerID: uuid.New(),
		Status:     status,
		TotalCents: totalCents,
		CreatedAt:  created,
	}
}

func TestOverviewCountsOnlyRevenueBearingOrders(t *testing.T) {
	vendorID := uuid.New()
	repo := &fakeAnalyticsRepo{
		names: map[uuid.UUID]string{vendorID: "Campus Grill"},
		orders: []entity.Order{
			order(vendorID, entity.OrderCompleted, 1000, at(1)),
			order(vendorID, entity.OrderDelivered, 500, at(2)),
			order(vendorID, entity.OrderCancelled, 9999, at(1)),
			order(vendorID, entity.OrderPending, 9999, at(1)),
		},
	}
	svc := NewAnalyticsServiceAt(repo, func() time.Time { return pinned })

	ov, err := svc.Overview(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, int64(4), ov.OrderCount)
	assert.Equal(t, int64(1500), ov.TotalRevenueCents)
	assert.Equal(t, int64(1500), ov.WindowRevenueCents)
	assert.Equal(t, int64(750), ov.AvgOrderValueCents)
}

func TestOverviewWindowExcludesOldRevenue(t *testing.T) {
	vendorID := uuid.New()
	repo := &fakeAnalyticsRepo{
		names: map[uuid.UUID]string{vendorID: "Campus Grill"},
		orders: []entity.Order{
			order(vendorID, entity.OrderCompleted, 1000, at(2)),
			order(vendorID, entity.OrderCompleted, 2000, at(60)),
		},
	}
	svc := NewAnalyticsServiceAt(repo, func() time.Time { return pinned })

	ov, err := svc.Overview(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), ov.TotalRevenueCents)
	assert.Equal(t, int64(1000), ov.WindowRevenueCents)
}

func TestRevenueSeriesZeroFillsWindow(t *testing.T) {
	vendorID := uuid.New()
	repo := &fakeAnalyticsRepo{
		names: map[uuid.UUID]string{vendorID: "Campus Grill"},
		orders: []entity.Order{
			order(vendorID, entity.OrderCompleted, 1000, at(1)),
			order(vendorID, entity.OrderCompleted, 500, at(1)),
			order(vendorID, entity.OrderCancelled, 800, at(1)), // counted, no revenue
			order(vendorID, entity.OrderCompleted, 300, at(29)),
			order(vendorID, entity.OrderCompleted, 999, at(45)), // outside window
		},
	}
	svc := NewAnalyticsServiceAt(repo, func() time.Time { return pinned })

	series, err := svc.RevenueSeries(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, series, 30)

	// Ascending: first bucket is 29 days ago, last is today.
	assert.Equal(t, at(29).Format("2006-01-02"), series[0].Date)
	assert.Equal(t, pinned.Format("2006-01-02"), series[29].Date)

	assert.Equal(t, int64(300), series[0].RevenueCents)
	assert.Equal(t, int64(1500), series[28].RevenueCents)
	assert.Equal(t, int64(3), series[28].OrderCount)
	assert.Equal(t, int64(0), series[29].RevenueCents)

	var nonZero int
	for _, p := range series {
		if p.RevenueCents != 0 {
			nonZero++
		}
	}
	assert.Equal(t, 2, nonZero)
}

func TestRevenueSeriesUnknownWindowFallsBackTo30(t *testing.T) {
	repo := &fakeAnalyticsRepo{names: map[uuid.UUID]string{}}
	svc := NewAnalyticsServiceAt(repo, func() time.Time { return pinned })

	series, err := svc.RevenueSeries(context.Background(), 13)
	require.NoError(t, err)
	assert.Len(t, series, 30)
}

func TestStatusBreakdownListsEveryStatus(t *testing.T) {
	vendorID := uuid.New()
	repo := &fakeAnalyticsRepo{
		names: map[uuid.UUID]string{vendorID: "Campus Grill"},
		orders: []entity.Order{
			order(vendorID, entity.OrderPending, 100, at(1)),
			order(vendorID, entity.OrderPending, 100, at(2)),
			order(vendorID, entity.OrderCompleted, 100, at(3)),
		},
	}
	svc := NewAnalyticsServiceAt(repo, func() time.Time { return pinned })

	counts, err := svc.StatusBreakdown(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 8)

	byStatus := map[entity.OrderStatus]int64{}
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	assert.Equal(t, int64(2), byStatus[entity.OrderPending])
	assert.Equal(t, int64(1), byStatus[entity.OrderCompleted])
	assert.Equal(t, int64(0), byStatus[entity.OrderCancelled])
}

func TestDayOfWeekBreakdownSundayFirst(t *testing.T) {
	vendorID := uuid.New()
	// pinned is a Thursday; two days earlier is a Tuesday.
	repo := &fakeAnalyticsRepo{
		names: map[uuid.UUID]string{vendorID: "Campus Grill"},
		orders: []entity.Order{
			order(vendorID, entity.OrderCompleted, 100, pinned),
			order(vendorID, entity.OrderCompleted, 100, at(2)),
			order(vendorID, entity.OrderCompleted, 100, at(2)),
		},
	}
	svc := NewAnalyticsServiceAt(repo, func() time.Time { return pinned })

	days, err := svc.DayOfWeekBreakdown(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.Equal(t, 0, days[0].Day) // Sunday
	assert.Equal(t, int64(2), days[int(time.Tuesday)].Count)
	assert.Equal(t, int64(1), days[int(time.Thursday)].Count)
	assert.Equal(t, int64(0), days[int(time.Monday)].Count)
}

func TestTopVendorsRankingAndTieBreak(t *testing.T) {
	big := uuid.New()
	names := map[uuid.UUID]string{big: "Big"}
	orders := []entity.Order{
		order(big, entity.OrderCompleted, 5000, at(1)),
	}

	// Eleven tied vendors so the cap at ten also gets exercised.
	tied := make([]uuid.UUID, 11)
	for i := range tied {
		tied[i] = uuid.New()
		names[tied[i]] = "Tied"
		orders = append(orders, order(tied[i], entity.OrderCompleted, 1000, at(2)))
	}

	repo := &fakeAnalyticsRepo{names: names, orders: orders}
	svc := NewAnalyticsServiceAt(repo, func() time.Time { return pinned })

	rows, err := svc.TopVendors(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	assert.Equal(t, big.String(), rows[0].VendorID)
	assert.Equal(t, int64(5000), rows[0].RevenueCents)
	assert.Equal(t, "Big", rows[0].Name)

	// Ties are ordered by vendor id ascending.
	for i := 2; i < len(rows); i++ {
		assert.Less(t, rows[i-1].VendorID, rows[i].VendorID)
	}
}
