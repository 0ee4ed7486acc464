package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// Repository exposes the raw reads the rollups are computed from.
type Repository interface {
	CountVendors(ctx context.Context) (int64, error)
	CountActiveVendors(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)

	ListAllOrders(ctx context.Context) ([]entity.Order, error)
	ListOrdersSince(ctx context.Context, since time.Time) ([]entity.Order, error)

	VendorNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
