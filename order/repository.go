package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// Repository defines DB operations for orders, including the vendor/menu
// reads order creation depends on.
type Repository interface {
	// GetActiveVendor resolves a vendor only if it exists and is active.
	GetActiveVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	// GetLiveMenuItems returns the vendor's active menu items keyed by id.
	GetLiveMenuItems(ctx context.Context, vendorID uuid.UUID) (map[uuid.UUID]entity.MenuItem, error)

	StoreOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	UpdateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	// SetPaymentStatusWithAudit updates payment state and appends the audit
	// entry inside one transaction.
	SetPaymentStatusWithAudit(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, entry *entity.AuditLog) error

	// ApplyVendorRating folds one 1-5 rating into the vendor's running
	// average and bumps the count.
	ApplyVendorRating(ctx context.Context, vendorID uuid.UUID, rating int) error

	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Order, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, exclude []entity.OrderStatus) ([]entity.Order, error)
	ListAll(ctx context.Context) ([]entity.Order, error)

	// VendorNames / CustomerNames resolve display names for projections.
	VendorNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	CustomerNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
