package order

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

var (
	// ErrNotFound means the order id did not resolve.
	ErrNotFound = errors.New("order not found")
	// ErrVendorNotActive refuses creation against a vendor that is not
	// approved (or does not exist from the customer's point of view).
	ErrVendorNotActive = errors.New("vendor not found or not active")
	// ErrInvalidTransition rejects a lifecycle move the transition table
	// does not allow.
	ErrInvalidTransition = errors.New("illegal order status transition")
	// ErrTotalMismatch means the client-supplied total disagrees with the
	// total recomputed from current menu prices.
	ErrTotalMismatch = errors.New("client total does not match server-computed total")
	// ErrItemUnavailable means a line references a menu item that is not
	// live and available on the vendor's menu.
	ErrItemUnavailable = errors.New("menu item not available")
	// ErrEmptyOrder refuses an order with no line items.
	ErrEmptyOrder = errors.New("order has no items")
	// ErrInvalidQuantity refuses a line with quantity < 1.
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
	// ErrNotRatable means the order is not completed yet or already rated.
	ErrNotRatable = errors.New("order cannot be rated")
	// ErrForbidden means the actor does not own the order.
	ErrForbidden = errors.New("forbidden: order belongs to another party")
)

// OrderItemRequest is one cart line. Unit price is re-read from the
// vendor's live menu; the client never prices a line.
type OrderItemRequest struct {
	MenuItemID   uuid.UUID
	Quantity     int
	Instructions string
}

// CreateOrderRequest is one per-vendor group of a checkout. ClientTotalCents
// is what the client showed the customer; the server recomputes and must
// agree before anything is stored.
type CreateOrderRequest struct {
	CustomerID       uuid.UUID
	VendorID         uuid.UUID
	Items            []OrderItemRequest
	ClientTotalCents int64
	DeliveryAddress  *string
}

// Actor identifies who is driving a status change.
type Actor struct {
	Role       string // "vendor", "admin", or "customer"
	VendorID   uuid.UUID
	CustomerID uuid.UUID
	AdminID    uuid.UUID
}

// CanView reports whether the actor may read the given order. Admins see
// everything, customers and vendors only their own side.
func (a Actor) CanView(o *entity.Order) bool {
	switch a.Role {
	case "admin":
		return true
	case "vendor":
		return a.VendorID == o.VendorID
	case "customer":
		return a.CustomerID == o.CustomerID
	default:
		return false
	}
}

// CustomerOrderView is the customer-facing projection.
type CustomerOrderView struct {
	entity.Order
	VendorName string `json:"vendor_name"`
}

// VendorOrderView is the vendor-facing projection.
type VendorOrderView struct {
	entity.Order
	CustomerName string `json:"customer_name"`
}

// AdminOrderView is the admin-facing projection.
type AdminOrderView struct {
	entity.Order
	VendorName   string `json:"vendor_name"`
	CustomerName string `json:"customer_name"`
}

// Service exposes order lifecycle operations.
type Service interface {
	// CreateOrder validates the vendor is active, prices every line from
	// the live menu, recomputes the total and stores the order as pending.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)

	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus applies one lifecycle step, guarded by the transition
	// table. Vendor actors must own the order.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus, actor Actor) (*entity.Order, error)
	// Cancel moves the order to cancelled if the table allows it.
	Cancel(ctx context.Context, orderID uuid.UUID, actor Actor) (*entity.Order, error)

	// RateOrder records a 1-5 rating plus optional review on a completed
	// order and folds it into the vendor's running average.
	RateOrder(ctx context.Context, orderID, customerID uuid.UUID, rating int, review string) (*entity.Order, error)

	// SetPaymentStatus is the audited admin payment-state update.
	SetPaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus, adminID uuid.UUID) (*entity.Order, error)

	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]CustomerOrderView, error)
	// ListForVendor excludes the given statuses when exclude is non-empty.
	ListForVendor(ctx context.Context, vendorID uuid.UUID, exclude []entity.OrderStatus) ([]VendorOrderView, error)
	ListAll(ctx context.Context) ([]AdminOrderView, error)
}
