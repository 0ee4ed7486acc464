package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus enumerates the lifecycle of an order. This is the single
// authoritative enum; "completed" is the terminal state after pickup or
// delivery.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"   // created, awaiting vendor confirmation
	OrderConfirmed OrderStatus = "confirmed" // vendor accepted the order
	OrderPreparing OrderStatus = "preparing" // kitchen working on it
	OrderReady     OrderStatus = "ready"     // ready for pickup / handoff
	OrderPickedUp  OrderStatus = "picked_up" // customer collected it
	OrderDelivered OrderStatus = "delivered" // delivered to the customer
	OrderCompleted OrderStatus = "completed" // closed out after pickup/delivery
	OrderCancelled OrderStatus = "cancelled" // terminal, reachable from any non-terminal state
)

// orderTransitions is the allowed(from, to) table. Cancellation is legal
// from every non-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderPickedUp, OrderDelivered, OrderCancelled},
	OrderPickedUp:  {OrderCompleted, OrderCancelled},
	OrderDelivered: {OrderCompleted, OrderCancelled},
	OrderCompleted: {},
	OrderCancelled: {},
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// RevenueBearing reports whether an order in this status counts toward
// revenue figures.
func (s OrderStatus) RevenueBearing() bool {
	switch s {
	case OrderCompleted, OrderDelivered, OrderReady, OrderPickedUp:
		return true
	}
	return false
}

// PaymentStatus tracks payment separately from the fulfilment lifecycle.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order captures one checkout against a single vendor. A multi-vendor cart
// produces one Order per vendor.
type Order struct {
	ID              uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID      uuid.UUID     `json:"customer_id" gorm:"type:uuid;index;not null"`
	VendorID        uuid.UUID     `json:"vendor_id" gorm:"type:uuid;index;not null"`
	Status          OrderStatus   `json:"status" gorm:"type:text;index;not null;default:'pending'"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"type:text;index;not null;default:'unpaid'"`
	TotalCents      int64         `json:"total_cents" gorm:"type:bigint;not null;default:0"`
	DeliveryAddress *string       `json:"delivery_address,omitempty" gorm:"type:text"`
	Rating          *int          `json:"rating,omitempty" gorm:"type:int;check:rating IS NULL OR (rating >= 1 AND rating <= 5)"`
	Review          *string       `json:"review,omitempty" gorm:"type:text"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
	// Relations
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is one line of an order. UnitPriceCents is captured from the
// vendor's menu at creation so later menu edits do not rewrite history.
type OrderItem struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderID        uuid.UUID      `json:"order_id" gorm:"type:uuid;index;not null"`
	MenuItemID     *uuid.UUID     `json:"menu_item_id,omitempty" gorm:"type:uuid;index;default:null"`
	Name           string         `json:"name" gorm:"type:text;not null"`
	UnitPriceCents int64          `json:"unit_price_cents" gorm:"type:bigint;not null"`
	Quantity       int            `json:"quantity" gorm:"type:int;not null;check:quantity >= 1"`
	Instructions   string         `json:"instructions,omitempty" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// SubtotalCents is the line contribution to the order total.
func (i OrderItem) SubtotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}
