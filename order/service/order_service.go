package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	orderpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/order"
)

type orderService struct {
	repo orderpkg.Repository
}

func NewOrderService(repo orderpkg.Repository) orderpkg.Service { return &orderService{repo: repo} }

func (s *orderService) CreateOrder(ctx context.Context, req orderpkg.CreateOrderRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, orderpkg.ErrEmptyOrder
	}
	if _, err := s.repo.GetActiveVendor(ctx, req.VendorID); err != nil {
		return nil, err
	}

	menu, err := s.repo.GetLiveMenuItems(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}

	// Price every line from the vendor's current menu; the client-supplied
	// total is checked, never trusted.
	var total int64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, orderpkg.ErrInvalidQuantity
		}
		mi, ok := menu[it.MenuItemID]
		if !ok || !mi.Available {
			return nil, orderpkg.ErrItemUnavailable
		}
		id := mi.ID
		line := entity.OrderItem{
			MenuItemID:     &id,
			Name:           mi.Name,
			UnitPriceCents: mi.PriceCents,
			Quantity:       it.Quantity,
			Instructions:   it.Instructions,
		}
		total += line.SubtotalCents()
		items = append(items, line)
	}
	if total != req.ClientTotalCents {
		return nil, orderpkg.ErrTotalMismatch
	}

	o := &entity.Order{
		CustomerID:      req.CustomerID,
		VendorID:        req.VendorID,
		Status:          entity.OrderPending,
		PaymentStatus:   entity.PaymentUnpaid,
		TotalCents:      total,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
	}
	return s.repo.StoreOrder(ctx, o)
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus, actor orderpkg.Actor) (*entity.Order, error) {
	ord, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorize(ord, actor); err != nil {
		return nil, err
	}
	if !ord.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", orderpkg.ErrInvalidTransition, ord.Status, next)
	}
	if err := s.repo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, orderID)
}

func (s *orderService) Cancel(ctx context.Context, orderID uuid.UUID, actor orderpkg.Actor) (*entity.Order, error) {
	return s.UpdateStatus(ctx, orderID, entity.OrderCancelled, actor)
}

func (s *orderService) RateOrder(ctx context.Context, orderID, customerID uuid.UUID, rating int, review string) (*entity.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	ord, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord.CustomerID != customerID {
		return nil, orderpkg.ErrForbidden
	}
	if ord.Status != entity.OrderCompleted || ord.Rating != nil {
		return nil, orderpkg.ErrNotRatable
	}
	ord.Rating = &rating
	if review != "" {
		ord.Review = &review
	}
	updated, err := s.repo.UpdateOrder(ctx, ord)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ApplyVendorRating(ctx, ord.VendorID, rating); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *orderService) SetPaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus, adminID uuid.UUID) (*entity.Order, error) {
	switch status {
	case entity.PaymentUnpaid, entity.PaymentPaid, entity.PaymentRefunded:
	default:
		return nil, fmt.Errorf("unknown payment status %q", status)
	}
	if _, err := s.repo.GetOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	entry := &entity.AuditLog{
		AdminID:    adminID,
		Action:     entity.AuditPaymentStatusSet,
		EntityType: "order",
		EntityID:   orderID,
		Metadata:   fmt.Sprintf(`{"payment_status":%q}`, status),
	}
	if err := s.repo.SetPaymentStatusWithAudit(ctx, orderID, status, entry); err != nil {
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, orderID)
}

func (s *orderService) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]orderpkg.CustomerOrderView, error) {
	orders, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	names, err := s.repo.VendorNames(ctx, vendorIDs(orders))
	if err != nil {
		return nil, err
	}
	views := make([]orderpkg.CustomerOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderpkg.CustomerOrderView{Order: o, VendorName: names[o.VendorID]})
	}
	return views, nil
}

func (s *orderService) ListForVendor(ctx context.Context, vendorID uuid.UUID, exclude []entity.OrderStatus) ([]orderpkg.VendorOrderView, error) {
	orders, err := s.repo.ListByVendor(ctx, vendorID, exclude)
	if err != nil {
		return nil, err
	}
	names, err := s.repo.CustomerNames(ctx, customerIDs(orders))
	if err != nil {
		return nil, err
	}
	views := make([]orderpkg.VendorOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderpkg.VendorOrderView{Order: o, CustomerName: names[o.CustomerID]})
	}
	return views, nil
}

func (s *orderService) ListAll(ctx context.Context) ([]orderpkg.AdminOrderView, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	vnames, err := s.repo.VendorNames(ctx, vendorIDs(orders))
	if err != nil {
		return nil, err
	}
	cnames, err := s.repo.CustomerNames(ctx, customerIDs(orders))
	if err != nil {
		return nil, err
	}
	views := make([]orderpkg.AdminOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderpkg.AdminOrderView{
			Order:        o,
			VendorName:   vnames[o.VendorID],
			CustomerName: cnames[o.CustomerID],
		})
	}
	return views, nil
}

// authorize checks ownership for non-admin actors. Admins may drive any
// order; a vendor only its own; a customer only its own (cancel path).
func authorize(ord *entity.Order, actor orderpkg.Actor) error {
	switch actor.Role {
	case "admin":
		return nil
	case "vendor":
		if ord.VendorID != actor.VendorID {
			return orderpkg.ErrForbidden
		}
		return nil
	case "customer":
		if ord.CustomerID != actor.CustomerID {
			return orderpkg.ErrForbidden
		}
		return nil
	}
	return orderpkg.ErrForbidden
}

func vendorIDs(orders []entity.Order) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.VendorID]; !ok {
			seen[o.VendorID] = struct{}{}
			ids = append(ids, o.VendorID)
		}
	}
	return ids
}

func customerIDs(orders []entity.Order) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.CustomerID]; !ok {
			seen[o.CustomerID] = struct{}{}
			ids = append(ids, o.CustomerID)
		}
	}
	return ids
}
