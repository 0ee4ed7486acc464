package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	orderpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/order"
)

// OrderHandler bundles dependencies for order HTTP handlers.
type OrderHandler struct {
	service orderpkg.Service
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc orderpkg.Service) *OrderHandler {
	return &OrderHandler{service: svc}
}

type orderItemPayload struct {
	MenuItemID   string `json:"menu_item_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	Instructions string `json:"instructions"`
}

type checkoutGroupPayload struct {
	VendorID        string             `json:"vendor_id" binding:"required"`
	Items           []orderItemPayload `json:"items" binding:"required"`
	TotalCents      int64              `json:"total_cents" binding:"required"`
	DeliveryAddress *string            `json:"delivery_address"`
}

type checkoutPayload struct {
	Groups []checkoutGroupPayload `json:"groups" binding:"required,min=1"`
}

func orderErrorStatus(err error) int {
	switch {
	case errors.Is(err, orderpkg.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, orderpkg.ErrVendorNotActive),
		errors.Is(err, orderpkg.ErrInvalidTransition),
		errors.Is(err, orderpkg.ErrNotRatable):
		return http.StatusConflict
	case errors.Is(err, orderpkg.ErrTotalMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, orderpkg.ErrItemUnavailable),
		errors.Is(err, orderpkg.ErrEmptyOrder),
		errors.Is(err, orderpkg.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, orderpkg.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Checkout creates one order per vendor group in the cart. Each group is
// priced from the live menu on the server; a client total that disagrees
// rejects that group.
func (h *OrderHandler) Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p checkoutPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		customerID, err := uuid.Parse(c.GetString("customer_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing customer identity"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		created := make([]*entity.Order, 0, len(p.Groups))
		for _, g := range p.Groups {
			vendorID, err := uuid.Parse(g.VendorID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor_id"})
				return
			}
			req := orderpkg.CreateOrderRequest{
				CustomerID:       customerID,
				VendorID:         vendorID,
				ClientTotalCents: g.TotalCents,
				DeliveryAddress:  g.DeliveryAddress,
			}
			for _, it := range g.Items {
				itemID, err := uuid.Parse(it.MenuItemID)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu_item_id"})
					return
				}
				req.Items = append(req.Items, orderpkg.OrderItemRequest{
					MenuItemID:   itemID,
					Quantity:     it.Quantity,
					Instructions: it.Instructions,
				})
			}
			order, err := h.service.CreateOrder(ctx, req)
			if err != nil {
				c.JSON(orderErrorStatus(err), gin.H{
					"error":     err.Error(),
					"vendor_id": g.VendorID,
					"created":   created,
				})
				return
			}
			created = append(created, order)
		}
		c.JSON(http.StatusCreated, gin.H{"orders": created})
	}
}

// GetOrder returns a single order. Customers see their own orders, vendors
// the orders addressed to them, admins everything.
func (h *OrderHandler) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		order, err := h.service.GetOrder(ctx, id)
		if err != nil {
			c.JSON(orderErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		if !actorFrom(c).CanView(order) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// MyOrders returns the authenticated customer's order history, newest first.
func (h *OrderHandler) MyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := uuid.Parse(c.GetString("customer_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing customer identity"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		orders, err := h.service.ListForCustomer(ctx, customerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// VendorOrders returns orders addressed to the authenticated vendor. An
// optional ?exclude=status,status query hides statuses the kitchen view
// does not need.
func (h *OrderHandler) VendorOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID, err := uuid.Parse(c.GetString("vendor_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing vendor identity"})
			return
		}
		var exclude []entity.OrderStatus
		for _, s := range c.QueryArray("exclude") {
			exclude = append(exclude, entity.OrderStatus(s))
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		orders, err := h.service.ListForVendor(ctx, vendorID, exclude)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// AllOrders returns every order with vendor and customer names attached.
func (h *OrderHandler) AllOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		orders, err := h.service.ListAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

type ratingPayload struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// RateOrder records the customer's rating on a completed order.
func (h *OrderHandler) RateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var p ratingPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		customerID, err := uuid.Parse(c.GetString("customer_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing customer identity"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		order, err := h.service.RateOrder(ctx, id, customerID, p.Rating, p.Review)
		if err != nil {
			c.JSON(orderErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
