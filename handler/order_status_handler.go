package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	orderpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/order"
)

// OrderStatusHandler drives the order lifecycle. Each step is its own
// endpoint; the transition table in entity decides what is legal.
type OrderStatusHandler struct{ svc orderpkg.Service }

func NewOrderStatusHandler(svc orderpkg.Service) *OrderStatusHandler {
	return &OrderStatusHandler{svc: svc}
}

func actorFrom(c *gin.Context) orderpkg.Actor {
	a := orderpkg.Actor{Role: c.GetString("role")}
	if id, err := uuid.Parse(c.GetString("vendor_id")); err == nil {
		a.VendorID = id
	}
	if id, err := uuid.Parse(c.GetString("customer_id")); err == nil {
		a.CustomerID = id
	}
	if id, err := uuid.Parse(c.GetString("admin_id")); err == nil {
		a.AdminID = id
	}
	return a
}

func (h *OrderStatusHandler) update(target entity.OrderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.svc.UpdateStatus(ctx, oid, target, actorFrom(c))
		if err != nil {
			c.JSON(orderErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (h *OrderStatusHandler) Confirm() gin.HandlerFunc   { return h.update(entity.OrderConfirmed) }
func (h *OrderStatusHandler) Preparing() gin.HandlerFunc { return h.update(entity.OrderPreparing) }
func (h *OrderStatusHandler) Ready() gin.HandlerFunc     { return h.update(entity.OrderReady) }
func (h *OrderStatusHandler) PickedUp() gin.HandlerFunc  { return h.update(entity.OrderPickedUp) }
func (h *OrderStatusHandler) Delivered() gin.HandlerFunc { return h.update(entity.OrderDelivered) }
func (h *OrderStatusHandler) Complete() gin.HandlerFunc  { return h.update(entity.OrderCompleted) }

// Cancel moves the order to cancelled when the lifecycle still allows it.
func (h *OrderStatusHandler) Cancel() gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.svc.Cancel(ctx, oid, actorFrom(c))
		if err != nil {
			c.JSON(orderErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
