package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	customerpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/customer"
)

// CustomerHandler bundles dependencies for customer-facing HTTP handlers.
type CustomerHandler struct {
	service customerpkg.Service
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.Service) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

func customerIDFrom(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("customer_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing customer identity"})
		return uuid.Nil, false
	}
	return id, true
}

// Me returns the authenticated customer's account.
func (h *CustomerHandler) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := customerIDFrom(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cust, err := h.service.GetCustomer(ctx, id)
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

type updateCustomerPayload struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// UpdateMe applies partial edits to the authenticated customer's account.
func (h *CustomerHandler) UpdateMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := customerIDFrom(c)
		if !ok {
			return
		}
		var p updateCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := customerpkg.UpdateCustomerRequest{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Phone:     p.Phone,
			Address:   p.Address,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cust, err := h.service.UpdateCustomer(ctx, id, req)
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

// AddFavorite marks a vendor as a favorite. Adding twice is a no-op.
func (h *CustomerHandler) AddFavorite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := customerIDFrom(c)
		if !ok {
			return
		}
		vendorID, err := uuid.Parse(c.Param("vendorId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.AddFavorite(ctx, id, vendorID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}

// RemoveFavorite unmarks a favorite vendor.
func (h *CustomerHandler) RemoveFavorite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := customerIDFrom(c)
		if !ok {
			return
		}
		vendorID, err := uuid.Parse(c.Param("vendorId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.RemoveFavorite(ctx, id, vendorID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}

// ListFavorites returns the customer's favorite vendors.
func (h *CustomerHandler) ListFavorites() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := customerIDFrom(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		vendors, err := h.service.ListFavorites(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vendors": vendors})
	}
}
