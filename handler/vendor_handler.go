package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	vendorpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/vendors"
)

// VendorHandler bundles dependencies for vendor-facing HTTP handlers.
type VendorHandler struct {
	service vendorpkg.Service
}

// NewVendorHandler constructs a VendorHandler.
func NewVendorHandler(svc vendorpkg.Service) *VendorHandler {
	return &VendorHandler{service: svc}
}

type registerVendorPayload struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
}

// RegisterVendor creates a vendor account in the pending state. The vendor
// cannot receive orders until an admin approves it.
func (h *VendorHandler) RegisterVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerVendorPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := vendorpkg.RegisterVendorRequest{
			Name:        p.Name,
			Email:       p.Email,
			Password:    p.Password,
			Phone:       p.Phone,
			Description: p.Description,
			Cuisine:     p.Cuisine,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RegisterVendor(ctx, req)
		if err != nil {
			if errors.Is(err, vendorpkg.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register vendor", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "vendor registered; awaiting approval",
			"vendor":  created,
		})
	}
}

// GetVendor returns a single vendor by id.
func (h *VendorHandler) GetVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		v, err := h.service.GetVendor(ctx, id)
		if err != nil {
			if errors.Is(err, vendorpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vendor", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// ListVendors returns active vendors for customer browsing. An optional
// ?search= term filters by name.
func (h *VendorHandler) ListVendors() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		vendors, err := h.service.ListVendors(ctx, c.Query("search"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list vendors", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vendors": vendors})
	}
}

type onlinePayload struct {
	Online *bool `json:"online" binding:"required"`
}

// SetOnline toggles the authenticated vendor's open/closed flag.
func (h *VendorHandler) SetOnline() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p onlinePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		vendorID, err := uuid.Parse(c.GetString("vendor_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing vendor identity"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.SetOnline(ctx, vendorID, *p.Online); err != nil {
			if errors.Is(err, vendorpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update vendor", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"online": *p.Online})
	}
}

type menuItemPayload struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required,gt=0"`
	Category   string `json:"category"`
	ImageURL   string `json:"image_url"`
	Available  bool   `json:"available"`
}

// AddMenuItem submits a new item into the vendor's pending menu.
func (h *VendorHandler) AddMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p menuItemPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		vendorID, err := uuid.Parse(c.GetString("vendor_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing vendor identity"})
			return
		}
		req := vendorpkg.MenuItemRequest{
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Category:   p.Category,
			ImageURL:   p.ImageURL,
			Available:  p.Available,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		item, err := h.service.AddMenuItem(ctx, vendorID, req)
		if err != nil {
			if errors.Is(err, vendorpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add menu item", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "menu item submitted for review",
			"item":    item,
		})
	}
}

type menuItemUpdatePayload struct {
	Name       *string `json:"name"`
	PriceCents *int64  `json:"price_cents"`
	Category   *string `json:"category"`
	Available  *bool   `json:"available"`
}

// UpdateMenuItem edits an item on the authenticated vendor's own menu.
func (h *VendorHandler) UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := uuid.Parse(c.Param("itemId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
			return
		}
		var p menuItemUpdatePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		vendorID, err := uuid.Parse(c.GetString("vendor_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing vendor identity"})
			return
		}
		upd := vendorpkg.MenuItemUpdate{
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Category:   p.Category,
			Available:  p.Available,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		item, err := h.service.UpdateMenuItem(ctx, vendorID, itemID, upd)
		if err != nil {
			if errors.Is(err, vendorpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update menu item", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// ListMenu returns a vendor's live menu for customers.
func (h *VendorHandler) ListMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		items, err := h.service.ListMenu(ctx, vendorID, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list menu", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// ListOwnMenu returns the authenticated vendor's full menu including items
// still in review.
func (h *VendorHandler) ListOwnMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID, err := uuid.Parse(c.GetString("vendor_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing vendor identity"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		items, err := h.service.ListMenu(ctx, vendorID, true)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list menu", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
