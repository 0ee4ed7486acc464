package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/admin"
	auditpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/audit"
	customerpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/customer"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	notificationpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/notification"
	orderpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/order"
	profilepkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/profile"
	vendorpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/vendors"
)

// AdminHandler bundles the moderation and back-office endpoints. Every
// mutating endpoint here attributes its action to the authenticated admin.
type AdminHandler struct {
	vendors       vendorpkg.Service
	customers     customerpkg.Service
	profiles      profilepkg.Service
	orders        orderpkg.Service
	admins        adminpkg.Service
	audits        auditpkg.Repository
	notifications notificationpkg.Repository
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(
	vendors vendorpkg.Service,
	customers customerpkg.Service,
	profiles profilepkg.Service,
	orders orderpkg.Service,
	admins adminpkg.Service,
	audits auditpkg.Repository,
	notifications notificationpkg.Repository,
) *AdminHandler {
	return &AdminHandler{
		vendors:       vendors,
		customers:     customers,
		profiles:      profiles,
		orders:        orders,
		admins:        admins,
		audits:        audits,
		notifications: notifications,
	}
}

func adminIDFrom(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("admin_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return uuid.Nil, false
	}
	return id, true
}

type decisionPayload struct {
	Action string `json:"action" binding:"required"`
	Reason string `json:"reason"`
}

// DecideVendor applies an approve/reject decision to a pending vendor.
func (h *AdminHandler) DecideVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
			return
		}
		var p decisionPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		adminID, ok := adminIDFrom(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		v, err := h.vendors.Decide(ctx, vendorID, p.Action, adminID, p.Reason)
		if err != nil {
			switch {
			case errors.Is(err, vendorpkg.ErrInvalidDecision):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, vendorpkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply decision", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

type vendorStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=active inactive suspended"`
	Reason string `json:"reason"`
}

// SetVendorStatus is the direct admin status override, audited.
func (h *AdminHandler) SetVendorStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
			return
		}
		var p vendorStatusPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		adminID, ok := adminIDFrom(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		v, err := h.vendors.SetStatus(ctx, vendorID, entity.VendorStatus(p.Status), adminID, p.Reason)
		if err != nil {
			if errors.Is(err, vendorpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update vendor status", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// ListPendingVendors returns vendors awaiting an approval decision.
func (h *AdminHandler) ListPendingVendors() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		vendors, err := h.vendors.ListPendingVendors(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pending vendors", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vendors": vendors})
	}
}

// ModerateMenuItem approves or rejects a pending menu item.
func (h *AdminHandler) ModerateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := uuid.Parse(c.Param("itemId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
			return
		}
		var p decisionPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		if p.Action != vendorpkg.DecisionApprove && p.Action != vendorpkg.DecisionReject {
			c.JSON(http.StatusBadRequest, gin.H{"error": vendorpkg.ErrInvalidDecision.Error()})
			return
		}
		adminID, ok := adminIDFrom(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		item, err := h.vendors.ModerateMenuItem(ctx, itemID, p.Action == vendorpkg.DecisionApprove, adminID, p.Reason)
		if err != nil {
			if errors.Is(err, vendorpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to moderate menu item", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// ListPendingMenuItems returns the menu-moderation queue across vendors.
func (h *AdminHandler) ListPendingMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		items, err := h.vendors.ListPendingMenuItems(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pending items", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// ListCustomers returns every customer account.
func (h *AdminHandler) ListCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customers, err := h.customers.ListCustomers(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"customers": customers})
	}
}

type deleteCustomerPayload struct {
	Reason string `json:"reason"`
}

// DeleteCustomer soft-deletes a customer account, audited.
func (h *AdminHandler) DeleteCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var p deleteCustomerPayload
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
				return
			}
		}
		adminID, ok := adminIDFrom(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.customers.DeleteCustomer(ctx, customerID, adminID, p.Reason); err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}

// ListPendingVerifications returns profiles awaiting a student-ID decision.
func (h *AdminHandler) ListPendingVerifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		profiles, err := h.profiles.ListPendingVerifications(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list verifications", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"profiles": profiles})
	}
}

// DecideStudentID verifies or declines a submitted student ID.
func (h *AdminHandler) DecideStudentID() gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
			return
		}
		var p decisionPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		adminID, ok := adminIDFrom(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		profile, err := h.profiles.DecideStudentID(ctx, profileID, p.Action, adminID, p.Reason)
		if err != nil {
			switch {
			case errors.Is(err, profilepkg.ErrInvalidDecision):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, profilepkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply decision", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

type paymentStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=unpaid paid refunded"`
}

// SetPaymentStatus is the audited admin payment-state update on an order.
func (h *AdminHandler) SetPaymentStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var p paymentStatusPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		adminID, ok := adminIDFrom(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		order, err := h.orders.SetPaymentStatus(ctx, orderID, entity.PaymentStatus(p.Status), adminID)
		if err != nil {
			c.JSON(orderErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// ListAuditLog returns audit entries, newest first. Optional ?action= and
// ?limit= query params narrow the window.
func (h *AdminHandler) ListAuditLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		entries, err := h.audits.List(ctx, c.Query("action"), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list audit log", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}

// ListNotifications returns admin alerts, unread first.
func (h *AdminHandler) ListNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		notifs, err := h.notifications.List(ctx, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": notifs})
	}
}

// MarkNotificationRead marks one admin alert as read.
func (h *AdminHandler) MarkNotificationRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.notifications.MarkRead(ctx, id); err != nil {
			if errors.Is(err, notificationpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}

type registerAdminPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=superadmin admin staff"`
}

// RegisterAdmin creates an admin account. Only superadmins may call it.
func (h *AdminHandler) RegisterAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerAdminPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := adminpkg.RegisterAdminRequest{
			Name:     p.Name,
			Email:    p.Email,
			Password: p.Password,
			Role:     entity.AdminRole(p.Role),
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.admins.RegisterAdmin(ctx, req, callerAdminRole(c))
		if err != nil {
			switch {
			case errors.Is(err, adminpkg.ErrForbidden):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case errors.Is(err, adminpkg.ErrEmailTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register admin", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

type adminStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// SetAdminStatus activates or deactivates an admin account.
func (h *AdminHandler) SetAdminStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
			return
		}
		var p adminStatusPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.admins.SetStatus(ctx, id, entity.AdminStatus(p.Status), callerAdminRole(c))
		if err != nil {
			switch {
			case errors.Is(err, adminpkg.ErrForbidden):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case errors.Is(err, adminpkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update admin", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ListAdmins returns every admin account.
func (h *AdminHandler) ListAdmins() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		admins, err := h.admins.ListAdmins(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list admins", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admins": admins})
	}
}

func callerAdminRole(c *gin.Context) entity.AdminRole {
	return entity.AdminRole(c.GetString("admin_role"))
}
