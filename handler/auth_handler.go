package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/auth"
	customerpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/customer"
)

// AuthHandler bundles login endpoints for all three principal kinds.
type AuthHandler struct {
	service   authpkg.Service
	customers customerpkg.Service
}

func NewAuthHandler(svc authpkg.Service, customers customerpkg.Service) *AuthHandler {
	return &AuthHandler{service: svc, customers: customers}
}

type customerSessionPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// CustomerSession upserts the customer record behind the verified Firebase
// subject and mints a session token. Runs behind RequireFirebaseAuth.
func (h *AuthHandler) CustomerSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p customerSessionPayload
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
				return
			}
		}
		uid := c.GetString("firebase_uid")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}
		req := customerpkg.SyncCustomerRequest{
			FirebaseUID: uid,
			Email:       c.GetString("firebase_email"),
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Phone:       p.Phone,
		}
		if req.FirstName == "" {
			req.FirstName = c.GetString("firebase_name")
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cust, err := h.customers.SyncCustomer(ctx, req)
		if err != nil {
			if errors.Is(err, customerpkg.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync customer", "detail": err.Error()})
			return
		}
		principal, err := h.service.CustomerLogin(ctx, uid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login failed", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal": principal, "customer": cust})
	}
}

type emailLoginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VendorLogin authenticates a vendor by email and password.
func (h *AuthHandler) VendorLogin() gin.HandlerFunc {
	return h.emailLogin(h.service.VendorLogin)
}

// AdminLogin authenticates an admin by email and password.
func (h *AuthHandler) AdminLogin() gin.HandlerFunc {
	return h.emailLogin(h.service.AdminLogin)
}

func (h *AuthHandler) emailLogin(login func(context.Context, string, string) (*authpkg.Principal, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p emailLoginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		principal, err := login(ctx, p.Email, p.Password)
		if err != nil {
			switch {
			case errors.Is(err, authpkg.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			case errors.Is(err, authpkg.ErrAccountDisabled):
				c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal": principal})
	}
}
