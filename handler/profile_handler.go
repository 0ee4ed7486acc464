package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	profilepkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/profile"
)

// ProfileHandler bundles the customer-facing profile endpoints.
type ProfileHandler struct {
	service profilepkg.Service
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(svc profilepkg.Service) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// Me returns the authenticated customer's profile, creating it on first
// access.
func (h *ProfileHandler) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := customerIDFrom(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		profile, err := h.service.GetProfile(ctx, customerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

type studentIDPayload struct {
	StudentID string `json:"student_id" binding:"required"`
}

// SubmitStudentID submits or replaces the student ID. A changed value drops
// verification back to pending.
func (h *ProfileHandler) SubmitStudentID() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := customerIDFrom(c)
		if !ok {
			return
		}
		var p studentIDPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		profile, err := h.service.SubmitStudentID(ctx, customerID, p.StudentID)
		if err != nil {
			if errors.Is(err, profilepkg.ErrEmptyStudentID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit student id", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

type preferencesPayload struct {
	EmailUpdates *bool `json:"email_updates"`
	Promotions   *bool `json:"promotions"`
}

// UpdatePreferences applies partial notification-preference edits.
func (h *ProfileHandler) UpdatePreferences() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := customerIDFrom(c)
		if !ok {
			return
		}
		var p preferencesPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		upd := profilepkg.PreferencesUpdate{
			EmailUpdates: p.EmailUpdates,
			Promotions:   p.Promotions,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		profile, err := h.service.UpdatePreferences(ctx, customerID, upd)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
