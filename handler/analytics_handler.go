package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	analyticspkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/analytics"
)

// AnalyticsHandler exposes the admin dashboard rollups. Every endpoint
// accepts ?window=7|30|90 (days); anything else falls back to 30.
type AnalyticsHandler struct {
	service analyticspkg.Service
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticspkg.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

func windowFrom(c *gin.Context) int {
	days, _ := strconv.Atoi(c.Query("window"))
	return days
}

// Overview returns the headline counters and windowed revenue stats.
func (h *AnalyticsHandler) Overview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		overview, err := h.service.Overview(ctx, windowFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute overview", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, overview)
	}
}

// RevenueSeries returns one revenue/order-count point per day in the window.
func (h *AnalyticsHandler) RevenueSeries() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		series, err := h.service.RevenueSeries(ctx, windowFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute series", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"series": series})
	}
}

// StatusBreakdown counts all orders by lifecycle status.
func (h *AnalyticsHandler) StatusBreakdown() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		counts, err := h.service.StatusBreakdown(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute breakdown", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"statuses": counts})
	}
}

// DayOfWeekBreakdown counts windowed orders per weekday, Sunday first.
func (h *AnalyticsHandler) DayOfWeekBreakdown() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		counts, err := h.service.DayOfWeekBreakdown(ctx, windowFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute breakdown", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"days": counts})
	}
}

// TopVendors ranks the top vendors by windowed revenue.
func (h *AnalyticsHandler) TopVendors() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		vendors, err := h.service.TopVendors(ctx, windowFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute ranking", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vendors": vendors})
	}
}
