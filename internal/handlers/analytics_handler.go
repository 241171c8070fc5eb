package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
)

// windowDaysByLabel maps the dashboard's lookback selector to day counts.
var windowDaysByLabel = map[string]int{
	"ONE_MONTH":    30,
	"THREE_MONTHS": 90,
	"SIX_MONTHS":   180,
	"ONE_YEAR":     365,
	"TWO_YEARS":    720,
	"THREE_YEARS":  1095,
}

type AnalyticsHandler struct {
	Service *service.AnalyticsService
}

func NewAnalyticsHandler(s *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

// GetUserAnalytics returns the learner's windowed part/tag breakdown.
func (h *AnalyticsHandler) GetUserAnalytics(c *gin.Context) {
	userID := c.Param("userId")

	label := c.DefaultQuery("days", "ONE_MONTH")
	days, ok := windowDaysByLabel[label]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid days value",
			"code":  "INVALID_WINDOW",
		})
		return
	}

	breakdown, err := h.Service.GetUserBreakdown(c.Request.Context(), userID, days)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// GetFullTestSummary returns the learner's recent full-test score trend.
func (h *AnalyticsHandler) GetFullTestSummary(c *gin.Context) {
	userID := c.Param("userId")

	size := 5
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid size value",
				"code":  "INVALID_SIZE",
			})
			return
		}
		size = parsed
	}

	summary, err := h.Service.GetFullTestSummary(c.Request.Context(), userID, size)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
