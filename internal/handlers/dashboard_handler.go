package handlers

import (
	"errors"
	"net/http"
	"time"

	"prep-service/internal/kpi"
	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Service *service.DashboardService
}

func NewDashboardHandler(s *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// GetAdminAnalytics returns the period-over-period KPI dashboard.
func (h *DashboardHandler) GetAdminAnalytics(c *gin.Context) {
	from, errFrom := time.Parse("2006-01-02", c.Query("from"))
	to, errTo := time.Parse("2006-01-02", c.Query("to"))
	if errFrom != nil || errTo != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "from and to must be YYYY-MM-DD dates",
			"code":  "INVALID_DATE",
		})
		return
	}

	dashboard, err := h.Service.GetAdminDashboard(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, kpi.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
				"code":  "INVALID_RANGE",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
