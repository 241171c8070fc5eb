package handlers

import (
	"errors"
	"net/http"

	"prep-service/internal/minitest"
	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
)

type MiniTestHandler struct {
	Service *service.MiniTestService
}

func NewMiniTestHandler(s *service.MiniTestService) *MiniTestHandler {
	return &MiniTestHandler{Service: s}
}

// CreateMiniTest assembles a tag-balanced practice set.
func (h *MiniTestHandler) CreateMiniTest(c *gin.Context) {
	var req struct {
		PartID string   `json:"part_id" binding:"required"`
		TagIDs []string `json:"tag_ids" binding:"required,min=1"`
		Count  int      `json:"count" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	mt, err := h.Service.Generate(c.Request.Context(), req.PartID, req.TagIDs, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
				"code":  "NOT_FOUND",
			})
		case errors.Is(err, minitest.ErrPoolExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
				"code":  "POOL_EXHAUSTED",
				"hint":  "Lower the requested count or broaden the tag selection",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, mt)
}
