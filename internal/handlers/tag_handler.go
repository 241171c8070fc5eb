package handlers

import (
	"net/http"

	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	Service *service.TagService
}

func NewTagHandler(s *service.TagService) *TagHandler {
	return &TagHandler{Service: s}
}

func (h *TagHandler) GetAllTags(c *gin.Context) {
	tags, err := h.Service.GetAllTags(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) GetTagByID(c *gin.Context) {
	tag, err := h.Service.GetTagByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tag == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}
	c.JSON(http.StatusOK, tag)
}

type PartHandler struct {
	Service *service.PartService
}

func NewPartHandler(s *service.PartService) *PartHandler {
	return &PartHandler{Service: s}
}

func (h *PartHandler) GetAllParts(c *gin.Context) {
	parts, err := h.Service.GetAllParts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, parts)
}
