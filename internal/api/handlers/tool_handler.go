// server/internal/api/handlers/tool_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller-api-server/internal/models"
	"taller-api-server/internal/service"
)

type ToolHandler struct {
	Tools *service.ToolService
}

type CreateToolRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	Location    string `json:"location"`
}

func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tool := &models.Tool{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Location:    req.Location,
	}
	if err := h.Tools.CreateTool(c.Request.Context(), tool); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tool)
}

func (h *ToolHandler) ListTools(c *gin.Context) {
	tools, err := h.Tools.ListTools(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tools)
}

func (h *ToolHandler) Checkout(c *gin.Context) {
	tool, err := h.Tools.Checkout(c.Request.Context(), c.Param("code"), callerProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tool)
}

func (h *ToolHandler) Checkin(c *gin.Context) {
	tool, err := h.Tools.Checkin(c.Request.Context(), c.Param("code"), callerProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tool)
}
