// server/internal/api/handlers/inventory_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taller-api-server/internal/models"
	"taller-api-server/internal/service"
)

type InventoryHandler struct {
	Inventory *service.InventoryService
}

type CreatePartRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Brand         string `json:"brand"`
	Compatibility string `json:"compatibility"`
	Stock         int    `json:"stock"`
	Location      string `json:"location"`
	PriceBuy      int64  `json:"priceBuy"`
	PriceSell     int64  `json:"priceSell"`
	SupplierID    string `json:"supplierID"`
}

func (h *InventoryHandler) CreatePart(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part := &models.Part{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		Brand:         req.Brand,
		Compatibility: req.Compatibility,
		Stock:         req.Stock,
		Location:      req.Location,
		PriceBuy:      req.PriceBuy,
		PriceSell:     req.PriceSell,
		SupplierID:    req.SupplierID,
		ReceivedAt:    time.Now(),
	}
	if err := h.Inventory.CreatePart(c.Request.Context(), part); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, part)
}

func (h *InventoryHandler) ListParts(c *gin.Context) {
	parts, err := h.Inventory.ListParts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *InventoryHandler) GetPart(c *gin.Context) {
	part, err := h.Inventory.GetPart(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

type MoveRequest struct {
	Direction models.MovementDirection `json:"direction" binding:"required"`
	Qty       int                      `json:"qty" binding:"required"`
	OrderID   string                   `json:"orderID"`
}

func (h *InventoryHandler) Move(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Direction != models.MovementIn && req.Direction != models.MovementOut {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be IN or OUT"})
		return
	}

	movement, err := h.Inventory.Move(c.Request.Context(), c.Param("code"), req.Direction, req.Qty, req.OrderID, callerProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

func (h *InventoryHandler) Movements(c *gin.Context) {
	movements, err := h.Inventory.Movements(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, movements)
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	parts, err := h.Inventory.LowStockParts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, parts)
}
