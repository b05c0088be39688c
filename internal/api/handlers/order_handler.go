// server/internal/api/handlers/order_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taller-api-server/internal/models"
	"taller-api-server/internal/service"
	"taller-api-server/internal/store"
)

type OrderHandler struct {
	Orders *service.OrderService
}

func (h *OrderHandler) List(c *gin.Context) {
	filter := store.OrderFilter{
		State:      models.OrderState(c.Query("state")),
		MechanicID: c.Query("mechanicID"),
	}
	if w := c.Query("waitlisted"); w != "" {
		waitlisted := w == "true"
		filter.Waitlisted = &waitlisted
	}

	orders, err := h.Orders.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// MyOrders lists the orders assigned to the calling mechanic.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.Orders.ListForMechanic(c.Request.Context(), callerProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type AssignRequest struct {
	MechanicID        string    `json:"mechanicID" binding:"required"`
	ZoneID            string    `json:"zoneID" binding:"required"`
	EstimatedDelivery time.Time `json:"estimatedDelivery" binding:"required"`
}

func (h *OrderHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.Assign(c.Request.Context(), c.Param("id"), req.MechanicID, req.ZoneID, req.EstimatedDelivery, callerProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type RecordLogRequest struct {
	Progress      models.ProgressState `json:"progress" binding:"required"`
	Description   string               `json:"description" binding:"required"`
	MinutesSpent  int                  `json:"minutesSpent"`
	ChangeRequest string               `json:"changeRequest"`
}

func (h *OrderHandler) RecordLog(c *gin.Context) {
	var req RecordLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Orders.RecordLog(c.Request.Context(), c.Param("id"), callerProfileID(c), req.Progress, req.Description, req.MinutesSpent, req.ChangeRequest)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

type QualityCheckRequest struct {
	Result             models.QualityResult `json:"result" binding:"required"`
	Notes              string               `json:"notes"`
	RoadTestOK         bool                 `json:"roadTestOK"`
	FluidsChecked      bool                 `json:"fluidsChecked"`
	LightsElectricalOK bool                 `json:"lightsElectricalOK"`
	ToolsRemoved       bool                 `json:"toolsRemoved"`
	VehicleClean       bool                 `json:"vehicleClean"`
}

func (h *OrderHandler) QualityCheck(c *gin.Context) {
	var req QualityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.QualityCheck(c.Request.Context(), c.Param("id"), callerProfileID(c), service.QualityInput{
		Result:             req.Result,
		Notes:              req.Notes,
		RoadTestOK:         req.RoadTestOK,
		FluidsChecked:      req.FluidsChecked,
		LightsElectricalOK: req.LightsElectricalOK,
		ToolsRemoved:       req.ToolsRemoved,
		VehicleClean:       req.VehicleClean,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DelayScan flags overdue IN_PROGRESS orders; at most one alert per
// order is ever raised.
func (h *OrderHandler) DelayScan(c *gin.Context) {
	delayed, err := h.Orders.DetectDelays(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flagged": len(delayed), "orders": delayed})
}

type AddServiceItemRequest struct {
	Service string `json:"service" binding:"required"`
	Price   int64  `json:"price"`
}

func (h *OrderHandler) AddServiceItem(c *gin.Context) {
	var req AddServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.AddServiceItem(c.Request.Context(), c.Param("id"), req.Service, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type AddPartItemRequest struct {
	PartCode string `json:"partCode" binding:"required"`
	Qty      int    `json:"qty" binding:"required"`
}

func (h *OrderHandler) AddPartItem(c *gin.Context) {
	var req AddPartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.AddPartItem(c.Request.Context(), c.Param("id"), req.PartCode, req.Qty, callerProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Report returns totals and logged minutes for the document generator.
func (h *OrderHandler) Report(c *gin.Context) {
	report, err := h.Orders.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
