// server/internal/api/handlers/intake_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller-api-server/internal/models"
	"taller-api-server/internal/service"
	"taller-api-server/internal/store"
)

// IntakeHandler covers the receptionist's desk: vehicle reception and
// client/vehicle reads.
type IntakeHandler struct {
	Orders   *service.OrderService
	Clients  store.ClientStore
	Vehicles store.VehicleStore
	Catalog  store.CatalogStore
}

type IntakeRequest struct {
	ClientRUT     string `json:"clientRUT" binding:"required"`
	ClientName    string `json:"clientName" binding:"required"`
	ClientPhone   string `json:"clientPhone"`
	ClientEmail   string `json:"clientEmail"`
	ClientAddress string `json:"clientAddress"`

	Plate      string `json:"plate" binding:"required"`
	Brand      string `json:"brand" binding:"required"`
	Model      string `json:"model" binding:"required"`
	Year       int    `json:"year"`
	Odometer   int    `json:"odometer"`
	BodyDamage string `json:"bodyDamage"`

	Reason   string          `json:"reason" binding:"required"`
	Problem  string          `json:"problem"`
	Priority models.Priority `json:"priority"`
}

func (h *IntakeHandler) Intake(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.Intake(c.Request.Context(), service.IntakeInput{
		ClientRUT:     req.ClientRUT,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   req.ClientEmail,
		ClientAddress: req.ClientAddress,
		Plate:         req.Plate,
		Brand:         req.Brand,
		Model:         req.Model,
		Year:          req.Year,
		Odometer:      req.Odometer,
		BodyDamage:    req.BodyDamage,
		Reason:        req.Reason,
		Problem:       req.Problem,
		Priority:      req.Priority,
	}, callerProfileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *IntakeHandler) ListClients(c *gin.Context) {
	clients, err := h.Clients.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *IntakeHandler) GetClientVehicles(c *gin.Context) {
	rut := c.Param("rut")
	vehicles, err := h.Vehicles.ListByClient(c.Request.Context(), rut)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *IntakeHandler) ListBrands(c *gin.Context) {
	brands, err := h.Catalog.ListBrands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *IntakeHandler) ListModelsByBrand(c *gin.Context) {
	brand := c.Param("brand")
	vehicleModels, err := h.Catalog.ListModelsByBrand(c.Request.Context(), brand)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicleModels)
}
