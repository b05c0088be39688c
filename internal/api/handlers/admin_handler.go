// server/internal/api/handlers/admin_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taller-api-server/internal/models"
	"taller-api-server/internal/store"
)

// AdminHandler maintains the reference tables: zones, brand/model
// catalog, specialties, the service catalog and suppliers.
type AdminHandler struct {
	Zones   store.ZoneStore
	Catalog store.CatalogStore
}

type CreateZoneRequest struct {
	ZoneID   string `json:"zoneID" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity"`
}

func (h *AdminHandler) CreateZone(c *gin.Context) {
	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Capacity <= 0 {
		req.Capacity = 5
	}

	zone := &models.WorkZone{
		ZoneID:   req.ZoneID,
		Name:     req.Name,
		Capacity: req.Capacity,
		Active:   true,
	}
	if err := h.Zones.Create(c.Request.Context(), zone); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Zone already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, zone)
}

func (h *AdminHandler) ListZones(c *gin.Context) {
	zones, err := h.Zones.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, zones)
}

type CreateBrandRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *AdminHandler) CreateBrand(c *gin.Context) {
	var req CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	brand := &models.VehicleBrand{Name: req.Name}
	if err := h.Catalog.CreateBrand(c.Request.Context(), brand); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, brand)
}

type CreateModelRequest struct {
	Brand string `json:"brand" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

func (h *AdminHandler) CreateModel(c *gin.Context) {
	var req CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := &models.VehicleModel{Brand: req.Brand, Name: req.Name}
	if err := h.Catalog.CreateModel(c.Request.Context(), model); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, model)
}

type CreateSpecialtyRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *AdminHandler) CreateSpecialty(c *gin.Context) {
	var req CreateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	specialty := &models.Specialty{Name: req.Name}
	if err := h.Catalog.CreateSpecialty(c.Request.Context(), specialty); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, specialty)
}

func (h *AdminHandler) ListSpecialties(c *gin.Context) {
	specialties, err := h.Catalog.ListSpecialties(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, specialties)
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   int64  `json:"basePrice" binding:"required"`
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := &models.CatalogService{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	}
	if err := h.Catalog.CreateService(c.Request.Context(), svc); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Service already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *AdminHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	RUT   string `json:"rut"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *AdminHandler) CreateSupplier(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier := &models.Supplier{
		SupplierID: fmt.Sprintf("SUP-%s", strings.ToUpper(uuid.New().String()[:8])),
		Name:       req.Name,
		RUT:        req.RUT,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	if err := h.Catalog.CreateSupplier(c.Request.Context(), supplier); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func (h *AdminHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.Catalog.ListSuppliers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suppliers)
}
