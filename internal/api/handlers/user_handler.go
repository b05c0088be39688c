// server/internal/api/handlers/user_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taller-api-server/internal/auth"
	"taller-api-server/internal/models"
	"taller-api-server/internal/store"
)

type UserHandler struct {
	Profiles  store.ProfileStore
	Mechanics store.MechanicStore
	Auth      *auth.Manager
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Profiles.GetByUsername(c.Request.Context(), req.Username)
	if err != nil || !auth.CheckPasswordHash(req.Password, profile.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	if profile.Status != "active" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
		return
	}

	token, err := h.Auth.Generate(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"profileID": profile.ProfileID,
		"role":      profile.Role,
		"name":      profile.Name,
	})
}

type CreateUserRequest struct {
	Username string      `json:"username" binding:"required"`
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`

	// Mechanic registration extras; ignored for other roles.
	RUT         string `json:"rut"`
	Phone       string `json:"phone"`
	Specialty   string `json:"specialty"`
	HelperCount int    `json:"helperCount"`
}

// CreateUser registers a profile. A MECHANIC role additionally gets a
// Mechanic row linked through profileID, so later lookups never depend
// on display names.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.Role {
	case models.RoleAdmin, models.RoleReceptionist, models.RoleShopManager,
		models.RoleMechanic, models.RoleWarehouseManager:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown role %q", req.Role)})
		return
	}
	if req.Role == models.RoleMechanic && req.Specialty == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialty is required for mechanics"})
		return
	}
	if req.HelperCount < 0 || req.HelperCount > 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "helperCount must be between 0 and 2"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	profile := &models.UserProfile{
		ProfileID: fmt.Sprintf("USR-%s", strings.ToUpper(uuid.New().String()[:8])),
		Username:  req.Username,
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Role:      req.Role,
		Status:    "active",
		CreatedAt: time.Now(),
	}
	if err := h.Profiles.Create(c.Request.Context(), profile); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{
		"status":    "success",
		"profileID": profile.ProfileID,
		"role":      profile.Role,
	}

	if req.Role == models.RoleMechanic {
		mechanic := &models.Mechanic{
			MechanicID:  fmt.Sprintf("MEC-%s", strings.ToUpper(uuid.New().String()[:8])),
			ProfileID:   profile.ProfileID,
			Name:        req.Name,
			RUT:         req.RUT,
			Phone:       req.Phone,
			Specialty:   req.Specialty,
			HelperCount: req.HelperCount,
		}
		if err := h.Mechanics.Create(c.Request.Context(), mechanic); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response["mechanicID"] = mechanic.MechanicID
	}

	c.JSON(http.StatusCreated, response)
}

func (h *UserHandler) ListMechanics(c *gin.Context) {
	mechanics, err := h.Mechanics.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mechanics)
}
