// server/internal/api/handlers/notification_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller-api-server/internal/service"
)

type NotificationHandler struct {
	Center *service.NotificationCenter
}

func (h *NotificationHandler) My(c *gin.Context) {
	notifications, err := h.Center.ListForRecipient(c.Request.Context(), callerProfileID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkRead only touches the caller's own notifications.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Center.MarkRead(c.Request.Context(), c.Param("id"), callerProfileID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
