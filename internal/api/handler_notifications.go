package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/store"
)

type NotificationHandler struct {
	store *store.Store
}

func NewNotificationHandler(s *store.Store) *NotificationHandler {
	return &NotificationHandler{store: s}
}

// List handles GET /notifications: the caller's inbox, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.store.Notifications(c.GetString("user_id"))})
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.store.MarkNotificationRead(c.GetString("user_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
