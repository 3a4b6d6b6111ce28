package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/store"
)

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// GetPreferences handles GET /preferences
func (h *SettingsHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"preferences": h.store.Preferences(c.GetString("user_id"))})
}

// UpdatePreferences handles PATCH /preferences
func (h *SettingsHandler) UpdatePreferences(c *gin.Context) {
	var upd store.PreferencesUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	prefs := h.store.UpdatePreferences(c.GetString("user_id"), upd)
	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// GetSettings handles GET /settings (admin).
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.store.Settings()})
}

// UpdateSettings handles PATCH /settings (admin).
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var upd store.SettingsUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	settings := h.store.UpdateSettings(upd)
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
