package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/model"
	"brandistry/internal/store"
)

type AssetHandler struct {
	store *store.Store
}

func NewAssetHandler(s *store.Store) *AssetHandler {
	return &AssetHandler{store: s}
}

// List handles GET /assets
func (h *AssetHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assets": h.store.Assets()})
}

// Create handles POST /assets: registers an uploaded asset in the review
// workflow, starting at DRAFT.
func (h *AssetHandler) Create(c *gin.Context) {
	var req struct {
		Title     string          `json:"title" binding:"required"`
		Type      model.AssetType `json:"type"`
		URL       string          `json:"url"`
		ProjectID string          `json:"project_id" binding:"required"`
		ClientID  string          `json:"client_id"`
		Tags      []string        `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	asset := h.store.AddAsset(c.Request.Context(), store.AssetParams{
		Title:      req.Title,
		Type:       req.Type,
		URL:        req.URL,
		ProjectID:  req.ProjectID,
		ClientID:   req.ClientID,
		UploadedBy: c.GetString("user_id"),
		Tags:       req.Tags,
	})

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateStatus handles PATCH /assets/:id/status. Transitioning to DELIVERED
// is what advances the owning client's delivered counter.
func (h *AssetHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status model.AssetStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.store.UpdateAssetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(req.Status)})
}

// Comment handles POST /assets/:id/comments
func (h *AssetHandler) Comment(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	comment, err := h.store.AddAssetComment(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Content)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete handles DELETE /assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteAsset(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
