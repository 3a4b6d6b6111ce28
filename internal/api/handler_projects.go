package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/store"
)

type ProjectHandler struct {
	store *store.Store
}

func NewProjectHandler(s *store.Store) *ProjectHandler {
	return &ProjectHandler{store: s}
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": h.store.Projects()})
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.store.Project(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": p})
}

// Update handles PATCH /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var upd store.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.store.UpdateProject(c.Request.Context(), c.Param("id"), upd); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	p, _ := h.store.Project(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"project": p})
}

// Assign handles POST /projects/:id/assign
func (h *ProjectHandler) Assign(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.store.AssignProjectToWorker(c.Request.Context(), c.Param("id"), req.UserID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project or user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "assigned"})
}
