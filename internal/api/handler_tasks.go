package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/model"
	"brandistry/internal/store"
)

type TaskHandler struct {
	store *store.Store
}

func NewTaskHandler(s *store.Store) *TaskHandler {
	return &TaskHandler{store: s}
}

// List handles GET /tasks
func (h *TaskHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": h.store.Tasks()})
}

// Create handles POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var p store.TaskParams
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	task := h.store.AddTask(c.Request.Context(), c.GetString("user_id"), p)
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// Update handles PATCH /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var upd store.TaskUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.store.UpdateTask(c.Request.Context(), c.Param("id"), upd); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	task, _ := h.store.Task(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// UpdateStatus handles PATCH /tasks/:id/status, the kanban drag-and-drop path.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status model.TaskStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.store.UpdateTaskStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(req.Status)})
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
