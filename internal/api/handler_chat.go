package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/model"
	"brandistry/internal/store"
)

type ChatHandler struct {
	store *store.Store
}

func NewChatHandler(s *store.Store) *ChatHandler {
	return &ChatHandler{store: s}
}

// List handles GET /chats: every session the caller participates in.
func (h *ChatHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.store.Sessions(c.GetString("user_id"))})
}

// CreateDirect handles POST /chats/direct. Repeated calls for the same pair
// return the existing session.
func (h *ChatHandler) CreateDirect(c *gin.Context) {
	var req struct {
		TargetUserID string `json:"target_user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session := h.store.CreateDirectSession(c.Request.Context(), c.GetString("user_id"), req.TargetUserID)
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CreateGroup handles POST /chats/group
func (h *ChatHandler) CreateGroup(c *gin.Context) {
	var req struct {
		Name         string   `json:"name" binding:"required"`
		Participants []string `json:"participants"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session := h.store.CreateGroupSession(c.Request.Context(), c.GetString("user_id"), req.Name, req.Participants)
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Get handles GET /chats/:id, restricted to participants.
func (h *ChatHandler) Get(c *gin.Context) {
	session, err := h.store.Session(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Update handles PATCH /chats/:id
func (h *ChatHandler) Update(c *gin.Context) {
	var upd store.SessionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.store.UpdateSession(c.Request.Context(), c.Param("id"), upd); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Send handles POST /chats/:id/messages
func (h *ChatHandler) Send(c *gin.Context) {
	var req struct {
		Content string               `json:"content" binding:"required"`
		Blocks  []model.MessageBlock `json:"blocks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.store.SendMessage(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Content, req.Blocks)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// EditMessage handles PATCH /chats/:id/messages/:messageId
func (h *ChatHandler) EditMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.store.EditMessage(c.Request.Context(), c.Param("id"), c.Param("messageId"), req.Content); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteMessage handles DELETE /chats/:id/messages/:messageId
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	if err := h.store.DeleteMessage(c.Request.Context(), c.Param("id"), c.Param("messageId")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// MarkRead handles POST /chats/:id/read
func (h *ChatHandler) MarkRead(c *gin.Context) {
	if err := h.store.MarkChatRead(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// ToggleRead handles POST /chats/:id/toggle-read
func (h *ChatHandler) ToggleRead(c *gin.Context) {
	if err := h.store.ToggleChatReadStatus(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "toggled"})
}
