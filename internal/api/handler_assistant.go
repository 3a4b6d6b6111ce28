package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/model"
	"brandistry/internal/service/assistant"
	"brandistry/internal/store"
)

type AssistantHandler struct {
	store     *store.Store
	assistant *assistant.Client
}

func NewAssistantHandler(s *store.Store, a *assistant.Client) *AssistantHandler {
	return &AssistantHandler{store: s, assistant: a}
}

// Team handles GET /assistant/team: the specialist persona catalog.
func (h *AssistantHandler) Team(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"team": assistant.TeamMembers()})
}

// Chat handles POST /assistant/chat: a conversational turn with one persona.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req struct {
		MemberID string              `json:"member_id"`
		Message  string              `json:"message" binding:"required"`
		History  []model.ChatMessage `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	member := assistant.TeamMember(req.MemberID)
	reply := h.assistant.Respond(c.Request.Context(), req.Message, req.History, member)

	c.JSON(http.StatusOK, gin.H{"member_id": member.ID, "reply": reply})
}

// Intent handles POST /assistant/intent: maps an admin command onto a tagged
// action and, when the caller asks for it, executes the action against the
// store in the same call.
func (h *AssistantHandler) Intent(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
		Execute bool   `json:"execute"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	action := h.assistant.AnalyzeIntent(c.Request.Context(), req.Message, h.contextData())

	executed := false
	if req.Execute && action.Type != model.ActionNone {
		if err := h.store.ExecuteAction(c.Request.Context(), c.GetString("actor_id"), action); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "action could not be applied", "action": action})
			return
		}
		executed = true
	}

	c.JSON(http.StatusOK, gin.H{"action": action, "executed": executed})
}

// Orchestrate handles POST /assistant/orchestrate: a planning call that
// returns summary text plus plan steps.
func (h *AssistantHandler) Orchestrate(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	plan := h.assistant.Orchestrate(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{"text": plan.Text, "steps": plan.Steps})
}

// contextData summarizes the entity population so the model can resolve
// names to ids.
func (h *AssistantHandler) contextData() string {
	summary := struct {
		Users    []model.User    `json:"users"`
		Projects []model.Project `json:"projects"`
		Tasks    []model.Task    `json:"tasks"`
	}{
		Users:    h.store.Users(),
		Projects: h.store.Projects(),
		Tasks:    h.store.Tasks(),
	}
	b, err := json.Marshal(summary)
	if err != nil {
		return "{}"
	}
	return string(b)
}
