package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/store"
)

type ClientHandler struct {
	store *store.Store
}

func NewClientHandler(s *store.Store) *ClientHandler {
	return &ClientHandler{store: s}
}

// List handles GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clients": h.store.Clients()})
}

// Get handles GET /clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.store.Client(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// Assets handles GET /clients/:id/assets
func (h *ClientHandler) Assets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assets": h.store.AssetsByClient(c.Param("id"))})
}

// Register handles POST /clients (admin): onboards the client record plus its
// linked portal user.
func (h *ClientHandler) Register(c *gin.Context) {
	var req struct {
		Name            string  `json:"name"`
		Company         string  `json:"company"`
		Email           string  `json:"email"`
		Phone           string  `json:"phone"`
		Industry        string  `json:"industry"`
		BudgetAllocated float64 `json:"budget_allocated"`
		InitialBrief    string  `json:"initial_brief"`
		Password        string  `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	client, err := h.store.RegisterClient(c.Request.Context(), store.RegisterClientParams{
		Name:            req.Name,
		Company:         req.Company,
		Email:           req.Email,
		Phone:           req.Phone,
		Industry:        req.Industry,
		BudgetAllocated: req.BudgetAllocated,
		InitialBrief:    req.InitialBrief,
		Password:        req.Password,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to onboard client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client})
}
