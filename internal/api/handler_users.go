package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/model"
	"brandistry/internal/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": h.store.Users()})
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.store.User(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// Register handles POST /users (admin)
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Name      string         `json:"name"`
		Email     string         `json:"email"`
		Password  string         `json:"password"`
		Role      model.UserRole `json:"role"`
		Specialty string         `json:"specialty"`
		Company   string         `json:"company"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.store.RegisterUser(c.Request.Context(), store.RegisterUserParams{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Specialty: req.Specialty,
		Company:   req.Company,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

// Edit handles PATCH /users/:id. Non-admins may only patch their own record
// and may never change a role.
func (h *UserHandler) Edit(c *gin.Context) {
	var upd store.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	actor, err := h.store.User(c.GetString("actor_id"))
	if err != nil || actor.Role != model.RoleAdmin {
		if c.Param("id") != c.GetString("user_id") {
			c.JSON(http.StatusForbidden, gin.H{"error": "operation requires admin role"})
			return
		}
		if upd.Role != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "role changes require admin role"})
			return
		}
	}

	if err := h.store.EditUser(c.Request.Context(), c.Param("id"), upd); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	u, _ := h.store.User(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// Delete handles DELETE /users/:id (admin)
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// RequestAccess handles POST /users/:id/access-requests (admin). The target
// must approve it before impersonation can start.
func (h *UserHandler) RequestAccess(c *gin.Context) {
	actorID := c.GetString("actor_id")

	err := h.store.RequestUserAccess(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "operation requires admin role"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "requested"})
}

// ResolveAccessRequest handles POST /access-requests/:requesterId/resolve.
// Only the target user can resolve requests filed against them.
func (h *UserHandler) ResolveAccessRequest(c *gin.Context) {
	var req struct {
		Status model.AccessRequestStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Status != model.AccessApproved && req.Status != model.AccessRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be APPROVED or REJECTED"})
		return
	}

	userID := c.GetString("user_id")
	if err := h.store.ResolveAccessRequest(c.Request.Context(), userID, c.Param("requesterId"), req.Status); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "access request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(req.Status)})
}
