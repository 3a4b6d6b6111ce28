package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brandistry/internal/store"
	"brandistry/internal/util"
)

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 7 * 24 * time.Hour
)

type AuthHandler struct {
	store     *store.Store
	jwtSecret string
}

func NewAuthHandler(s *store.Store, jwtSecret string) *AuthHandler {
	return &AuthHandler{store: s, jwtSecret: jwtSecret}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.store.RegisterUser(c.Request.Context(), store.RegisterUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
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

// Login handles POST /login. "Remember me" lengthens the token TTL.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email      string `json:"email" binding:"required"`
		Password   string `json:"password" binding:"required"`
		RememberMe bool   `json:"remember_me"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	ttl := sessionTTL
	if req.RememberMe {
		ttl = rememberTTL
	}

	token, err := util.GenerateJWT(u.ID, h.jwtSecret, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

// Me handles GET /me, returning both identities of an impersonated session.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	actorID := c.GetString("actor_id")

	u, err := h.store.User(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	resp := gin.H{"user": u, "impersonating": false}
	if actorID != "" && actorID != userID {
		if actor, err := h.store.User(actorID); err == nil {
			resp["impersonating"] = true
			resp["real_user"] = actor
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /logout. Sessions are stateless tokens; the client
// discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// StartImpersonation handles POST /impersonate. The switch only succeeds when
// the target has approved an access request from this admin.
func (h *AuthHandler) StartImpersonation(c *gin.Context) {
	var req struct {
		TargetUserID string `json:"target_user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	actorID := c.GetString("actor_id")

	target, err := h.store.Impersonate(c.Request.Context(), actorID, req.TargetUserID)
	if err != nil {
		if errors.Is(err, store.ErrAccessNotApproved) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access not approved"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "impersonation denied"})
		return
	}

	token, err := util.GenerateImpersonationJWT(target.ID, actorID, h.jwtSecret, sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": target})
}

// StopImpersonation handles POST /impersonate/stop, returning a plain session
// for the real admin.
func (h *AuthHandler) StopImpersonation(c *gin.Context) {
	actorID := c.GetString("actor_id")

	u, err := h.store.User(actorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	token, err := util.GenerateJWT(u.ID, h.jwtSecret, sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}
