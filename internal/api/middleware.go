package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brandistry/internal/model"
	"brandistry/internal/store"
	"brandistry/internal/util"
	"brandistry/pkg/metrics"
)

// AuthMiddleware validates the bearer token and exposes the session identity:
// user_id is the effective user, actor_id the real user behind an
// impersonated session.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		id, err := util.ParseJWT(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", id.UserID)
		c.Set("actor_id", id.ActorID)

		c.Next()
	}
}

// RequireRole gates a route on the real actor's role, so an admin
// impersonating a worker keeps admin-only access and a worker can never
// borrow it.
func RequireRole(s *store.Store, role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetString("actor_id")
		if actorID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		u, err := s.User(actorID)
		if err != nil || u.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// MetricsMiddleware records request latency per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			fmt.Sprintf("%d", c.Writer.Status()),
			time.Since(start),
		)
	}
}
