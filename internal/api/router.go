package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brandistry/internal/model"
	"brandistry/internal/store"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	clientHandler *ClientHandler,
	projectHandler *ProjectHandler,
	taskHandler *TaskHandler,
	assetHandler *AssetHandler,
	chatHandler *ChatHandler,
	notificationHandler *NotificationHandler,
	assistantHandler *AssistantHandler,
	driveHandler *DriveHandler,
	settingsHandler *SettingsHandler,
	s *store.Store,
	jwtSecret string,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.GET("/me", authHandler.Me)
		auth.POST("/logout", authHandler.Logout)

		auth.GET("/users", userHandler.List)
		auth.GET("/users/:id", userHandler.Get)
		auth.PATCH("/users/:id", userHandler.Edit)
		auth.POST("/access-requests/:requesterId/resolve", userHandler.ResolveAccessRequest)

		auth.GET("/clients", clientHandler.List)
		auth.GET("/clients/:id", clientHandler.Get)
		auth.GET("/clients/:id/assets", clientHandler.Assets)

		auth.GET("/projects", projectHandler.List)
		auth.GET("/projects/:id", projectHandler.Get)
		auth.PATCH("/projects/:id", projectHandler.Update)
		auth.POST("/projects/:id/assign", projectHandler.Assign)

		auth.GET("/tasks", taskHandler.List)
		auth.POST("/tasks", taskHandler.Create)
		auth.PATCH("/tasks/:id", taskHandler.Update)
		auth.PATCH("/tasks/:id/status", taskHandler.UpdateStatus)
		auth.DELETE("/tasks/:id", taskHandler.Delete)

		auth.GET("/assets", assetHandler.List)
		auth.POST("/assets", assetHandler.Create)
		auth.PATCH("/assets/:id/status", assetHandler.UpdateStatus)
		auth.POST("/assets/:id/comments", assetHandler.Comment)
		auth.DELETE("/assets/:id", assetHandler.Delete)

		auth.GET("/chats", chatHandler.List)
		auth.POST("/chats/direct", chatHandler.CreateDirect)
		auth.POST("/chats/group", chatHandler.CreateGroup)
		auth.GET("/chats/:id", chatHandler.Get)
		auth.PATCH("/chats/:id", chatHandler.Update)
		auth.POST("/chats/:id/messages", chatHandler.Send)
		auth.PATCH("/chats/:id/messages/:messageId", chatHandler.EditMessage)
		auth.DELETE("/chats/:id/messages/:messageId", chatHandler.DeleteMessage)
		auth.POST("/chats/:id/read", chatHandler.MarkRead)
		auth.POST("/chats/:id/toggle-read", chatHandler.ToggleRead)

		auth.GET("/notifications", notificationHandler.List)
		auth.POST("/notifications/:id/read", notificationHandler.MarkRead)

		auth.GET("/preferences", settingsHandler.GetPreferences)
		auth.PATCH("/preferences", settingsHandler.UpdatePreferences)

		auth.GET("/assistant/team", assistantHandler.Team)
		auth.POST("/assistant/chat", assistantHandler.Chat)

		auth.POST("/drive/token", driveHandler.SetToken)
		auth.GET("/drive/status", driveHandler.Status)
		auth.GET("/drive/files", driveHandler.List)
		auth.POST("/drive/files", driveHandler.Upload)
		auth.POST("/drive/folders", driveHandler.CreateFolder)
		auth.DELETE("/drive/files/:id", driveHandler.Delete)

		// Admin-only surface
		admin := auth.Group("/")
		admin.Use(RequireRole(s, model.RoleAdmin))
		{
			admin.POST("/users", userHandler.Register)
			admin.DELETE("/users/:id", userHandler.Delete)
			admin.POST("/users/:id/access-requests", userHandler.RequestAccess)
			admin.POST("/impersonate", authHandler.StartImpersonation)
			admin.POST("/impersonate/stop", authHandler.StopImpersonation)
			admin.POST("/clients", clientHandler.Register)
			admin.POST("/assistant/intent", assistantHandler.Intent)
			admin.POST("/assistant/orchestrate", assistantHandler.Orchestrate)
			admin.GET("/settings", settingsHandler.GetSettings)
			admin.PATCH("/settings", settingsHandler.UpdateSettings)
		}
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
