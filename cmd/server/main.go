package main

import (
	"context"

	"go.uber.org/zap"

	"brandistry/internal/api"
	"brandistry/internal/config"
	"brandistry/internal/persist"
	"brandistry/internal/service/assistant"
	"brandistry/internal/service/drive"
	"brandistry/internal/store"
	"brandistry/pkg/logger"
)

func main() {
	// Load config
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// Init Redis
	rdb := persist.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer rdb.Close()

	// Init Store
	persister := persist.NewRedisStore(rdb, cfg.Redis.KeyPrefix, log)
	s := store.New(persister, log)
	s.Load(context.Background())

	// Init upstream clients
	assistantClient := assistant.NewClient(cfg.Assistant.APIKey, cfg.Assistant.Models, log)
	driveClient := drive.NewClient(log)

	// Init Handlers
	authHandler := api.NewAuthHandler(s, cfg.JWT.Secret)
	userHandler := api.NewUserHandler(s)
	clientHandler := api.NewClientHandler(s)
	projectHandler := api.NewProjectHandler(s)
	taskHandler := api.NewTaskHandler(s)
	assetHandler := api.NewAssetHandler(s)
	chatHandler := api.NewChatHandler(s)
	notificationHandler := api.NewNotificationHandler(s)
	assistantHandler := api.NewAssistantHandler(s, assistantClient)
	driveHandler := api.NewDriveHandler(driveClient)
	settingsHandler := api.NewSettingsHandler(s)

	// Router
	router := api.NewRouter(
		authHandler,
		userHandler,
		clientHandler,
		projectHandler,
		taskHandler,
		assetHandler,
		chatHandler,
		notificationHandler,
		assistantHandler,
		driveHandler,
		settingsHandler,
		s,
		cfg.JWT.Secret,
	)

	// Start API server
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
