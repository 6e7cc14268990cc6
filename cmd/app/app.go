package app

import (
	"log"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/repository"
	"devconnect/internal/service"
	"devconnect/internal/storage"
	"devconnect/internal/token"
)

func App(cfg *config.Config) (*database.DB, *service.Service, *token.Manager) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	tokenManager := token.NewManager(cfg.JWTSecretKey, cfg.TokenDuration)

	services := service.NewService(repo, cfg, minioClient, tokenManager)

	return db, services, tokenManager
}
