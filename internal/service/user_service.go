package service

import (
	"context"
	"fmt"
	"io"

	"devconnect/internal/config"
	"devconnect/internal/repository"
	"devconnect/internal/storage"
)

type UserService interface {
	UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

// UploadAvatar кладет файл в MinIO и сохраняет URL в записи пользователя.
// Загруженный аватар заменяет gravatar, выданный при регистрации.
func (s *userService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	objectName, avatarURL, err := s.storage.UploadAvatar(ctx, user.UserID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки аватара в MinIO: %w", err)
	}

	err = s.userRepo.UpdateAvatar(ctx, user.UserID, avatarURL)
	if err != nil {
		s.storage.DeleteAvatar(ctx, objectName)
		return "", fmt.Errorf("ошибка сохранения аватара в БД: %w", err)
	}

	return avatarURL, nil
}
