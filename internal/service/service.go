package service

import (
	"devconnect/internal/config"
	"devconnect/internal/repository"
	"devconnect/internal/storage"
	"devconnect/internal/token"
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Profile ProfileService
	User    UserService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, tm *token.Manager) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, tm),
		Post:    NewPostService(rep.Post, rep.User),
		Profile: NewProfileService(rep.Profile),
		User:    NewUserService(rep.User, storage, cfg),
	}
}
