package handlers

import (
	"github.com/go-playground/validator/v10"

	"devconnect/internal/config"
	"devconnect/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	ProfileService service.ProfileService
	UserService    service.UserService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		PostService:    services.Post,
		ProfileService: services.Profile,
		UserService:    services.User,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
