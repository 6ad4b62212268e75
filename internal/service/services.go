package service

import (
	"github.com/mlevkov/teamdesk/internal/config"
	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	UserService    UserService
	ProjectService ProjectService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.TokenRepository, cfg, logger),
		SessionService: NewSessionService(storages.UserRepository, storages.TokenRepository, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		ProjectService: NewProjectService(storages.ProjectRepository, logger),
	}
}
