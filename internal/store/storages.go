package store

import (
	"github.com/mlevkov/teamdesk/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository    UserRepository
	TokenRepository   TokenRepository
	ProjectRepository ProjectRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		TokenRepository:   NewTokenRepository(db, logger),
		ProjectRepository: NewProjectRepository(db, logger),
	}
}
