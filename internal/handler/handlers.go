package handler

import (
	"github.com/mlevkov/teamdesk/internal/handler/http"
	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
