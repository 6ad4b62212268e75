package http

import (
	"errors"
	"net/http"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/service"
	"github.com/mlevkov/teamdesk/internal/utils"
	"github.com/mlevkov/teamdesk/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeData writes a successful envelope with the given payload.
func (h *Handler) writeData(w http.ResponseWriter, r *http.Request, data *models.EnvelopeData) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.Envelope{Code: http.StatusOK, Data: data}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response envelope")
	}
}

// writeError maps a service-layer error onto the transport status code and
// writes the error envelope.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	code, msgs := classifyError(err)
	if code == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	}

	if _, writeErr := utils.WriteJSON(w, models.NewErrorEnvelope(code, msgs...), code); writeErr != nil {
		log.Err(writeErr).Msg("error writing error envelope")
	}
}

// classifyError resolves an error to its HTTP status code and the messages
// carried in the envelope: validation failures map to 400 with their
// accumulated messages, authentication and privilege failures to 403, and
// everything else to an opaque 500.
func classifyError(err error) (int, []string) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Messages
	case errors.Is(err, service.ErrMissingToken),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, []string{err.Error()}
	default:
		return http.StatusInternalServerError, []string{msgInternalError}
	}
}

const msgInternalError = "there was an error on our side, please try again later"
