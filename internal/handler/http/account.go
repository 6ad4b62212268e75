package http

import (
	"encoding/json"
	"net/http"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/service"
	"github.com/mlevkov/teamdesk/internal/utils"
	"github.com/mlevkov/teamdesk/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.NewValidationError(service.MsgRequiredFieldEmpty))
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req.Username, req.Password, req.PasswordConfirmation)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	h.writeData(w, r, &models.EnvelopeData{AccountInfo: &registeredUser})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.NewValidationError(service.MsgRequiredFieldEmpty))
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeData(w, r, &models.EnvelopeData{
		AccountInfo: &foundUser,
		TokenInfo:   &token,
	})
}

// requester pulls the session-resolved user out of the request context.
// It only returns false if the session middleware did not run, which is a
// routing mistake rather than a client error.
func requester(r *http.Request) (models.User, bool) {
	return utils.GetRequesterFromContext(r.Context())
}
