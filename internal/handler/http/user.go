package http

import (
	"net/http"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := requester(r)
	if !ok {
		log.Error().Msg("no requester in context, session middleware missing")
		h.writeError(w, r, errNoRequesterInContext)
		return
	}

	users, err := h.services.UserService.List(ctx, caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, r, &models.EnvelopeData{UserList: users})
}
