package http

import (
	"encoding/json"
	"net/http"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/service"
	"github.com/mlevkov/teamdesk/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := requester(r)
	if !ok {
		log.Error().Msg("no requester in context, session middleware missing")
		h.writeError(w, r, errNoRequesterInContext)
		return
	}

	projects, err := h.services.ProjectService.List(ctx, caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, r, &models.EnvelopeData{ProjectList: projects})
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := requester(r)
	if !ok {
		log.Error().Msg("no requester in context, session middleware missing")
		h.writeError(w, r, errNoRequesterInContext)
		return
	}

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.NewValidationError(service.MsgProjectNameEmpty))
		return
	}

	project, err := h.services.ProjectService.Create(ctx, caller, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", project.ProjectID).Int64("owner", caller.UserID).Msg("project created")

	h.writeData(w, r, &models.EnvelopeData{ProjectInfo: &project})
}
