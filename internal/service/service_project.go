package service

import (
	"context"
	"fmt"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/store"
	"github.com/mlevkov/teamdesk/models"
)

// projectService is the concrete implementation of ProjectService.
type projectService struct {
	projectRepository store.ProjectRepository

	logger *logger.Logger
}

// NewProjectService constructs a ProjectService wired to the given
// repository.
func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

// List returns the projects visible to the requester. Administrators see
// every project; everybody else only the rows they own.
func (p *projectService) List(ctx context.Context, requester models.User) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	filter := store.ProjectFilter{}
	if !requester.IsAdmin {
		filter.OwnerID = &requester.UserID
	}

	projects, err := p.projectRepository.ListProjects(ctx, filter)
	if err != nil {
		log.Err(err).Int64("id", requester.UserID).Msg("project listing failed")
		return nil, fmt.Errorf("project listing failed: %w", err)
	}

	return projects, nil
}

// Create inserts a project owned by the requester.
//
// Returns *ValidationError if the name is empty.
func (p *projectService) Create(ctx context.Context, requester models.User, name string) (models.Project, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Int64("id", requester.UserID).Msg("project creation without a name")
		return models.Project{}, NewValidationError(MsgProjectNameEmpty)
	}

	project, err := p.projectRepository.CreateProject(ctx, models.Project{
		Name:    name,
		OwnerID: requester.UserID,
	})
	if err != nil {
		log.Err(err).Int64("id", requester.UserID).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return project, nil
}
