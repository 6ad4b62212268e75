package store

import (
	"context"
	"fmt"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository].
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProject persists a new project and returns it with the
// server-assigned ProjectID.
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProject, project.Name, project.OwnerID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error: row is nil")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var saved models.Project
	if err := row.Scan(&saved.ProjectID, &saved.Name, &saved.OwnerID); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error: scanning error")
		return models.Project{}, err
	}

	return saved, nil
}

// ListProjects returns projects matching the filter, ordered by name
// ascending.
func (r *projectRepository) ListProjects(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProjectsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(&project.ProjectID, &project.Name, &project.OwnerID); err != nil {
			log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return projects, nil
}
