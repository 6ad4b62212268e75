package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/mock"
	"github.com/mlevkov/teamdesk/internal/store"
	"github.com/mlevkov/teamdesk/models"
)

func newTestProjectService(t *testing.T) (ProjectService, *mock.MockProjectRepository) {
	ctrl := gomock.NewController(t)
	projects := mock.NewMockProjectRepository(ctrl)

	return NewProjectService(projects, logger.Nop()), projects
}

func TestProjectList_AdminSeesAll(t *testing.T) {
	svc, projects := newTestProjectService(t)
	ctx := context.Background()

	admin := models.User{UserID: 1, Username: "alice", IsAdmin: true}

	projects.EXPECT().
		ListProjects(ctx, store.ProjectFilter{}).
		Return([]models.Project{
			{ProjectID: 1, Name: "atlas", OwnerID: 1},
			{ProjectID: 2, Name: "borealis", OwnerID: 2},
		}, nil)

	listed, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestProjectList_NonAdminFilteredToOwn(t *testing.T) {
	svc, projects := newTestProjectService(t)
	ctx := context.Background()

	requester := models.User{UserID: 2, Username: "bob"}

	projects.EXPECT().
		ListProjects(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.ProjectFilter) ([]models.Project, error) {
			require.NotNil(t, filter.OwnerID)
			assert.Equal(t, requester.UserID, *filter.OwnerID)
			return []models.Project{{ProjectID: 2, Name: "borealis", OwnerID: 2}}, nil
		})

	listed, err := svc.List(ctx, requester)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, requester.UserID, listed[0].OwnerID)
}

func TestProjectCreate_Success(t *testing.T) {
	svc, projects := newTestProjectService(t)
	ctx := context.Background()

	requester := models.User{UserID: 2, Username: "bob"}

	projects.EXPECT().
		CreateProject(ctx, models.Project{Name: "atlas", OwnerID: 2}).
		Return(models.Project{ProjectID: 5, Name: "atlas", OwnerID: 2}, nil)

	created, err := svc.Create(ctx, requester, "atlas")
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ProjectID)
	assert.Equal(t, requester.UserID, created.OwnerID)
}

func TestProjectCreate_EmptyName(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.User{UserID: 2}, "")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{MsgProjectNameEmpty}, validationErr.Messages)
}

func TestProjectCreate_StorageFailure(t *testing.T) {
	svc, projects := newTestProjectService(t)
	ctx := context.Background()

	projects.EXPECT().
		CreateProject(ctx, gomock.Any()).
		Return(models.Project{}, errors.New("connection reset"))

	_, err := svc.Create(ctx, models.User{UserID: 2}, "atlas")
	require.Error(t, err)
}
