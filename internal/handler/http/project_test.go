package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkov/teamdesk/internal/service"
	"github.com/mlevkov/teamdesk/models"
)

func TestListProjectsHandler_Member(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	member := models.User{UserID: 2, Username: "bob"}

	mocks.session.EXPECT().
		Validate(gomock.Any(), "bob", "abcdef0123456789").
		Return(member, nil)

	mocks.projects.EXPECT().
		List(gomock.Any(), member).
		Return([]models.Project{{ProjectID: 2, Name: "borealis", OwnerID: 2}}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newSessionRequest(http.MethodGet, "/project/list", "bob", "abcdef0123456789"))

	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	require.NotNil(t, envelope.Data)
	require.Len(t, envelope.Data.ProjectList, 1)
	assert.Equal(t, int64(2), envelope.Data.ProjectList[0].OwnerID)
}

func TestListProjectsHandler_EmptyList(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	member := models.User{UserID: 2, Username: "bob"}

	mocks.session.EXPECT().
		Validate(gomock.Any(), "bob", "abcdef0123456789").
		Return(member, nil)

	mocks.projects.EXPECT().
		List(gomock.Any(), member).
		Return([]models.Project{}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newSessionRequest(http.MethodGet, "/project/list", "bob", "abcdef0123456789"))

	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	assert.Empty(t, envelope.Error)
	require.NotNil(t, envelope.Data)
	assert.Empty(t, envelope.Data.ProjectList)
}

func TestCreateProjectHandler_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	member := models.User{UserID: 2, Username: "bob"}

	mocks.session.EXPECT().
		Validate(gomock.Any(), "bob", "abcdef0123456789").
		Return(member, nil)

	mocks.projects.EXPECT().
		Create(gomock.Any(), member, "atlas").
		Return(models.Project{ProjectID: 5, Name: "atlas", OwnerID: 2}, nil)

	request := httptest.NewRequest(http.MethodPost, "/project/create", strings.NewReader(`{"name":"atlas"}`))
	request.Header.Set(userHeader, "bob")
	request.Header.Set(tokenHeader, "abcdef0123456789")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	require.NotNil(t, envelope.Data)
	require.NotNil(t, envelope.Data.ProjectInfo)
	assert.Equal(t, int64(5), envelope.Data.ProjectInfo.ProjectID)
	assert.Equal(t, "atlas", envelope.Data.ProjectInfo.Name)
}

func TestCreateProjectHandler_EmptyName(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	member := models.User{UserID: 2, Username: "bob"}

	mocks.session.EXPECT().
		Validate(gomock.Any(), "bob", "abcdef0123456789").
		Return(member, nil)

	mocks.projects.EXPECT().
		Create(gomock.Any(), member, "").
		Return(models.Project{}, service.NewValidationError(service.MsgProjectNameEmpty))

	request := httptest.NewRequest(http.MethodPost, "/project/create", strings.NewReader(`{"name":""}`))
	request.Header.Set(userHeader, "bob")
	request.Header.Set(tokenHeader, "abcdef0123456789")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	assert.Equal(t, []string{service.MsgProjectNameEmpty}, envelope.Messages())
}
