package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/mock"
	"github.com/mlevkov/teamdesk/internal/service"
	"github.com/mlevkov/teamdesk/models"
)

type handlerMocks struct {
	auth     *mock.MockAuthService
	session  *mock.MockSessionService
	users    *mock.MockUserService
	projects *mock.MockProjectService
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	ctrl := gomock.NewController(t)

	mocks := handlerMocks{
		auth:     mock.NewMockAuthService(ctrl),
		session:  mock.NewMockSessionService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		projects: mock.NewMockProjectService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    mocks.auth,
		SessionService: mocks.session,
		UserService:    mocks.users,
		ProjectService: mocks.projects,
	}, logger.Nop())

	return h, mocks
}

func decodeEnvelope(t *testing.T, body []byte) models.Envelope {
	t.Helper()

	var envelope models.Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

func TestRegisterHandler_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().
		Register(gomock.Any(), "alice", "password123", "password123").
		Return(models.User{UserID: 1, Username: "alice"}, nil)

	body := `{"username":"alice","password":"password123","passwordConfirmation":"password123"}`
	request := httptest.NewRequest(http.MethodPost, "/account/register", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	assert.Equal(t, http.StatusOK, envelope.Code)
	assert.Empty(t, envelope.Error)
	require.NotNil(t, envelope.Data)
	require.NotNil(t, envelope.Data.AccountInfo)
	assert.Equal(t, int64(1), envelope.Data.AccountInfo.UserID)
	assert.Equal(t, "alice", envelope.Data.AccountInfo.Username)
}

func TestRegisterHandler_ValidationFailure(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().
		Register(gomock.Any(), "alice", "short", "different").
		Return(models.User{}, service.NewValidationError(service.MsgPasswordMismatch, service.MsgPasswordTooShort))

	body := `{"username":"alice","password":"short","passwordConfirmation":"different"}`
	request := httptest.NewRequest(http.MethodPost, "/account/register", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	assert.Equal(t, http.StatusBadRequest, envelope.Code)
	assert.Equal(t, []string{service.MsgPasswordMismatch, service.MsgPasswordTooShort}, envelope.Messages())
	assert.Nil(t, envelope.Data)
}

func TestRegisterHandler_MalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	request := httptest.NewRequest(http.MethodPost, "/account/register", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	assert.Equal(t, []string{service.MsgRequiredFieldEmpty}, envelope.Messages())
}

func TestLoginHandler_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().
		Login(gomock.Any(), "alice", "password123").
		Return(
			models.User{UserID: 1, Username: "alice"},
			models.Token{TokenID: 7, Value: "abcdef0123456789", UserID: 1},
			nil,
		)

	body := `{"username":"alice","password":"password123"}`
	request := httptest.NewRequest(http.MethodPost, "/account/login", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	require.NotNil(t, envelope.Data)
	require.NotNil(t, envelope.Data.AccountInfo)
	require.NotNil(t, envelope.Data.TokenInfo)
	assert.Equal(t, "abcdef0123456789", envelope.Data.TokenInfo.Value)
	assert.Equal(t, int64(1), envelope.Data.TokenInfo.UserID)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().
		Login(gomock.Any(), "alice", "not-the-password").
		Return(models.User{}, models.Token{}, service.ErrWrongPassword)

	body := `{"username":"alice","password":"not-the-password"}`
	request := httptest.NewRequest(http.MethodPost, "/account/login", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusForbidden, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	assert.Equal(t, []string{service.ErrWrongPassword.Error()}, envelope.Messages())
}

func TestLoginHandler_UnexpectedError(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().
		Login(gomock.Any(), "alice", "password123").
		Return(models.User{}, models.Token{}, assert.AnError)

	body := `{"username":"alice","password":"password123"}`
	request := httptest.NewRequest(http.MethodPost, "/account/login", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	envelope := decodeEnvelope(t, recorder.Body.Bytes())
	assert.Equal(t, []string{msgInternalError}, envelope.Messages())
}
