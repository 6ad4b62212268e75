package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/mlevkov/teamdesk/internal/config"
	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu       sync.RWMutex
	username string
	token    string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSession implements [ServerAdapter]. It stores the whitespace-trimmed
// credentials for the session headers of subsequent authenticated requests.
func (h *httpServerAdapter) SetSession(username, token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.username = strings.TrimSpace(username)
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) sessionHeaders() map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return map[string]string{
		"user":  h.username,
		"token": h.token,
	}
}

func (h *httpServerAdapter) Register(ctx context.Context, username, password, passwordConfirmation string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{
			Username:             username,
			Password:             password,
			PasswordConfirmation: passwordConfirmation,
		}).
		Post("/account/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return models.User{}, err
	}
	if envelope.Data == nil || envelope.Data.AccountInfo == nil {
		return models.User{}, errors.New("register response without account info")
	}

	return *envelope.Data.AccountInfo, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.User, models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Username: username, Password: password}).
		Post("/account/login")
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("login request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	if envelope.Data == nil || envelope.Data.AccountInfo == nil || envelope.Data.TokenInfo == nil {
		return models.User{}, models.Token{}, errors.New("login response without account/token info")
	}

	h.SetSession(envelope.Data.AccountInfo.Username, envelope.Data.TokenInfo.Value)

	return *envelope.Data.AccountInfo, *envelope.Data.TokenInfo, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(h.sessionHeaders()).
		Get("/user/list")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, errors.New("user list response without data")
	}

	return envelope.Data.UserList, nil
}

func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(h.sessionHeaders()).
		Get("/project/list")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, errors.New("project list response without data")
	}

	return envelope.Data.ProjectList, nil
}

func (h *httpServerAdapter) CreateProject(ctx context.Context, name string) (models.Project, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(h.sessionHeaders()).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateProjectRequest{Name: name}).
		Post("/project/create")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return models.Project{}, err
	}
	if envelope.Data == nil || envelope.Data.ProjectInfo == nil {
		return models.Project{}, errors.New("create project response without project info")
	}

	return *envelope.Data.ProjectInfo, nil
}

// decodeEnvelope parses the uniform response envelope and converts error
// envelopes into *RequestError values.
func decodeEnvelope(resp *resty.Response) (models.Envelope, error) {
	var envelope models.Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Envelope{}, fmt.Errorf("decoding response envelope: %w", err)
	}

	if resp.IsError() || len(envelope.Error) > 0 {
		return models.Envelope{}, &RequestError{
			Code:     resp.StatusCode(),
			Messages: envelope.Messages(),
		}
	}

	return envelope, nil
}
