package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const tasksPath = "/api/todos"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// request timeout. A token from the configuration is used as-is.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized returns a request carrying the bearer token.
func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// do sends the request and maps transport and status failures.
func (h *httpServerAdapter) do(op string, req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("server rejected request")
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func taskPath(taskID int64) string {
	return tasksPath + "/" + strconv.FormatInt(taskID, 10)
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.UserResponse, error) {
	var user models.UserResponse
	req := h.client.R().SetContext(ctx).SetBody(credentials).SetResult(&user)
	if err := h.do("register", req, resty.MethodPost, "/api/register"); err != nil {
		return models.UserResponse{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var login models.LoginResponse
	req := h.client.R().SetContext(ctx).SetBody(credentials).SetResult(&login)
	if err := h.do("login", req, resty.MethodPost, "/api/login"); err != nil {
		return "", err
	}
	if login.Token == "" {
		return "", fmt.Errorf("login: %w", ErrNoToken)
	}

	h.SetToken(login.Token)
	return login.Token, nil
}

func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return nil, err
	}

	tasks := []models.Task{}
	if err = h.do("list tasks", req.SetResult(&tasks), resty.MethodGet, tasksPath); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, request models.CreateTaskRequest) (models.Task, error) {
	return h.taskCall(ctx, "create task", resty.MethodPost, tasksPath, request)
}

func (h *httpServerAdapter) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	return h.taskCall(ctx, "get task", resty.MethodGet, taskPath(taskID), nil)
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID int64, request models.UpdateTaskRequest) (models.Task, error) {
	return h.taskCall(ctx, "update task", resty.MethodPut, taskPath(taskID), request)
}

func (h *httpServerAdapter) ToggleTask(ctx context.Context, taskID int64) (models.Task, error) {
	return h.taskCall(ctx, "toggle task", resty.MethodPatch, taskPath(taskID)+"/toggle", nil)
}

// taskCall performs an authenticated request whose response is a single task.
func (h *httpServerAdapter) taskCall(ctx context.Context, op, method, path string, body any) (models.Task, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.Task{}, err
	}
	if body != nil {
		req.SetBody(body)
	}

	var task models.Task
	if err = h.do(op, req.SetResult(&task), method, path); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID int64) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}
	return h.do("delete task", req, resty.MethodDelete, taskPath(taskID))
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	return h.do("health", h.client.R().SetContext(ctx), resty.MethodGet, "/api/health")
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("version: %w", err)
	}
	return strings.TrimSpace(resp.String()), nil
}
