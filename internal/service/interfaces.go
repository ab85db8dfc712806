package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=TaskServiceWrapper

// AuthService registers users, checks credentials and issues and verifies
// bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService gives an authenticated owner access to their own tasks only.
// ownerID always comes from the verified token, never from the request body.
type TaskService interface {
	ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error)
	CreateTask(ctx context.Context, ownerID int64, request models.CreateTaskRequest) (models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID int64, request models.UpdateTaskRequest) (models.Task, error)
	ToggleTask(ctx context.Context, ownerID, taskID int64) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// validating.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}
