package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// UserRepository persists user accounts. Emails are expected to be
// normalized by the caller.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with UserID and
	// CreatedAt filled in. Returns [ErrEmailAlreadyExists] when the email is
	// taken; an existing record is never overwritten.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TaskRepository persists tasks. Every method that addresses a single task
// filters by both the task id and the owner id.
type TaskRepository interface {
	ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	FindTask(ctx context.Context, taskID, ownerID int64) (models.Task, error)
	UpdateTask(ctx context.Context, taskID, ownerID int64, update models.UpdateTaskRequest) (models.Task, error)
	ToggleTask(ctx context.Context, taskID, ownerID int64) (models.Task, error)
	DeleteTask(ctx context.Context, taskID, ownerID int64) error
}

// ErrorClassificator maps a driver error to a backend-independent [ErrorKind].
type ErrorClassificator interface {
	Classify(err error) ErrorKind
}
