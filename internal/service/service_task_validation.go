package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskValidationService decorates a TaskService with input checks. Requests
// that fail never reach the wrapped service.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

func (v *TaskValidationService) Wrap(wrapped TaskService) TaskService {
	v.inner = wrapped
	return v
}

func checkIDs(ownerID int64, taskIDs ...int64) error {
	if ownerID <= 0 {
		return ErrNoOwner
	}
	for _, id := range taskIDs {
		if id <= 0 {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidTaskID)
		}
	}
	return nil
}

func (v *TaskValidationService) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	if err := checkIDs(ownerID); err != nil {
		return nil, err
	}
	return v.inner.ListTasks(ctx, ownerID)
}

func (v *TaskValidationService) CreateTask(ctx context.Context, ownerID int64, request models.CreateTaskRequest) (models.Task, error) {
	if err := checkIDs(ownerID); err != nil {
		return models.Task{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateTask(ctx, ownerID, request)
}

func (v *TaskValidationService) GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	if err := checkIDs(ownerID, taskID); err != nil {
		return models.Task{}, err
	}
	return v.inner.GetTask(ctx, ownerID, taskID)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, ownerID, taskID int64, request models.UpdateTaskRequest) (models.Task, error) {
	if err := checkIDs(ownerID, taskID); err != nil {
		return models.Task{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateTask(ctx, ownerID, taskID, request)
}

func (v *TaskValidationService) ToggleTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	if err := checkIDs(ownerID, taskID); err != nil {
		return models.Task{}, err
	}
	return v.inner.ToggleTask(ctx, ownerID, taskID)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if err := checkIDs(ownerID, taskID); err != nil {
		return err
	}
	return v.inner.DeleteTask(ctx, ownerID, taskID)
}
