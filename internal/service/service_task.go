package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskService enforces ownership: every single-task operation first looks the
// task up by (id, owner) and then mutates with a statement that is still
// filtered by owner.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

func (s *taskService) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask stamps ownerID on the new task.
func (s *taskService) CreateTask(ctx context.Context, ownerID int64, request models.CreateTaskRequest) (models.Task, error) {
	task, err := s.taskRepository.CreateTask(ctx, models.Task{
		Title:   strings.TrimSpace(request.Title),
		OwnerID: ownerID,
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("error creating task: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("task_id", task.ID).Int64("owner_id", ownerID).Msg("task created")
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	return s.findOwned(ctx, ownerID, taskID)
}

func (s *taskService) UpdateTask(ctx context.Context, ownerID, taskID int64, request models.UpdateTaskRequest) (models.Task, error) {
	if _, err := s.findOwned(ctx, ownerID, taskID); err != nil {
		return models.Task{}, err
	}

	if request.Title != nil {
		title := strings.TrimSpace(*request.Title)
		request.Title = &title
	}

	task, err := s.taskRepository.UpdateTask(ctx, taskID, ownerID, request)
	if err != nil {
		return models.Task{}, s.mutationError(ctx, "update", taskID, err)
	}
	return task, nil
}

func (s *taskService) ToggleTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	if _, err := s.findOwned(ctx, ownerID, taskID); err != nil {
		return models.Task{}, err
	}

	task, err := s.taskRepository.ToggleTask(ctx, taskID, ownerID)
	if err != nil {
		return models.Task{}, s.mutationError(ctx, "toggle", taskID, err)
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if _, err := s.findOwned(ctx, ownerID, taskID); err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, taskID, ownerID); err != nil {
		return s.mutationError(ctx, "delete", taskID, err)
	}
	return nil
}

// findOwned returns the task only when it exists and belongs to ownerID.
func (s *taskService) findOwned(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	task, err := s.taskRepository.FindTask(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Task{}, fmt.Errorf("%w: %w", ErrTaskNotFoundOrUnauthorized, err)
		}
		return models.Task{}, fmt.Errorf("error finding task: %w", err)
	}

	// the repository already filters by owner
	if task.OwnerID != ownerID {
		return models.Task{}, ErrTaskNotFoundOrUnauthorized
	}

	return task, nil
}

// mutationError reports a task that vanished between the ownership check and
// the mutation as not found.
func (s *taskService) mutationError(ctx context.Context, op string, taskID int64, err error) error {
	if errors.Is(err, store.ErrTaskNotFound) {
		logger.FromContext(ctx).Warn().Int64("task_id", taskID).Str("op", op).Msg("task disappeared before mutation")
		return fmt.Errorf("%w: %w", ErrTaskNotFoundOrUnauthorized, err)
	}
	return fmt.Errorf("error during task %s: %w", op, err)
}
