package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the SQL-backed implementation of [TaskRepository].
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// ListTasks returns the owner's tasks ordered by id. An owner without tasks
// gets an empty, non-nil slice.
func (r *taskRepository) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectTasksQuery(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Int64("owner_id", ownerID).Msg("error selecting tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Err(err).Str("func", "*taskRepository.ListTasks").Int64("owner_id", ownerID).Msg("error scanning task")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Int64("owner_id", ownerID).Msg("error iterating tasks")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// CreateTask inserts task as given; the caller stamps OwnerID. Returns the
// stored row with its id and timestamps.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	task.CreatedAt, task.UpdatedAt = now, now

	query, args, err := r.db.buildInsertTaskQuery(task)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		kind := r.db.errorClassificator.Classify(err)
		if kind == KindForeignKeyViolation {
			return models.Task{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*taskRepository.CreateTask").Int64("owner_id", task.OwnerID).Stringer("kind", kind).Msg("error inserting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindTask returns the task only when it belongs to ownerID; a task owned by
// someone else is indistinguishable from a missing one.
func (r *taskRepository) FindTask(ctx context.Context, taskID, ownerID int64) (models.Task, error) {
	query, args, err := r.db.buildSelectTaskQuery(taskID, ownerID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*taskRepository.FindTask", query, args)
}

// UpdateTask applies the present fields of update to the owner's task.
func (r *taskRepository) UpdateTask(ctx context.Context, taskID, ownerID int64, update models.UpdateTaskRequest) (models.Task, error) {
	query, args, err := r.db.buildUpdateTaskQuery(taskID, ownerID, update, time.Now().UTC())
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*taskRepository.UpdateTask", query, args)
}

// ToggleTask flips the completed flag in a single statement.
func (r *taskRepository) ToggleTask(ctx context.Context, taskID, ownerID int64) (models.Task, error) {
	query, args, err := r.db.buildToggleTaskQuery(taskID, ownerID, time.Now().UTC())
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*taskRepository.ToggleTask", query, args)
}

// DeleteTask removes the owner's task. Zero affected rows → [ErrTaskNotFound].
func (r *taskRepository) DeleteTask(ctx context.Context, taskID, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteTaskQuery(taskID, ownerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Int64("task_id", taskID).Msg("error deleting task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// queryOne runs a statement expected to yield exactly one task row.
func (r *taskRepository) queryOne(ctx context.Context, fn, query string, args []any) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", fn).Stringer("kind", r.db.errorClassificator.Classify(err)).Msg("error querying task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}
