package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidatedTaskService(t *testing.T) (TaskService, *mock.MockTaskService) {
	inner := mock.NewMockTaskService(gomock.NewController(t))
	return NewTaskValidationService().Wrap(inner), inner
}

func TestTaskValidationService_RejectsBeforeInner(t *testing.T) {
	svc, _ := newTestValidatedTaskService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, ownerA, models.CreateTaskRequest{Title: "  "})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	_, err = svc.UpdateTask(ctx, ownerA, 5, models.UpdateTaskRequest{})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	_, err = svc.GetTask(ctx, ownerA, 0)
	assert.ErrorIs(t, err, validators.ErrInvalidTaskID)

	err = svc.DeleteTask(ctx, ownerA, -1)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.ListTasks(ctx, 0)
	assert.ErrorIs(t, err, ErrNoOwner)

	_, err = svc.ToggleTask(ctx, 0, 5)
	assert.ErrorIs(t, err, ErrNoOwner)
}

func TestTaskValidationService_PassesValidInput(t *testing.T) {
	svc, inner := newTestValidatedTaskService(t)
	ctx := context.Background()
	task := models.Task{ID: 5, OwnerID: ownerA, Title: "a"}

	inner.EXPECT().ListTasks(ctx, ownerA).Return([]models.Task{task}, nil)
	inner.EXPECT().CreateTask(ctx, ownerA, models.CreateTaskRequest{Title: "a"}).Return(task, nil)
	inner.EXPECT().GetTask(ctx, ownerA, int64(5)).Return(task, nil)
	inner.EXPECT().UpdateTask(ctx, ownerA, int64(5), gomock.Any()).Return(task, nil)
	inner.EXPECT().ToggleTask(ctx, ownerA, int64(5)).Return(task, nil)
	inner.EXPECT().DeleteTask(ctx, ownerA, int64(5)).Return(nil)

	_, err := svc.ListTasks(ctx, ownerA)
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, ownerA, models.CreateTaskRequest{Title: "a"})
	require.NoError(t, err)
	_, err = svc.GetTask(ctx, ownerA, 5)
	require.NoError(t, err)
	_, err = svc.UpdateTask(ctx, ownerA, 5, models.UpdateTaskRequest{Completed: ptr(true)})
	require.NoError(t, err)
	_, err = svc.ToggleTask(ctx, ownerA, 5)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTask(ctx, ownerA, 5))
}
