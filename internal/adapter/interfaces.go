// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the task API.
//
// The primary abstraction is [ServerAdapter], which decouples the command
// line client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the task API server.
// Implementations handle serialisation, the bearer token and mapping of
// transport errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// Register creates an account and returns its public descriptor.
	Register(ctx context.Context, credentials models.Credentials) (models.UserResponse, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, request models.CreateTaskRequest) (models.Task, error)
	GetTask(ctx context.Context, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, taskID int64, request models.UpdateTaskRequest) (models.Task, error)
	ToggleTask(ctx context.Context, taskID int64) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error

	// Health reports whether the server answers its liveness probe.
	Health(ctx context.Context) error

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}
