// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Task is a single to-do item owned by exactly one user.
//
// OwnerID is always stamped by the server from the authenticated identity and
// never taken from client input.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// CreateTaskRequest is the body of a task creation request.
// It deliberately has no owner field.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// UpdateTaskRequest describes a partial update of a task.
// Only non-nil fields are applied.
type UpdateTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Completed == nil
}
