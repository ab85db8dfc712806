package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := User{UserID: 1, Email: "a@x.com", PasswordHash: "$2a$10$hash"}

	b, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "hash")
	assert.NotContains(t, string(b), "$2a$")
}

func TestNewUserResponse(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	user := User{UserID: 7, Email: "a@x.com", PasswordHash: "secret", CreatedAt: createdAt}

	assert.Equal(t, UserResponse{ID: 7, Email: "a@x.com", CreatedAt: createdAt}, NewUserResponse(user))
}

func TestTask_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Task{ID: 1, Title: "buy milk", OwnerID: 2})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	for _, key := range []string{"id", "title", "completed", "ownerId", "createdAt", "updatedAt"} {
		assert.Contains(t, fields, key)
	}
}

func TestCreateTaskRequest_IgnoresOwner(t *testing.T) {
	var req CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x","ownerId":99}`), &req))
	assert.Equal(t, CreateTaskRequest{Title: "x"}, req)
}

func TestUpdateTaskRequest_IsEmpty(t *testing.T) {
	title := "x"
	completed := false

	tests := []struct {
		name string
		req  UpdateTaskRequest
		want bool
	}{
		{name: "nothing", req: UpdateTaskRequest{}, want: true},
		{name: "title", req: UpdateTaskRequest{Title: &title}},
		{name: "completed false is still a change", req: UpdateTaskRequest{Completed: &completed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.IsEmpty())
		})
	}
}

func TestUpdateTaskRequest_DistinguishesAbsentFromFalse(t *testing.T) {
	var absent, explicit UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"completed":false}`), &explicit))

	assert.Nil(t, absent.Completed)
	require.NotNil(t, explicit.Completed)
	assert.False(t, *explicit.Completed)
}

func TestToken_String(t *testing.T) {
	token := Token{SignedString: "a.b.c"}
	assert.Equal(t, "a.b.c", token.String())

	b, err := json.Marshal(token)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "a.b.c")
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc123", info.String())
}
