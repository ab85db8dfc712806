package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReturning(t *testing.T) {
	assert.Equal(t, "RETURNING task_id, title, completed, owner_id, created_at, updated_at", returning(taskColumns))
	assert.Equal(t, "RETURNING user_id", returning([]string{"user_id"}))
}
