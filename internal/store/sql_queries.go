package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	usersTable = "users"
	tasksTable = "tasks"
)

var (
	userColumns = []string{"user_id", "email", "password_hash", "created_at"}
	taskColumns = []string{"task_id", "title", "completed", "owner_id", "created_at", "updated_at"}
)

// returning renders a RETURNING clause; both postgres and sqlite (3.35+)
// support it.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("email", "password_hash", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func (db *DB) buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func (db *DB) buildSelectTasksQuery(ownerID int64) (string, []any, error) {
	return db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("task_id ASC").
		ToSql()
}

func (db *DB) buildSelectTaskQuery(taskID, ownerID int64) (string, []any, error) {
	return db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"task_id": taskID, "owner_id": ownerID}).
		ToSql()
}

func (db *DB) buildInsertTaskQuery(task models.Task) (string, []any, error) {
	return db.builder.
		Insert(tasksTable).
		Columns("title", "completed", "owner_id", "created_at", "updated_at").
		Values(task.Title, task.Completed, task.OwnerID, task.CreatedAt, task.UpdatedAt).
		Suffix(returning(taskColumns)).
		ToSql()
}

// buildUpdateTaskQuery sets only the fields present in update. updated_at is
// always refreshed, so an update with no fields still touches the row.
func (db *DB) buildUpdateTaskQuery(taskID, ownerID int64, update models.UpdateTaskRequest, now time.Time) (string, []any, error) {
	qb := db.builder.
		Update(tasksTable).
		Set("updated_at", now)

	if update.Title != nil {
		qb = qb.Set("title", *update.Title)
	}
	if update.Completed != nil {
		qb = qb.Set("completed", *update.Completed)
	}

	return qb.
		Where(sq.Eq{"task_id": taskID, "owner_id": ownerID}).
		Suffix(returning(taskColumns)).
		ToSql()
}

func (db *DB) buildToggleTaskQuery(taskID, ownerID int64, now time.Time) (string, []any, error) {
	return db.builder.
		Update(tasksTable).
		Set("completed", sq.Expr("NOT completed")).
		Set("updated_at", now).
		Where(sq.Eq{"task_id": taskID, "owner_id": ownerID}).
		Suffix(returning(taskColumns)).
		ToSql()
}

func (db *DB) buildDeleteTaskQuery(taskID, ownerID int64) (string, []any, error) {
	return db.builder.
		Delete(tasksTable).
		Where(sq.Eq{"task_id": taskID, "owner_id": ownerID}).
		ToSql()
}
