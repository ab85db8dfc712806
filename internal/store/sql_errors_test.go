package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindUnknown},
		{"plain error", errors.New("boom"), KindUnknown},
		{"unique", pgError(pgerrcode.UniqueViolation), KindUniqueViolation},
		{"wrapped unique", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), KindUniqueViolation},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), KindForeignKeyViolation},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), KindRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), KindRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"plain error", errors.New("boom"), KindUnknown},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, KindUniqueViolation},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, KindForeignKeyViolation},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, KindRetryable},
		{"not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "unique_violation", KindUniqueViolation.String())
	assert.Equal(t, "foreign_key_violation", KindForeignKeyViolation.String())
	assert.Equal(t, "retryable", KindRetryable.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
