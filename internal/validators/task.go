package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field name constants used to restrict task validation to a subset of fields.
const (
	FieldTitle  = "title"
	FieldUpdate = "update"
)

// MaxTitleLength is the longest task title accepted, in runes.
const MaxTitleLength = 500

// TaskValidator checks task create and update payloads.
type TaskValidator struct{}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateTaskRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateTaskRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.UpdateTaskRequest:
		return v.validateUpdateRequest(value, fields...)
	case *models.UpdateTaskRequest:
		return v.validateUpdateRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (v *TaskValidator) validateCreateRequest(request models.CreateTaskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(request.Title); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateRequest accepts a partial update; a present title must still
// be non-empty.
func (v *TaskValidator) validateUpdateRequest(request models.UpdateTaskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if request.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if request.Title != nil {
				if err := validateTitle(*request.Title); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
