package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	// FieldEmail targets the login email of a credentials pair.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a credentials pair.
	FieldPassword = "password"
)

const (
	// MaxEmailLength is the longest address accepted (RFC 5321 path limit).
	MaxEmailLength = 320

	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
)

// CredentialsValidator checks register and login input.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(c.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if len(email) > MaxEmailLength {
				return ErrInvalidEmail
			}
			if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
			if len(c.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
