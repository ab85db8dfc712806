package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every input validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials is returned by Login for an unknown email and for a
	// wrong password alike.
	ErrWrongCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed is returned when a JWT cannot be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned by ParseToken for any
	// verification failure: malformed, bad signature, expired or foreign
	// issuer.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTaskNotFoundOrUnauthorized is returned when a task does not exist or
	// belongs to another user. Both cases are reported identically.
	ErrTaskNotFoundOrUnauthorized = errors.New("task not found or unauthorized")

	// ErrNoOwner is returned when a task operation is attempted without an
	// authenticated owner id.
	ErrNoOwner = errors.New("no owner ID for task was given")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
