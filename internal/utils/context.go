// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the verified session claims are
// stored in the request context by the auth middleware.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying the verified claims.
func WithSession(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, SessionCtxKey, claims)
}

// GetSessionFromContext retrieves the verified claims from the context.
//
// ok is false when no claims were attached (the request did not pass
// through the auth middleware) or the value has an unexpected type.
func GetSessionFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(SessionCtxKey).(models.Claims)
	return claims, ok
}

// GetUserIDFromContext retrieves the authenticated user identifier from the
// context.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	claims, ok := GetSessionFromContext(ctx)
	if !ok || claims.UserID <= 0 {
		return 0, false
	}
	return claims.UserID, true
}
