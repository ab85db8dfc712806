package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It runs [Handler.authenticate] and, on success, stores the verified claims
// in the request context via [utils.WithSession] before delegating to the
// next handler. Failures are written with [writeError]:
//   - missing or garbled header → 401 Unauthorized;
//   - invalid or expired token → 403 Forbidden.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), claims)))
	})
}

// authenticate extracts the bearer token from r and verifies it. It has no
// side effects.
func (h *Handler) authenticate(r *http.Request) (models.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Claims{}, ErrEmptyAuthorizationHeader
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return models.Claims{}, err
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return models.Claims{}, err
	}

	return token.Claims, nil
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader]: if the header contains fewer than
//     two space-separated parts or the scheme is not "Bearer".
//   - [ErrEmptyToken]: if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
