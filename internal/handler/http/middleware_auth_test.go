package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return serve(h.auth(next), req)
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "scheme is case-insensitive", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty header", header: "", wantErr: ErrInvalidAuthorizationHeader},
		{name: "non-Bearer scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token after scheme", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "extra parts use the second one", header: "Bearer token extra-part", wantToken: "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		parseErr       error
		parseCalled    bool
		expectedStatus int
		expectedMsg    string
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header is 401",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Authentication token required",
		},
		{
			name:           "header without space is 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Authentication token required",
		},
		{
			name:           "valid token reaches next",
			authHeader:     "Bearer valid-token",
			parseCalled:    true,
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "invalid or expired token is 403",
			authHeader:     "Bearer expired-token",
			parseCalled:    true,
			parseErr:       service.ErrTokenIsExpiredOrInvalid,
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, config.Server{})
			if tt.parseCalled {
				token := models.Token{Claims: models.Claims{UserID: 42, Email: "a@x.com"}}
				if tt.parseErr != nil {
					token = models.Token{}
				}
				mocks.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(token, tt.parseErr)
			}

			nextCalled := false
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, int64(42), gotUserID)
			}
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeMessage(t, rr))
			}
		})
	}
}

func TestAuth_PassesRawTokenToService(t *testing.T) {
	h, mocks := newTestHandler(t, config.Server{})
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "abc.def.ghi").
		Return(models.Token{Claims: models.Claims{UserID: 7}}, nil)

	rr := executeAuth(h, "Bearer abc.def.ghi", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetSessionFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(7), claims.UserID)
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAuth_UnexpectedServiceErrorIs500(t *testing.T) {
	h, mocks := newTestHandler(t, config.Server{})
	mocks.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{}, errors.New("boom"))

	rr := executeAuth(h, "Bearer token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, internalErrorMessage, decodeMessage(t, rr))
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h, mocks := newTestHandler(t, config.Server{})
	mocks.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
		Return(models.Token{Claims: models.Claims{UserID: 1}}, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	serve(h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})), req)

	assert.Equal(t, originalCtx, req.Context())
	_, ok := utils.GetSessionFromContext(req.Context())
	assert.False(t, ok)
}
