package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

func TestRegister(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	credentials := models.Credentials{Email: "a@x.com", Password: "pw1"}

	tests := []struct {
		name           string
		body           string
		serviceCalled  bool
		serviceUser    models.User
		serviceErr     error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "created",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			serviceCalled:  true,
			serviceUser:    models.User{UserID: 1, Email: "a@x.com", PasswordHash: "$2a$10$secret", CreatedAt: createdAt},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate email",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			serviceCalled:  true,
			serviceErr:     fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Email already exists",
		},
		{
			name:           "missing password",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			serviceCalled:  true,
			serviceErr:     fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyPassword),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Email and password are required",
		},
		{
			name:           "malformed json",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid JSON was passed",
		},
		{
			name:           "empty body",
			body:           "",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Request body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, config.Server{})
			if tt.serviceCalled {
				mocks.auth.EXPECT().RegisterUser(gomock.Any(), credentials).Return(tt.serviceUser, tt.serviceErr)
			}

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body)))
			rr := serve(http.HandlerFunc(h.register), req)

			require.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeMessage(t, rr))
				return
			}

			assert.NotContains(t, rr.Body.String(), "secret")
			var got models.UserResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, models.NewUserResponse(tt.serviceUser), got)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	h, mocks := newTestHandler(t, config.Server{})
	user := models.User{UserID: 5, Email: "a@x.com"}

	gomock.InOrder(
		mocks.auth.EXPECT().Login(gomock.Any(), models.Credentials{Email: "a@x.com", Password: "pw1"}).Return(user, nil),
		mocks.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed.jwt.token"}, nil),
	)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(t, models.Credentials{Email: "a@x.com", Password: "pw1"})))
	rr := serve(http.HandlerFunc(h.login), req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))

	var got models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, models.LoginResponse{Message: "Login successful", Token: "signed.jwt.token"}, got)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name           string
		loginErr       error
		tokenErr       error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "wrong credentials",
			loginErr:       service.ErrWrongCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid email or password",
		},
		{
			name:           "empty email",
			loginErr:       fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyEmail),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Email and password are required",
		},
		{
			name:           "token creation failed",
			tokenErr:       service.ErrTokenCreationFailed,
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, config.Server{})
			user := models.User{UserID: 5}
			if tt.loginErr != nil {
				mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.loginErr)
			} else {
				mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user, nil)
				mocks.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{}, tt.tokenErr)
			}

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@x.com","password":"pw"}`)))
			rr := serve(http.HandlerFunc(h.login), req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedMsg, decodeMessage(t, rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}
