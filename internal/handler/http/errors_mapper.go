package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
)

const internalErrorMessage = app.MsgInternalServerError

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order; the most specific errors come first
// because service errors wrap validator errors.
var errorResponses = []errorResponse{
	{validators.ErrEmptyEmail, http.StatusBadRequest, app.MsgCredentialsRequired},
	{validators.ErrEmptyPassword, http.StatusBadRequest, app.MsgCredentialsRequired},
	{validators.ErrInvalidEmail, http.StatusBadRequest, app.MsgInvalidEmail},
	{validators.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{crypto.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{validators.ErrEmptyTitle, http.StatusBadRequest, app.MsgTitleRequired},
	{validators.ErrTitleTooLong, http.StatusBadRequest, app.MsgTitleTooLong},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgNothingToUpdate},
	{validators.ErrInvalidTaskID, http.StatusBadRequest, app.MsgInvalidTaskID},
	{errInvalidTaskID, http.StatusBadRequest, app.MsgInvalidTaskID},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgEmptyBody},
	{errInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidData},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailExists},

	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenRequired},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenRequired},
	{ErrEmptyToken, http.StatusUnauthorized, app.MsgTokenRequired},
	{service.ErrNoOwner, http.StatusUnauthorized, app.MsgNotAuthenticated},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrTaskNotFoundOrUnauthorized, http.StatusNotFound, app.MsgTaskNotFoundOrUnauthorized},
}

// responseFromError resolves the status and the client-facing message for
// err. Unknown errors become a generic 500.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

// writeError writes the {"message": ...} body for err. Internal failures are
// logged with the request logger and never exposed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := responseFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("internal error occurred during request handling")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
