package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/alion/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidVillageID      = "Invalid village id"
	ErrMsgUnauthenticated       = "Authentication required"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgVillageNotFound    = "Village not found"
	ErrMsgTribeNotFound      = "Tribe not found"
	ErrMsgUserNotFound       = "User not found"
	ErrMsgTribeAlreadyChosen = "You have already chosen a tribe"
	ErrMsgMapFull            = "No free land is available, please try again later"
	ErrMsgReconcileBusy      = "Village is busy, please retry"
	ErrMsgRequestCancelled   = "Request cancelled"
)

// RetryAfterSeconds is sent with retryable 503 responses
const RetryAfterSeconds = "1"

// mapServiceError maps domain errors to an HTTP status and a user-facing message.
// Unrecognised errors become a generic 500 so internal details never leak.
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrVillageNotFound):
		return http.StatusNotFound, ErrMsgVillageNotFound
	case errors.Is(err, domain.ErrTribeNotFound):
		return http.StatusNotFound, ErrMsgTribeNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFound
	case errors.Is(err, domain.ErrTribeAlreadySelected):
		return http.StatusBadRequest, ErrMsgTribeAlreadyChosen
	case errors.Is(err, domain.ErrInvalidInput):
		// Wrapped ErrInvalidInput messages are written for players
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrReconcileConflict):
		return http.StatusServiceUnavailable, ErrMsgReconcileBusy
	case errors.Is(err, domain.ErrNoFreeCoordinates):
		return http.StatusServiceUnavailable, ErrMsgMapFull
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgRequestCancelled
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError writes the mapped error response
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceError(err)
	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", RetryAfterSeconds)
	}
	respondError(w, status, msg)
}
