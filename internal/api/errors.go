package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/service"
	"github.com/phrazzld/workout-api/internal/store"
)

// MapErrorToStatusCode translates service and store errors into HTTP
// status codes. Unknown errors map to 500 so that internal failures are
// never leaked to clients with a misleading status.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrAthleteNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrTrainingCenterNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrReferenceNotFound):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		// Values that slip past the request-schema layer but fail domain
		// validation are still malformed input, not a server fault.
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns a message safe to include in an error response
// for the given error. Internal errors get a generic message; the
// underlying cause stays in the server logs only.
func ClientMessage(err error, fallback string) string {
	var refErr *service.ReferenceNotFoundError
	if errors.As(err, &refErr) {
		return refErr.Error()
	}
	if errors.Is(err, domain.ErrValidation) {
		return "request validation failed"
	}
	if MapErrorToStatusCode(err) == http.StatusInternalServerError {
		return "an internal error occurred"
	}
	return fallback
}
