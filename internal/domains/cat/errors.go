package cat

import (
	"errors"
	"net/http"
)

// Sentinel errors for the cat domain. Handlers map them to HTTP statuses
// with GetHTTPStatusCode; everything else is a 500.
var (
	ErrCatNotFound         = errors.New("cat not found")
	ErrNameRequired        = errors.New("cat name is required")
	ErrInvalidHealthStatus = errors.New("invalid health status")
	ErrInvalidGender       = errors.New("invalid gender")
	ErrInvalidAgeEstimate  = errors.New("invalid age estimate")
	ErrInvalidFilter       = errors.New("invalid filter value")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCatNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidHealthStatus),
		errors.Is(err, ErrInvalidGender),
		errors.Is(err, ErrInvalidAgeEstimate),
		errors.Is(err, ErrInvalidFilter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
