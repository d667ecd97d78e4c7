package activitylog

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidActivityType = errors.New("invalid activity type")
	ErrCatIDRequired       = errors.New("cat ID is required")
	ErrLogNotFound         = errors.New("activity log not found")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrLogNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidActivityType),
		errors.Is(err, ErrCatIDRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
