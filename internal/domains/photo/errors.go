package photo

import (
	"errors"
	"net/http"
)

var (
	ErrFileRequired     = errors.New("file is required")
	ErrInvalidFileType  = errors.New("only JPEG, PNG, WebP and GIF images are allowed")
	ErrInvalidExtension = errors.New("file extension is not allowed")
	ErrFileTooLarge     = errors.New("file exceeds the 5MB limit")
	ErrNotAnImage       = errors.New("file content is not a valid image")
	ErrUploadFailed     = errors.New("upload failed")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrFileRequired),
		errors.Is(err, ErrInvalidFileType),
		errors.Is(err, ErrInvalidExtension),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrNotAnImage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
