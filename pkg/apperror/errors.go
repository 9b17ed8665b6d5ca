package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrInternal          = errors.New("internal server error")

	// ErrAmbiguousResult means an id filter matched more than one row. That is
	// a store-integrity violation and is never recovered locally.
	ErrAmbiguousResult = errors.New("multiple records matched a unique id")

	// Write verification failures: the store accepted the statement but the
	// confirming re-read contradicted it.
	ErrAddFailed    = errors.New("record was not added")
	ErrEditFailed   = errors.New("record could not be edited")
	ErrDeleteFailed = errors.New("record was not deleted")
)

// Per-entity failures wrap the generic kinds, so callers can match either
// level with errors.Is.
var (
	ErrInvalidAuthor   = fmt.Errorf("author: %w", ErrNotFound)
	ErrInvalidIdea     = fmt.Errorf("idea: %w", ErrNotFound)
	ErrDuplicateAuthor = fmt.Errorf("author: %w", ErrDuplicate)
	ErrDuplicateIdea   = fmt.Errorf("idea: %w", ErrDuplicate)
)

// AppError is a custom error type that can hold an HTTP status code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MapErrorToStatus maps common errors to HTTP status codes
func MapErrorToStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRateLimitExceeded) {
		return http.StatusTooManyRequests
	}
	// AmbiguousResult and write verification failures land here.
	return http.StatusInternalServerError
}
