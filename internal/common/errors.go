package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Business logic errors
var (
	// General errors
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrStore        = errors.New("store error")

	// Bulletin errors
	ErrBulletinNotFound = fmt.Errorf("bulletin %w", ErrNotFound)

	// Comment errors
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)

	// User errors
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
)

// StoreError wraps a failed statement against the content store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is makes every StoreError match ErrStore
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// NewStoreError returns nil when err is nil
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// InvalidInput wraps ErrInvalidInput with a reason
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// StatusFromError maps the error taxonomy onto HTTP status codes
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
