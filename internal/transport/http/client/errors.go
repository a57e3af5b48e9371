package client

import (
	"errors"
	"fmt"

	"hrdesk/internal/transport/http/api"
)

var (
	ErrUnauthorized       = errors.New("backend session required, log in first")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AppError is a failure reported by the backend itself, as opposed to a
// transport or decode failure.
type AppError struct {
	Op      string
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, api.ErrorOrUnknown(e.Message))
}

// AppMessage returns the backend message of err when err is an AppError.
func AppMessage(err error) (string, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return api.ErrorOrUnknown(appErr.Message), true
	}
	return "", false
}
