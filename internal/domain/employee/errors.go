package employee

import "errors"

var (
	ErrEmptyCode = errors.New("employee code required")
	ErrNotFound  = errors.New("employee not found")
)
