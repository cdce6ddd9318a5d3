package validators

import "errors"

var (
	// ErrInvalidRequest is wrapped by every field-level validation failure.
	ErrInvalidRequest = errors.New("invalid request")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrEmptyRequest    = errors.New("request is empty")
)
