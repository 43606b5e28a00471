package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownMessageKey is returned when overriding a template the validator does not define.
	ErrUnknownMessageKey = errors.New("unknown message key")

	// ErrInvalidPattern is returned when a regular expression cannot be compiled.
	ErrInvalidPattern = errors.New("invalid regular expression pattern")

	// ErrInvalidTarget is returned when Struct receives something other than a struct.
	ErrInvalidTarget = errors.New("invalid validation target")
)
