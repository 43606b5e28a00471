package form

import "errors"

var (
	ErrElementNameRequired = errors.New("element name is required")
	ErrNilElement          = errors.New("element is nil")
	ErrCyclicNesting       = errors.New("container cannot be nested inside itself")
	ErrNoData              = errors.New("no data set for validation")
	ErrNotValidated        = errors.New("form has not been successfully validated")
	ErrInvalidBindTarget   = errors.New("bind target must be a non-nil pointer to struct")
	ErrBindFailed          = errors.New("failed to bind form data")
	ErrUnknownElementType  = errors.New("unknown element type")
	ErrInvalidFormSpec     = errors.New("invalid form specification")
	ErrFailedToParseYAML   = errors.New("failed to parse form definition")
	ErrFailedToParseForm   = errors.New("failed to parse request form data")
)
