package inputfilter

import "errors"

var (
	ErrEmptyName        = errors.New("inputfilter: entry name is required")
	ErrNilEntry         = errors.New("inputfilter: nil entry")
	ErrUnknownEntry     = errors.New("inputfilter: unknown entry")
	ErrNoData           = errors.New("inputfilter: no data set")
	ErrUnknownValidator = errors.New("inputfilter: unknown validator")
	ErrUnknownFilter    = errors.New("inputfilter: unknown filter")
	ErrInvalidOption    = errors.New("inputfilter: invalid option")
)
