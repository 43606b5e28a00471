package viewhelper

import "errors"

// ErrInvalidArgument is returned when a helper receives an argument it cannot use.
var ErrInvalidArgument = errors.New("invalid view helper argument")
