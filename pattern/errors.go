package pattern

import "errors"

var (
	ErrUnknownPattern = errors.New("unknown pattern")
	ErrMissingFn      = errors.New("pattern function is not defined")
	ErrBadReturn      = errors.New("pattern returned an invalid colour")
)
