package landau

import "errors"

var (
	ErrInvalidDuration  = errors.New("duration must be a positive number of units")
	ErrDurationTooLarge = errors.New("duration too large: g(n) overflows uint64")
)
