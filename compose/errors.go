package compose

import "errors"

var (
	ErrPartitionMismatch = errors.New("partition does not cover the input buffer")
	ErrIndivisibleTarget = errors.New("target length is not a multiple of every part")
	ErrInvalidTarget     = errors.New("target length must be at least 1 unit")
	ErrInvalidResolution = errors.New("samples per unit must be at least 1")
	ErrOutputTooLarge    = errors.New("output buffer would exceed the configured size limit")
)
