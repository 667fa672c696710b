package model

import "errors"

// Everything that can go wrong constructing core values. These are detected
// eagerly at the introducing call; nothing here is transient or retryable.
var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidEvent    = errors.New("invalid event")
	ErrInvalidFactor   = errors.New("invalid factor")
	ErrInvalidOffset   = errors.New("invalid offset")
)
