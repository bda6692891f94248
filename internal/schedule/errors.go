package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrNoInput         = errors.New("no input provided")
	ErrScheduleLocked  = errors.New("schedule locked")
	ErrUnauthorized    = errors.New("wrong password")
	ErrExternalService = errors.New("external service failure")
	ErrEmptyCompletion = errors.New("completion returned an empty schedule")
)
