package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get schedule state")
	ErrFailedToSave   = errors.New("failed to save schedule state")
	ErrFailedToReset  = errors.New("failed to reset schedule state")
	ErrTooManyRetries = errors.New("schedule state kept changing during write")
)
