package repository

import (
	"context"

	"daily-planner/internal/schedule"
)

// Repository holds the single schedule value and its edit lock.
// Every backend applies schedule.State.Submit so the lock rules are identical.
type Repository interface {
	// GetState returns the current state. A missing value is the EMPTY state.
	GetState(ctx context.Context) (schedule.State, error)

	// Submit re-validates the lock at write time and stores candidate when allowed.
	// Returns schedule.ErrScheduleLocked when the stored schedule is already locked.
	Submit(ctx context.Context, candidate string) (schedule.State, schedule.SubmitStatus, error)

	// Reset returns the store to EMPTY.
	Reset(ctx context.Context) error
}
