package schedule

import (
	"context"

	"daily-planner/pkg/chart"
)

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Submit turns audio or text into a schedule and stores it under the edit-lock rules.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)

	// Reset clears the stored schedule when credential matches the developer secret.
	Reset(ctx context.Context, credential string) error

	// Current returns the stored schedule and its parsed rows.
	Current(ctx context.Context) (CurrentOutput, error)

	// Chart builds the timeline for the stored schedule.
	Chart(ctx context.Context) (chart.Timeline, error)
}
