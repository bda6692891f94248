package usecase

import (
	"context"

	"daily-planner/internal/schedule"
	"daily-planner/pkg/chart"
)

// Current returns the stored schedule and its parsed rows.
func (uc *implUseCase) Current(ctx context.Context) (schedule.CurrentOutput, error) {
	state, err := uc.repo.GetState(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Current GetState: %v", err)
		return schedule.CurrentOutput{}, err
	}

	return schedule.CurrentOutput{
		State: state,
		Phase: state.Phase(),
		Range: uc.parser.ExtractOverallRange(state.FinalSchedule),
		Rows:  uc.parser.ParseToRows(state.FinalSchedule),
	}, nil
}

// Chart builds the timeline for the stored schedule.
func (uc *implUseCase) Chart(ctx context.Context) (chart.Timeline, error) {
	current, err := uc.Current(ctx)
	if err != nil {
		return chart.Timeline{}, err
	}
	return chart.Build(current.Rows), nil
}
