package memory

import (
	"context"

	"daily-planner/internal/schedule"
)

func (r *implRepository) GetState(ctx context.Context) (schedule.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, nil
}

func (r *implRepository) Submit(ctx context.Context, candidate string) (schedule.State, schedule.SubmitStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, status, err := r.state.Submit(candidate)
	if err != nil {
		return r.state, "", err
	}
	r.state = next
	r.l.Debugf(ctx, "schedule/repository/memory.Submit: phase=%s", next.Phase())
	return next, status, nil
}

func (r *implRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = schedule.State{}
	return nil
}
