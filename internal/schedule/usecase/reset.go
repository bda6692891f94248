package usecase

import (
	"context"
	"crypto/subtle"

	"daily-planner/internal/schedule"
)

// Reset clears the stored schedule when credential matches the developer secret.
func (uc *implUseCase) Reset(ctx context.Context, credential string) error {
	if subtle.ConstantTimeCompare([]byte(credential), []byte(uc.resetPassword)) != 1 {
		uc.l.Warnf(ctx, "uc.Reset: rejected credential")
		return schedule.ErrUnauthorized
	}

	if err := uc.repo.Reset(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.Reset: %v", err)
		return err
	}

	uc.l.Infof(ctx, "uc.Reset: schedule cleared")
	return nil
}
