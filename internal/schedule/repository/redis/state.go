package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"daily-planner/internal/schedule"
	"daily-planner/internal/schedule/repository"

	goredis "github.com/go-redis/redis/v8"
)

type getter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

func (r *implRepository) GetState(ctx context.Context) (schedule.State, error) {
	state, err := r.load(ctx, r.client)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetState"), err)
		return schedule.State{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return state, nil
}

func (r *implRepository) Submit(ctx context.Context, candidate string) (schedule.State, schedule.SubmitStatus, error) {
	var (
		next   schedule.State
		status schedule.SubmitStatus
	)

	txf := func(tx *goredis.Tx) error {
		current, err := r.load(ctx, tx)
		if err != nil {
			return err
		}

		next, status, err = current.Submit(candidate)
		if err != nil {
			return err
		}

		if r.beforeCommit != nil {
			r.beforeCommit(ctx)
		}

		payload, err := encodeState(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, r.key, payload, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, r.key)
		switch {
		case err == nil:
			return next, status, nil
		case errors.Is(err, schedule.ErrScheduleLocked):
			return schedule.State{}, "", err
		case errors.Is(err, goredis.TxFailedErr):
			r.l.Warnf(ctx, "%s: key changed during write, retrying (attempt %d)", r.dsn("Submit"), attempt+1)
			continue
		default:
			r.l.Errorf(ctx, "%s: %v", r.dsn("Submit"), err)
			return schedule.State{}, "", fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
		}
	}

	return schedule.State{}, "", repository.ErrTooManyRetries
}

func (r *implRepository) Reset(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Reset"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToReset, err)
	}
	return nil
}

func (r *implRepository) load(ctx context.Context, g getter) (schedule.State, error) {
	data, err := g.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return schedule.State{}, nil
	}
	if err != nil {
		return schedule.State{}, err
	}
	return decodeState(data)
}

func encodeState(s schedule.State) ([]byte, error) {
	return json.Marshal(s)
}

func decodeState(data []byte) (schedule.State, error) {
	var s schedule.State
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return schedule.State{}, fmt.Errorf("decode schedule state: %w", err)
	}
	return s, nil
}
