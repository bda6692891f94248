package usecase

import (
	"context"
	"errors"
	"testing"

	"daily-planner/internal/schedule"
	"daily-planner/pkg/chart"
)

func TestReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.uc.Submit(ctx, schedule.SubmitInput{Text: "x"}); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.uc.Reset(ctx, "wrong"); !errors.Is(err, schedule.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	state, _ := f.uc.repo.GetState(ctx)
	if !state.Locked() {
		t.Error("wrong credential must leave the state untouched")
	}

	if err := f.uc.Reset(ctx, "hackathon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, _ = f.uc.repo.GetState(ctx)
	if state != (schedule.State{}) {
		t.Errorf("expected empty state, got %+v", state)
	}

	if _, err := f.uc.Submit(ctx, schedule.SubmitInput{Text: "again"}); err != nil {
		t.Errorf("submission after reset should be accepted, got %v", err)
	}
}

func TestReset_FromEmpty(t *testing.T) {
	f := newFixture(t)
	if err := f.uc.Reset(context.Background(), "hackathon"); err != nil {
		t.Errorf("reset on empty state should succeed, got %v", err)
	}
}

func TestReset_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.uc.repo = failingRepo{}

	if err := f.uc.Reset(context.Background(), "hackathon"); !errors.Is(err, errStoreDown) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestCurrentAndChart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	current, err := f.uc.Current(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.Phase != schedule.PhaseEmpty || current.Range.OK || len(current.Rows) != 0 {
		t.Errorf("unexpected empty current %+v", current)
	}

	tl, err := f.uc.Chart(ctx)
	if err != nil || !tl.Empty || tl.Title != chart.PlaceholderTitle {
		t.Errorf("expected placeholder chart, got %+v err=%v", tl, err)
	}

	if _, err := f.uc.Submit(ctx, schedule.SubmitInput{Text: "x"}); err != nil {
		t.Fatal(err)
	}

	current, _ = f.uc.Current(ctx)
	if current.Phase != schedule.PhaseSet || len(current.Rows) != 2 || !current.Range.OK {
		t.Errorf("unexpected current %+v", current)
	}

	tl, _ = f.uc.Chart(ctx)
	if tl.Empty || len(tl.Rows) != 2 || tl.Rows[0].Label != "Write report" {
		t.Errorf("unexpected chart %+v", tl)
	}
}

func TestCurrent_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.uc.repo = failingRepo{}

	if _, err := f.uc.Chart(context.Background()); !errors.Is(err, errStoreDown) {
		t.Errorf("expected store error, got %v", err)
	}
}
