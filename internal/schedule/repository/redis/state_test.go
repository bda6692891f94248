package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"daily-planner/internal/schedule"
	"daily-planner/internal/schedule/repository"
	"daily-planner/pkg/log"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
)

func TestDecodeState(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    schedule.State
		wantErr bool
	}{
		{name: "empty payload", data: "", want: schedule.State{}},
		{
			name: "set state",
			data: `{"final_schedule":"9:00 am - 9:30 am: A","has_schedule":true,"has_edited":false}`,
			want: schedule.State{FinalSchedule: "9:00 am - 9:30 am: A", HasSchedule: true},
		},
		{
			name: "locked state",
			data: `{"final_schedule":"B","has_schedule":true,"has_edited":true}`,
			want: schedule.State{FinalSchedule: "B", HasSchedule: true, HasEdited: true},
		},
		{name: "garbage", data: "{not json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeState([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeState() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("decodeState() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewDefaultsKey(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	repo := New(client, "", log.NewNop()).(*implRepository)
	if repo.key != DefaultKey {
		t.Errorf("expected default key %q, got %q", DefaultKey, repo.key)
	}
}

func TestNewPanicsWithoutClient(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil client")
		}
	}()
	New(nil, "", log.NewNop())
}

func newTestRepository(t *testing.T) (*implRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, "planner:test:state", log.NewNop()).(*implRepository), mr
}

func TestRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	if _, status, err := repo.Submit(ctx, "A"); err != nil || status != schedule.StatusStored {
		t.Fatalf("first submit: status=%s err=%v", status, err)
	}
	if _, status, err := repo.Submit(ctx, "B"); err != nil || status != schedule.StatusFinalEdit {
		t.Fatalf("second submit: status=%s err=%v", status, err)
	}
	if _, _, err := repo.Submit(ctx, "C"); !errors.Is(err, schedule.ErrScheduleLocked) {
		t.Fatalf("third submit: expected ErrScheduleLocked, got %v", err)
	}

	state, err := repo.GetState(ctx)
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.FinalSchedule != "B" || !state.Locked() {
		t.Errorf("expected locked B, got %+v", state)
	}

	raw, err := mr.Get("planner:test:state")
	if err != nil {
		t.Fatalf("key not written: %v", err)
	}
	if stored, _ := decodeState([]byte(raw)); stored != state {
		t.Errorf("stored payload %+v differs from state %+v", stored, state)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if mr.Exists("planner:test:state") {
		t.Error("reset should delete the key")
	}
	if state, _ := repo.GetState(ctx); state.Phase() != schedule.PhaseEmpty {
		t.Errorf("expected empty after reset, got %+v", state)
	}
}

func TestRepositoryConcurrentSubmitAcceptsTwo(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	const workers = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		locked   int
		other    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := repo.Submit(ctx, fmt.Sprintf("schedule %d", i))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, schedule.ErrScheduleLocked):
				locked++
			default:
				other = append(other, err)
			}
		}(i)
	}
	wg.Wait()

	if accepted != 2 || locked != workers-2 || len(other) != 0 {
		t.Fatalf("expected 2 accepted and %d locked, got %d accepted, %d locked, errors %v",
			workers-2, accepted, locked, other)
	}
	if state, _ := repo.GetState(ctx); !state.Locked() {
		t.Errorf("expected locked state, got %+v", state)
	}
}

func TestRepositorySubmitRetriesOnConflict(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	conflicts := 0
	repo.beforeCommit = func(ctx context.Context) {
		if conflicts == 0 {
			conflicts++
			// A concurrent writer stores the first schedule under our WATCH.
			mr.Set("planner:test:state", `{"final_schedule":"other","has_schedule":true,"has_edited":false}`)
		}
	}

	state, status, err := repo.Submit(ctx, "mine")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if status != schedule.StatusFinalEdit || state.FinalSchedule != "mine" || !state.Locked() {
		t.Errorf("retry should re-read the state and apply the final edit, got %s %+v", status, state)
	}
}

func TestRepositorySubmitTooManyRetries(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	attempts := 0
	repo.beforeCommit = func(ctx context.Context) {
		attempts++
		mr.Set("planner:test:state", "")
	}

	if _, _, err := repo.Submit(ctx, "A"); !errors.Is(err, repository.ErrTooManyRetries) {
		t.Fatalf("expected ErrTooManyRetries, got %v", err)
	}
	if attempts != maxTxRetries {
		t.Errorf("expected %d attempts, got %d", maxTxRetries, attempts)
	}
	if raw, _ := mr.Get("planner:test:state"); raw != "" {
		t.Errorf("no submission should be written, got %q", raw)
	}
}

func TestRepositoryGetStateCorrupt(t *testing.T) {
	repo, mr := newTestRepository(t)
	mr.Set("planner:test:state", "{not json")

	if _, err := repo.GetState(context.Background()); !errors.Is(err, repository.ErrFailedToGet) {
		t.Errorf("expected ErrFailedToGet, got %v", err)
	}
}
