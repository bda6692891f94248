package memory

import (
	"sync"

	"daily-planner/internal/schedule"
	"daily-planner/internal/schedule/repository"
	"daily-planner/pkg/log"
)

type implRepository struct {
	mu    sync.Mutex
	state schedule.State
	l     log.Logger
}

// New creates an in-process Repository starting in the EMPTY state.
func New(l log.Logger) repository.Repository {
	return &implRepository{l: l}
}
