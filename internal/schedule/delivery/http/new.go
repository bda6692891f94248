package http

import (
	"daily-planner/internal/schedule"
	"daily-planner/pkg/log"
)

type handler struct {
	l             log.Logger
	uc            schedule.UseCase
	maxAudioBytes int64
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase, maxAudioBytes int64) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		maxAudioBytes: maxAudioBytes,
	}
}
