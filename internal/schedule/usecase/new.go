package usecase

import (
	"sync"

	"daily-planner/internal/schedule"
	"daily-planner/internal/schedule/repository"
	"daily-planner/pkg/llmprovider"
	pkgLog "daily-planner/pkg/log"
	"daily-planner/pkg/speech"
	"daily-planner/pkg/timerange"

	"github.com/google/uuid"
)

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	llm           *llmprovider.Manager
	transcriber   speech.Transcriber
	parser        *timerange.Parser
	resetPassword string

	// mu serialises the lock check, external calls and the write of one submission.
	mu    sync.Mutex
	newID func() string
}

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	llm *llmprovider.Manager,
	transcriber speech.Transcriber,
	parser *timerange.Parser,
	resetPassword string,
) schedule.UseCase {
	return &implUseCase{
		l:             l,
		repo:          repo,
		llm:           llm,
		transcriber:   transcriber,
		parser:        parser,
		resetPassword: resetPassword,
		newID:         uuid.NewString,
	}
}
