package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"daily-planner/internal/schedule"
	"daily-planner/internal/schedule/repository/memory"
	"daily-planner/pkg/llmprovider"
	"daily-planner/pkg/speech"
	"daily-planner/pkg/timerange"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockProvider answers completions with a fixed reply and records prompts.
type mockProvider struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, req.Messages[0].Text)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.reply, ProviderName: "mock", Usage: &llmprovider.Usage{}}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// mockTranscriber returns a fixed transcript.
type mockTranscriber struct {
	text  string
	err   error
	paths []string
}

func (m *mockTranscriber) TranscribeFile(ctx context.Context, path string) (speech.Result, error) {
	m.paths = append(m.paths, path)
	if m.err != nil {
		return speech.Result{}, m.err
	}
	return speech.Result{Text: m.text}, nil
}

func (m *mockTranscriber) Name() string { return "mock" }
func (m *mockTranscriber) Close() error { return nil }

// failingRepo fails every call.
type failingRepo struct{}

var errStoreDown = errors.New("store down")

func (failingRepo) GetState(ctx context.Context) (schedule.State, error) {
	return schedule.State{}, errStoreDown
}

func (failingRepo) Submit(ctx context.Context, candidate string) (schedule.State, schedule.SubmitStatus, error) {
	return schedule.State{}, "", errStoreDown
}

func (failingRepo) Reset(ctx context.Context) error {
	return errStoreDown
}

const sampleSchedule = "9:00 am - 9:30 am: Write report\n9:30 am - 10:00 am: Review code"

type fixture struct {
	uc          *implUseCase
	provider    *mockProvider
	transcriber *mockTranscriber
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	parser, err := timerange.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	parser.SetNow(func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) })

	provider := &mockProvider{reply: "\n" + sampleSchedule + "\n"}
	transcriber := &mockTranscriber{text: "gym then work"}
	l := &mockLogger{}
	manager := llmprovider.NewManager([]llmprovider.Provider{provider}, &llmprovider.Config{RetryAttempts: 1}, l)

	uc := New(l, memory.New(l), manager, transcriber, parser, "hackathon").(*implUseCase)
	uc.newID = func() string { return "id-1" }

	return fixture{uc: uc, provider: provider, transcriber: transcriber}
}
