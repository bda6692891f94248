package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"daily-planner/config"
	"daily-planner/internal/schedule"
	"daily-planner/internal/schedule/repository"
	memoryRepo "daily-planner/internal/schedule/repository/memory"
	redisRepo "daily-planner/internal/schedule/repository/redis"
	scheduleUC "daily-planner/internal/schedule/usecase"
	"daily-planner/pkg/groq"
	"daily-planner/pkg/llmprovider"
	"daily-planner/pkg/log"
	"daily-planner/pkg/speech"
	"daily-planner/pkg/timerange"
)

const redisPingTimeout = 3 * time.Second

// App is the wired schedule domain shared by the API server and the CLI.
type App struct {
	Schedule schedule.UseCase

	// Ready reports whether the schedule store is reachable.
	Ready func(ctx context.Context) error

	closers []func() error
}

// Close releases the store connection and external clients.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build wires store, transcriber, LLM providers and the schedule use case from cfg.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{Ready: func(context.Context) error { return nil }}

	parser, err := timerange.NewParser(cfg.Planner.Timezone)
	if err != nil {
		return nil, fmt.Errorf("app.Build: timezone: %w", err)
	}

	repo, err := a.buildStore(ctx, cfg, l)
	if err != nil {
		a.Close()
		return nil, err
	}

	transcriber, err := buildTranscriber(ctx, cfg.Speech)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, transcriber.Close)
	l.Infof(ctx, "Transcriber: %s", transcriber.Name())

	manager, err := buildLLM(ctx, cfg.LLM, l)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, manager.Close)

	a.Schedule = scheduleUC.New(l, repo, manager, transcriber, parser, cfg.Planner.ResetPassword)
	return a, nil
}

func (a *App) buildStore(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, client.Close)

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("app.Build: redis %s: %w", cfg.Redis.Addr, err)
		}

		a.Ready = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		l.Infof(ctx, "Schedule store: redis %s key=%s", cfg.Redis.Addr, cfg.Redis.Key)
		return redisRepo.New(client, cfg.Redis.Key, l), nil

	default:
		l.Info(ctx, "Schedule store: memory")
		return memoryRepo.New(l), nil
	}
}

func buildTranscriber(ctx context.Context, cfg config.SpeechConfig) (speech.Transcriber, error) {
	switch cfg.Provider {
	case speech.ProviderGoogle:
		t, err := speech.NewGoogle(ctx, speech.GoogleConfig{
			CredentialsPath: cfg.Google.CredentialsPath,
			LanguageCode:    cfg.Google.LanguageCode,
		})
		if err != nil {
			return nil, fmt.Errorf("app.Build: google speech: %w", err)
		}
		return t, nil

	case speech.ProviderGroq:
		client, err := groq.New(groq.Config{
			Name:               "groq-whisper",
			APIKey:             cfg.Groq.APIKey,
			BaseURL:            cfg.Groq.BaseURL,
			TranscriptionModel: cfg.Groq.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("app.Build: groq speech: %w", err)
		}
		return speech.NewGroq(client, cfg.Groq.Language), nil

	default:
		return nil, fmt.Errorf("app.Build: %w: %s", speech.ErrUnknownProvider, cfg.Provider)
	}
}

func buildLLM(ctx context.Context, cfg config.LLMConfig, l log.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg, l)
	if err != nil {
		return nil, fmt.Errorf("app.Build: llm providers: %w", err)
	}

	mcfg := llmprovider.DefaultConfig()
	mcfg.FallbackEnabled = cfg.FallbackEnabled
	mcfg.RetryAttempts = cfg.RetryAttempts
	if d, err := time.ParseDuration(cfg.RetryDelay); err == nil {
		mcfg.RetryDelay = d
	}
	if d, err := time.ParseDuration(cfg.MaxTotalTimeout); err == nil {
		mcfg.MaxTotalTimeout = d
	}

	for _, p := range providers {
		l.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
	}
	return llmprovider.NewManager(providers, mcfg, l), nil
}
