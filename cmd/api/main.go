package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daily-planner/config"
	"daily-planner/internal/app"
	"daily-planner/internal/httpserver"
	"daily-planner/pkg/log"
)

// @title       Daily Planner API
// @description Turns a spoken or typed day plan into a 30-minute schedule with a one-edit lock.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Schedule domain
	planner, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize planner: ", err)
		return
	}
	defer planner.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:               logger,
		Port:                 cfg.HTTPServer.Port,
		Mode:                 cfg.HTTPServer.Mode,
		Environment:          cfg.Environment.Name,
		AllowedOrigins:       cfg.CORS.AllowedOrigins,
		ResetRateLimitPerMin: cfg.Planner.ResetRateLimitPerMin,
		ScheduleUseCase:      planner.Schedule,
		MaxAudioBytes:        cfg.Planner.MaxAudioBytes,
		ReadyCheck:           planner.Ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
