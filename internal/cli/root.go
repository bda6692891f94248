package cli

import (
	"context"

	"github.com/spf13/cobra"

	"daily-planner/config"
	"daily-planner/internal/app"
	"daily-planner/internal/schedule"
	"daily-planner/pkg/log"
)

var (
	configPath string
	verbose    bool
)

// plannerFactory builds the schedule use case; tests swap it for a fake.
var plannerFactory = func(ctx context.Context) (schedule.UseCase, func() error, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, err
	}

	level := "error"
	if verbose {
		level = cfg.Logger.Level
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return a.Schedule, a.Close, nil
}

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Turn a spoken or typed day plan into a 30-minute schedule",
	Long: `Planner asks an LLM to lay out your day in 30-minute slots and stores the result.

The first plan is stored, one edit is allowed, and then the schedule locks
until a developer reset. Use the redis store to keep state between runs.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: search ./config, ., /etc/app/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured level instead of errors only")

	rootCmd.AddCommand(planCmd, showCmd, resetCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// withPlanner builds the use case, runs fn and releases resources.
func withPlanner(cmd *cobra.Command, fn func(ctx context.Context, uc schedule.UseCase) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	uc, closeFn, err := plannerFactory(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(ctx, uc)
}
