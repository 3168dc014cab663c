package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gemini-ocs/ocs/internal/config"
	"github.com/gemini-ocs/ocs/internal/console"
	"github.com/gemini-ocs/ocs/internal/events"
	"github.com/gemini-ocs/ocs/internal/lifecycle"
	"github.com/spf13/cobra"
)

var (
	engineCfg config.EngineConfig
	rt        *runtime
)

var rootCmd = &cobra.Command{
	Use:   "ocs",
	Short: "Gemini Observatory Control System",
	Long: `ocs manages science plans for the Gemini telescopes: creation and
validation, testing, submission, observer validation and conversion into
observing programs.

Configuration is read from OCS_* environment variables. See 'ocs config'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.EngineConfigFromEnv()
		if err != nil {
			return err
		}
		engineCfg = cfg
		rt, err = newRuntime(cmd.Context(), cfg, newLogger(cfg))
		return err
	},
}

// runtime wires the engine and its collaborators for one process.
type runtime struct {
	logger   *slog.Logger
	facility *config.Facility
	history  *events.Log
	engine   *lifecycle.Engine
	console  *console.Console
}

func newLogger(cfg config.EngineConfig) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
}

func newRuntime(ctx context.Context, cfg config.EngineConfig, logger *slog.Logger) (*runtime, error) {
	facility := config.DefaultFacility()
	if cfg.FacilityFile != "" {
		f, err := config.LoadFacility(cfg.FacilityFile)
		if err != nil {
			return nil, err
		}
		facility = f
	}

	history := events.NewLog(cfg.EventLogCapacity)
	engine, err := lifecycle.New(&lifecycle.Config{Logger: logger, Recorder: history})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	engine.SetOffline(cfg.Offline)

	dates, err := facility.Dates()
	if err != nil {
		return nil, err
	}
	for _, d := range dates {
		if res := engine.AddUnavailableDate(ctx, d); !res.OK {
			logger.Warn("skipping unavailable date", "date", d.Format(config.DateLayout), "reason", res.Code)
		}
	}

	cons := console.New(console.Options{
		Logger:                logger,
		LiveViewURL:           cfg.LiveViewURL,
		CommandRate:           cfg.CommandRate,
		CommandBurst:          cfg.CommandBurst,
		MaxConcurrentCommands: cfg.MaxConcurrentCommands,
	})
	for _, path := range facility.Configurations {
		cons.AddConfiguration(path)
	}

	logger.Debug("runtime ready", "config", cfg.String(), "telescopes", facility.Telescopes)
	return &runtime{
		logger:   logger,
		facility: facility,
		history:  history,
		engine:   engine,
		console:  cons,
	}, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
