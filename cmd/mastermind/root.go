package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jason-ezenwa/reddit-mastermind/internal/config"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "mastermind",
	Short: "Plan and synthesize a week of simulated Reddit marketing content",
	Long: `reddit-mastermind plans a structurally valid weekly calendar of simulated
Reddit posts and comment threads: subreddit/keyword/persona rotation,
plausible timestamps, thread shapes, and business-rule validation. The
wording of each post and comment comes from a configurable LLM provider.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "mastermind.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command, wiring OS signals into the context.
func Execute(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig reads .env, then the config file (falling back to defaults when
// absent), and installs the configured logger as the process default.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.LoadWithDefaults(configPath)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case cfg.Logging.Level == "debug":
		level = slog.LevelDebug
	case cfg.Logging.Level == "warn":
		level = slog.LevelWarn
	case cfg.Logging.Level == "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	return cfg, nil
}
