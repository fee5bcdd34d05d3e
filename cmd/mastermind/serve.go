package main

import (
	"github.com/spf13/cobra"

	"github.com/jason-ezenwa/reddit-mastermind/internal/api"
	"github.com/jason-ezenwa/reddit-mastermind/internal/llm/providers"
	"github.com/jason-ezenwa/reddit-mastermind/internal/planner"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calendar HTTP adapter",
	Long: `Starts the HTTP adapter exposing POST /api/v1/calendar, /healthz and
/metrics. The adapter validates input shape at the boundary and returns
either a complete calendar or an error classification, never partial data.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	generator, err := providers.NewGenerator(cmd.Context(), cfg.LLM)
	if err != nil {
		return err
	}

	p := planner.NewPlanner(generator, cfg.PlannerOptions())

	server := api.NewServer(
		p,
		generator.ProviderName(),
		cfg.Server.Addr,
		cfg.Server.AllowedOrigins,
		cfg.Server.ShutdownTimeout,
		nil,
	)
	return server.Run(cmd.Context())
}
