package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
	"github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/llm/providers"
	"github.com/jason-ezenwa/reddit-mastermind/internal/planner"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

var (
	inputPath    string
	outputPath   string
	providerName string
	seed         int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one week's content calendar from an input file",
	Long: `Reads a YAML input bundle (company profile, personas, keywords, optional
week number), plans the week, generates every post and comment through the
configured provider, validates the result, and prints the calendar as JSON.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to input YAML (required)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write calendar JSON to file instead of stdout")
	generateCmd.Flags().StringVar(&providerName, "provider", "", "override the configured provider (anthropic, openai, google, ollama, mock)")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "seed for deterministic planning draws (0 = time-seeded)")
	_ = generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input, err := readPlanInput(inputPath)
	if err != nil {
		return err
	}

	providerCfg := cfg.LLM
	if providerName != "" {
		providerCfg.Type = llm.ProviderType(providerName)
	}

	generator, err := providers.NewGenerator(cmd.Context(), providerCfg)
	if err != nil {
		return err
	}

	opts := cfg.PlannerOptions()
	if seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	calendar, err := planner.NewPlanner(generator, opts).Generate(cmd.Context(), *input)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(calendar, "", "  ")
	if err != nil {
		return err
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, append(encoded, '\n'), 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

// readPlanInput loads and validates the input bundle. This is the boundary
// check; the planner itself assumes validated input.
func readPlanInput(path string) (*domain.PlanInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.INPUT_PARSE_FAILED, "failed to read input file", err)
	}

	var input domain.PlanInput
	if err := yaml.Unmarshal(raw, &input); err != nil {
		return nil, types.WrapError(types.INPUT_PARSE_FAILED, "failed to parse input file", err)
	}

	if err := input.Validate(); err != nil {
		return nil, types.WrapError(types.INPUT_INVALID, "invalid input", err)
	}
	return &input, nil
}
