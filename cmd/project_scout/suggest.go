package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-scout/internal/augment"
	"github.com/jonathan/project-scout/internal/config"
	"github.com/jonathan/project-scout/internal/observability"
	"github.com/jonathan/project-scout/internal/suggest"
	"github.com/jonathan/project-scout/internal/types"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate ranked project suggestions for a parsed resume",
	Long:  "Generate ranked project suggestions from a ResumeData JSON document and an optional ScholarProfile JSON document. AI candidates are used when a Gemini API key is configured and AI generation is enabled; the template catalog fills in otherwise.",
	RunE:  runSuggest,
}

var (
	suggestResumeFile  string
	suggestProfileFile string
	suggestOutputFile  string
	suggestConfigFile  string
	suggestAPIKey      string
	suggestAIEnabled   bool
	suggestCatalogOnly bool
	suggestVerbose     bool
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestResumeFile, "resume", "r", "", "Path to ResumeData JSON from parse-resume (required)")
	suggestCmd.Flags().StringVarP(&suggestProfileFile, "profile", "p", "", "Path to ScholarProfile JSON from fetch-profile")
	suggestCmd.Flags().StringVarP(&suggestOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	suggestCmd.Flags().StringVarP(&suggestConfigFile, "config", "c", "", "Path to JSON config file")
	suggestCmd.Flags().StringVar(&suggestAPIKey, "api-key", "", "Gemini API key (overrides GOOGLE_GEMINI_API_KEY env var)")
	suggestCmd.Flags().BoolVar(&suggestAIEnabled, "ai", false, "Enable AI generation (overrides AI_ENABLED env var)")
	suggestCmd.Flags().BoolVar(&suggestCatalogOnly, "catalog-only", false, "Skip AI entirely and run the full template catalog")
	suggestCmd.Flags().BoolVarP(&suggestVerbose, "verbose", "v", false, "Print a ranked summary")
	_ = suggestCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	var resume types.ResumeData
	if err := readJSON(suggestResumeFile, &resume); err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	var profile *types.ScholarProfile
	if suggestProfileFile != "" {
		profile = &types.ScholarProfile{}
		if err := readJSON(suggestProfileFile, profile); err != nil {
			return fmt.Errorf("failed to load scholar profile: %w", err)
		}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var generator *suggest.Generator
	var suggestions []types.ProjectSuggestion

	if suggestCatalogOnly {
		generator = suggest.NewGenerator(augment.Disabled{})
		suggestions = generator.TemplateSuggestions(&resume, profile)
	} else {
		augmenter := augment.New(ctx, augment.Options{
			APIKey:  cfg.APIKey,
			Enabled: cfg.AIEnabled,
		})
		generator = suggest.NewGenerator(augmenter)
		suggestions = generator.Generate(ctx, &resume, profile)
	}

	if suggestVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintSuggestions(suggestions)
	}
	return writeJSON(suggestOutputFile, suggestions)
}

// resolveConfig layers flag values over the config file over the
// environment. Flags win when explicitly set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()

	if suggestConfigFile != "" {
		fileCfg, err := config.LoadConfig(suggestConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		merged := fileCfg.MergeWithDefaults(cfg)
		if fileCfg.AIEnabled {
			merged.AIEnabled = true
		} else {
			merged.AIEnabled = cfg.AIEnabled
		}
		merged.Verbose = fileCfg.Verbose || cfg.Verbose
		cfg = merged
	}

	if suggestAPIKey != "" {
		cfg.APIKey = suggestAPIKey
	}
	if cmd.Flags().Changed("ai") {
		cfg.AIEnabled = suggestAIEnabled
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
