package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-scout/internal/config"
	"github.com/jonathan/project-scout/internal/fetch"
	"github.com/jonathan/project-scout/internal/observability"
	"github.com/jonathan/project-scout/internal/ratelimit"
	"github.com/jonathan/project-scout/internal/scholar"
)

var fetchProfileCmd = &cobra.Command{
	Use:   "fetch-profile",
	Short: "Scrape a Google Scholar profile into structured JSON",
	RunE:  runFetchProfile,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search Google Scholar and return publication hits as JSON",
	RunE:  runSearch,
}

var (
	scholarURL        string
	scholarQuery      string
	scholarOutputFile string
	scholarBaseURL    string
	scholarRateLimit  int
	scholarUseBrowser bool
	scholarTimeout    time.Duration
	scholarVerbose    bool
)

func init() {
	fetchProfileCmd.Flags().StringVarP(&scholarURL, "url", "u", "", "Scholar profile URL (required)")
	_ = fetchProfileCmd.MarkFlagRequired("url")

	searchCmd.Flags().StringVarP(&scholarQuery, "query", "q", "", "Search query, at least 3 characters (required)")
	_ = searchCmd.MarkFlagRequired("query")

	for _, cmd := range []*cobra.Command{fetchProfileCmd, searchCmd} {
		cmd.Flags().StringVarP(&scholarOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
		cmd.Flags().StringVar(&scholarBaseURL, "base-url", "", "Override the Scholar base URL (testing)")
		cmd.Flags().IntVar(&scholarRateLimit, "rate-limit", config.DefaultRateLimit, "Requests allowed per minute (0 = unlimited)")
		cmd.Flags().BoolVar(&scholarUseBrowser, "use-browser", false, "Render pages with a headless browser")
		cmd.Flags().DurationVar(&scholarTimeout, "timeout", 30*time.Second, "Per-request timeout")
		cmd.Flags().BoolVarP(&scholarVerbose, "verbose", "v", false, "Print a profile summary")
		rootCmd.AddCommand(cmd)
	}
}

// applyScholarEnvDefaults fills scholar flags the user did not set from the
// environment config. Explicit flags always win.
func applyScholarEnvDefaults(cmd *cobra.Command) {
	cfg := config.FromEnv()
	if !cmd.Flags().Changed("use-browser") && cfg.UseBrowser {
		scholarUseBrowser = true
	}
	if !cmd.Flags().Changed("verbose") && cfg.Verbose {
		scholarVerbose = true
	}
	if !cmd.Flags().Changed("rate-limit") && cfg.RateLimit > 0 {
		scholarRateLimit = cfg.RateLimit
	}
	if !cmd.Flags().Changed("base-url") && cfg.ScholarBaseURL != "" {
		scholarBaseURL = cfg.ScholarBaseURL
	}
}

func newScraper() *scholar.Scraper {
	return scholar.NewScraper(&scholar.Config{
		Limiter: ratelimit.NewFixedWindow(&ratelimit.Config{
			Limit:  scholarRateLimit,
			Window: time.Minute,
		}),
		FetchOptions: &fetch.Options{
			Timeout:   scholarTimeout,
			UserAgent: fetch.DefaultUserAgent,
		},
		BaseURL:      scholarBaseURL,
		UseBrowser:   scholarUseBrowser,
		Verbose:      scholarVerbose,
	})
}

func runFetchProfile(cmd *cobra.Command, _ []string) error {
	applyScholarEnvDefaults(cmd)
	profile, err := newScraper().FetchProfile(context.Background(), scholarURL, "cli")
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	if scholarVerbose {
		observability.NewPrinter(os.Stderr).PrintScholarProfile(profile)
	}
	return writeJSON(scholarOutputFile, profile)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	applyScholarEnvDefaults(cmd)
	publications, err := newScraper().SearchPublications(context.Background(), scholarQuery, "cli")
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return writeJSON(scholarOutputFile, publications)
}
