// Package scholar scrapes Google Scholar profile pages and search results
// into structured records. Extraction relies on a single fixed selector
// schema; missing fields degrade to zero values, structural failures fail
// closed with a generic upstream error.
package scholar

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/jonathan/project-scout/internal/fetch"
	"github.com/jonathan/project-scout/internal/ratelimit"
	"github.com/jonathan/project-scout/internal/types"
	"github.com/jonathan/project-scout/internal/validation"
)

const (
	// minQueryLength is the shortest accepted search query after sanitization.
	minQueryLength = 3
	// DefaultBaseURL is the scraping target root.
	DefaultBaseURL = "https://scholar.google.com"
	// browserTimeout bounds headless rendering when the browser path is on.
	browserTimeout = 30 * time.Second
)

// Config holds scraper construction options.
type Config struct {
	Limiter      ratelimit.Limiter // nil means the default 10/minute in-memory limiter
	FetchOptions *fetch.Options
	BaseURL      string // overridable for tests; defaults to DefaultBaseURL
	UseBrowser   bool   // render pages in a headless browser before parsing
	Verbose      bool
}

// Scraper fetches and parses scholar pages. Construct once and share; the
// only mutable state is the injected rate limiter.
type Scraper struct {
	limiter    ratelimit.Limiter
	opts       *fetch.Options
	baseURL    string
	useBrowser bool
	verbose    bool
}

// NewScraper creates a scraper from config.
func NewScraper(cfg *Config) *Scraper {
	if cfg == nil {
		cfg = &Config{}
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = ratelimit.NewFixedWindow(ratelimit.DefaultConfig())
	}
	opts := cfg.FetchOptions
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{
		limiter:    limiter,
		opts:       opts,
		baseURL:    baseURL,
		useBrowser: cfg.UseBrowser,
		verbose:    cfg.Verbose,
	}
}

// FetchProfile scrapes a scholar profile page into a ScholarProfile.
// callerID identifies the requesting client for rate limiting.
func (s *Scraper) FetchProfile(ctx context.Context, rawURL, callerID string) (*types.ScholarProfile, error) {
	if !s.limiter.Allow(callerID) {
		return nil, &RateLimitError{}
	}

	sanitized := validation.Sanitize(rawURL)
	if !validation.ValidScholarURL(sanitized) {
		return nil, &ValidationError{Message: "invalid Google Scholar URL"}
	}

	html, err := s.fetchHTML(ctx, sanitized)
	if err != nil {
		log.Printf("[SCHOLAR] profile fetch failed: %v", err)
		return nil, upstreamf(err, "failed to fetch Google Scholar profile")
	}

	profile, err := ParseProfile(html)
	if err != nil {
		log.Printf("[SCHOLAR] profile parse failed: %v", err)
		return nil, upstreamf(err, "failed to fetch Google Scholar profile")
	}
	return profile, nil
}

// SearchPublications runs a publication search and parses the result list.
func (s *Scraper) SearchPublications(ctx context.Context, query, callerID string) ([]types.Publication, error) {
	if !s.limiter.Allow(callerID) {
		return nil, &RateLimitError{}
	}

	sanitized := validation.Sanitize(query)
	if len(sanitized) < minQueryLength {
		return nil, &ValidationError{Message: "search query must be at least 3 characters long"}
	}

	searchURL := s.baseURL + "/scholar?q=" + url.QueryEscape(sanitized) + "&hl=en"
	html, err := s.fetchHTML(ctx, searchURL)
	if err != nil {
		log.Printf("[SCHOLAR] search fetch failed: %v", err)
		return nil, upstreamf(err, "failed to search Google Scholar")
	}

	results, err := ParseSearchResults(html)
	if err != nil {
		log.Printf("[SCHOLAR] search parse failed: %v", err)
		return nil, upstreamf(err, "failed to search Google Scholar")
	}
	return results, nil
}

// fetchHTML retrieves page HTML over plain HTTP or, when configured, through
// a headless browser render.
func (s *Scraper) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	if s.useBrowser {
		return fetch.WithBrowser(ctx, pageURL, browserTimeout, s.verbose)
	}
	result, err := fetch.URL(ctx, pageURL, s.opts)
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}
