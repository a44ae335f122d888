// Package augment produces AI-generated project candidates that supplement
// the template catalog. Generation is behind the SuggestionAugmenter
// interface so callers never need to know whether a real model is wired in.
package augment

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/project-scout/internal/llm"
	"github.com/jonathan/project-scout/internal/types"
)

// Candidate is one model-generated project idea, cleaned and normalized but
// not yet scored or ranked.
type Candidate struct {
	Title              string
	Description        string
	Difficulty         string
	Duration           string
	Categories         []string
	RelevanceReasoning string
}

// Text returns the searchable text of the candidate, used for skill and
// interest matching.
func (c Candidate) Text() string {
	return c.Title + " " + c.Description + " " + strings.Join(c.Categories, " ")
}

// Request carries the user context a generation call works from.
type Request struct {
	Resume         *types.ResumeData
	Profile        *types.ScholarProfile
	MaxSuggestions int
}

// SuggestionAugmenter generates project candidates for a user profile.
// Implementations return an empty slice, not an error, when generation is
// simply unavailable.
type SuggestionAugmenter interface {
	Generate(ctx context.Context, req Request) ([]Candidate, error)
}

// Disabled is the no-op augmenter used when AI generation is off or no
// usable API key is configured.
type Disabled struct{}

// Generate always returns no candidates.
func (Disabled) Generate(context.Context, Request) ([]Candidate, error) {
	return nil, nil
}

// Keys shipped in example configuration. Treated the same as no key at all.
var placeholderKeys = map[string]bool{
	"your_gemini_api_key_here":                       true,
	"AIzaSyCMockKey_GetYourRealKeyFromGoogleAIStudio": true,
}

// Options selects and configures the augmenter implementation.
type Options struct {
	APIKey    string
	Enabled   bool
	ModelTier llm.ModelTier
}

// New returns a Gemini-backed augmenter when AI generation is enabled and a
// real API key is configured, and Disabled otherwise. Construction never
// fails into an unusable state.
func New(ctx context.Context, opts Options) SuggestionAugmenter {
	if !opts.Enabled {
		return Disabled{}
	}
	if opts.APIKey == "" {
		log.Printf("augment: no API key configured, AI suggestions disabled")
		return Disabled{}
	}
	if placeholderKeys[opts.APIKey] {
		log.Printf("augment: placeholder API key detected, AI suggestions disabled")
		return Disabled{}
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), opts.APIKey)
	if err != nil {
		log.Printf("augment: failed to initialize model client, AI suggestions disabled: %v", err)
		return Disabled{}
	}

	tier := opts.ModelTier
	if tier == "" {
		tier = llm.TierStandard
	}
	return NewGemini(client, tier)
}
