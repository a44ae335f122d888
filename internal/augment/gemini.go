package augment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/project-scout/internal/llm"
	"github.com/jonathan/project-scout/internal/prompts"
	"github.com/jonathan/project-scout/internal/types"
)

const promptFile = "suggestions.json"

// Gemini generates candidates through the configured model client.
type Gemini struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGemini creates a Gemini-backed augmenter. The client is injectable for
// testing.
func NewGemini(client llm.Client, tier llm.ModelTier) *Gemini {
	return &Gemini{client: client, tier: tier}
}

// Generate asks the model for project candidates and parses its response.
// A response the parser cannot use yields zero candidates without an error;
// only transport and model failures are returned as errors.
func (g *Gemini) Generate(ctx context.Context, req Request) ([]Candidate, error) {
	response, err := g.client.GenerateJSON(ctx, buildPrompt(req), g.tier)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}
	return ParseResponse(response), nil
}

// buildPrompt renders the suggestion prompt template with the user's
// profile details.
func buildPrompt(req Request) string {
	resume := req.Resume

	experience := make([]string, 0, len(resume.Experience))
	for _, exp := range resume.Experience {
		experience = append(experience, fmt.Sprintf("%s at %s", exp.Title, exp.Company))
	}

	education := make([]string, 0, len(resume.Education))
	for _, edu := range resume.Education {
		education = append(education, fmt.Sprintf("%s in %s from %s", edu.Degree, edu.Field, edu.Institution))
	}

	template := prompts.MustGet(promptFile, "generate-project-suggestions")
	return prompts.Format(template, map[string]string{
		"MaxSuggestions":    fmt.Sprintf("%d", req.MaxSuggestions),
		"Skills":            strings.Join(resume.Skills, ", "),
		"ResearchInterests": strings.Join(resume.ResearchInterests, ", "),
		"Experience":        strings.Join(experience, ", "),
		"Education":         strings.Join(education, ", "),
		"ScholarInfo":       scholarInfo(req.Profile),
	})
}

func scholarInfo(profile *types.ScholarProfile) string {
	if profile == nil {
		return ""
	}
	template := prompts.MustGet(promptFile, "scholar-info-block")
	return prompts.Format(template, map[string]string{
		"Interests":        strings.Join(profile.ResearchInterests, ", "),
		"PublicationCount": fmt.Sprintf("%d", len(profile.Publications)),
		"CitationCount":    fmt.Sprintf("%d", profile.CitationCount),
		"HIndex":           fmt.Sprintf("%d", profile.HIndex),
	})
}
