package augment

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/project-scout/internal/schemas"
	"github.com/jonathan/project-scout/internal/types"
)

const maxCategories = 3

// jsonArrayPattern finds the first JSON array in free-form model output.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

type rawCandidate struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Difficulty         string   `json:"difficulty"`
	Duration           string   `json:"duration"`
	Categories         []string `json:"categories"`
	RelevanceReasoning string   `json:"relevanceReasoning"`
}

// ParseResponse extracts candidates from raw model output. Items are decoded
// and schema-validated one at a time so a single malformed item (missing a
// required field, categories not an array) is dropped without tainting its
// siblings. An unusable response yields zero candidates rather than an
// error, because the caller always has the template fallback.
func ParseResponse(response string) []Candidate {
	match := jsonArrayPattern.FindString(response)
	if match == "" {
		log.Printf("augment: no JSON array found in model response")
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(match), &items); err != nil {
		log.Printf("augment: failed to parse model response: %v", err)
		return nil
	}

	candidates := make([]Candidate, 0, len(items))
	for i, item := range items {
		if err := schemas.ValidateCandidate(string(item)); err != nil {
			log.Printf("augment: dropping candidate %d: %v", i+1, err)
			continue
		}

		var rc rawCandidate
		if err := json.Unmarshal(item, &rc); err != nil {
			log.Printf("augment: dropping candidate %d: %v", i+1, err)
			continue
		}

		categories := rc.Categories
		if len(categories) > maxCategories {
			categories = categories[:maxCategories]
		}
		candidates = append(candidates, Candidate{
			Title:              strings.TrimSpace(rc.Title),
			Description:        strings.TrimSpace(rc.Description),
			Difficulty:         normalizeDifficulty(rc.Difficulty),
			Duration:           strings.TrimSpace(rc.Duration),
			Categories:         categories,
			RelevanceReasoning: rc.RelevanceReasoning,
		})
	}
	return candidates
}

// normalizeDifficulty maps free-form difficulty labels onto the three
// supported levels, defaulting to Intermediate.
func normalizeDifficulty(difficulty string) string {
	lower := strings.ToLower(difficulty)
	switch {
	case strings.Contains(lower, "beginner") || strings.Contains(lower, "basic"):
		return types.DifficultyBeginner
	case strings.Contains(lower, "advanced") || strings.Contains(lower, "expert"):
		return types.DifficultyAdvanced
	default:
		return types.DifficultyIntermediate
	}
}
