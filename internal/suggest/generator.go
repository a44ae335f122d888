// Package suggest turns an extracted resume, and optionally a scholar
// profile, into a ranked list of project suggestions. AI-generated
// candidates are preferred; template suggestions fill in when the model
// returns too few or nothing at all.
package suggest

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/project-scout/internal/augment"
	"github.com/jonathan/project-scout/internal/scoring"
	"github.com/jonathan/project-scout/internal/types"
)

// Result-set shape per generation outcome. A healthy AI batch stands alone;
// a short one gets minimal template padding; no AI at all falls back to
// templates entirely.
const (
	aiRequestCount  = 12
	aiOnlyThreshold = 6

	aiOnlyMax       = 12
	mixedPadCount   = 3
	mixedMax        = 10
	fallbackCount   = 8
	fallbackMax     = 8
	maxMatchingSkls = 5
)

// Generator produces ranked project suggestions.
type Generator struct {
	augmenter augment.SuggestionAugmenter
	scorer    *scoring.Scorer
	rng       *rand.Rand
	newID     func() string
}

// NewGenerator creates a generator with time-seeded jitter.
func NewGenerator(augmenter augment.SuggestionAugmenter) *Generator {
	return NewGeneratorWithSeed(augmenter, time.Now().UnixNano())
}

// NewGeneratorWithSeed creates a generator with deterministic jitter for
// testing. Suggestion IDs still vary per batch.
func NewGeneratorWithSeed(augmenter augment.SuggestionAugmenter, seed int64) *Generator {
	return &Generator{
		augmenter: augmenter,
		scorer:    scoring.NewScorerWithSeed(seed),
		rng:       rand.New(rand.NewSource(seed)),
		newID:     uuid.NewString,
	}
}

// Generate produces ranked suggestions for a resume and optional scholar
// profile. It never fails: any AI-path error degrades to the template
// fallback.
func (g *Generator) Generate(ctx context.Context, resume *types.ResumeData, profile *types.ScholarProfile) []types.ProjectSuggestion {
	candidates, err := g.augmenter.Generate(ctx, augment.Request{
		Resume:         resume,
		Profile:        profile,
		MaxSuggestions: aiRequestCount,
	})
	if err != nil {
		log.Printf("suggest: AI generation failed, using template fallback: %v", err)
		candidates = nil
	}

	aiSuggestions := g.convertCandidates(candidates, resume, profile)

	switch {
	case len(aiSuggestions) >= aiOnlyThreshold:
		sortByRelevance(aiSuggestions)
		return capSuggestions(aiSuggestions, aiOnlyMax)

	case len(aiSuggestions) > 0:
		combined := append(aiSuggestions, g.MinimalTemplateSuggestions(resume, profile, mixedPadCount)...)
		sortByRelevance(combined)
		return capSuggestions(combined, mixedMax)

	default:
		fallback := g.MinimalTemplateSuggestions(resume, profile, fallbackCount)
		sortByRelevance(fallback)
		return capSuggestions(fallback, fallbackMax)
	}
}

// convertCandidates scores and maps raw AI candidates to suggestions.
func (g *Generator) convertCandidates(candidates []augment.Candidate, resume *types.ResumeData, profile *types.ScholarProfile) []types.ProjectSuggestion {
	if len(candidates) == 0 {
		return nil
	}

	batch := g.newBatchID()
	suggestions := make([]types.ProjectSuggestion, 0, len(candidates))
	for i, c := range candidates {
		suggestions = append(suggestions, types.ProjectSuggestion{
			ID:                  fmt.Sprintf("ai-generated-%s-%d", batch, i+1),
			Title:               c.Title,
			Description:         c.Description,
			RelevanceScore:      g.scorer.AIScore(c.Text(), resume, profile, c.Difficulty),
			MatchingSkills:      MatchingSkills(c.Text(), resume),
			RelatedPublications: firstPublications(profile, 2),
			EstimatedDuration:   c.Duration,
			Difficulty:          c.Difficulty,
			Categories:          c.Categories,
			Source:              types.SourceAI,
		})
	}
	return suggestions
}

// MatchingSkills returns up to five of the user's skills and interests that
// appear in the suggestion text.
func MatchingSkills(suggestionText string, resume *types.ResumeData) []string {
	lowerText := strings.ToLower(suggestionText)
	userSkills := append(append([]string{}, resume.Skills...), resume.ResearchInterests...)

	var matching []string
	for _, skill := range userSkills {
		if strings.Contains(lowerText, strings.ToLower(skill)) {
			matching = append(matching, skill)
			if len(matching) == maxMatchingSkls {
				break
			}
		}
	}
	return matching
}

// newBatchID returns a short unique ID shared by all suggestions of one
// generation batch.
func (g *Generator) newBatchID() string {
	return g.newID()[:8]
}

func sortByRelevance(suggestions []types.ProjectSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].RelevanceScore > suggestions[j].RelevanceScore
	})
}

func capSuggestions(suggestions []types.ProjectSuggestion, max int) []types.ProjectSuggestion {
	if len(suggestions) > max {
		return suggestions[:max]
	}
	return suggestions
}
