package suggest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/project-scout/internal/augment"
	"github.com/jonathan/project-scout/internal/types"
)

// stubAugmenter returns a fixed candidate set or error.
type stubAugmenter struct {
	candidates []augment.Candidate
	err        error
	gotReq     augment.Request
}

func (s *stubAugmenter) Generate(_ context.Context, req augment.Request) ([]augment.Candidate, error) {
	s.gotReq = req
	return s.candidates, s.err
}

func makeCandidates(n int) []augment.Candidate {
	out := make([]augment.Candidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, augment.Candidate{
			Title:       fmt.Sprintf("Candidate %d", i+1),
			Description: "Build something with Python and machine learning.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "3-6 months",
			Categories:  []string{"Research"},
		})
	}
	return out
}

func testResume() *types.ResumeData {
	return &types.ResumeData{
		Skills:            []string{"Python", "Machine Learning", "SQL"},
		ResearchInterests: []string{"data science"},
	}
}

func TestGenerate_AIOnlyPath(t *testing.T) {
	stub := &stubAugmenter{candidates: makeCandidates(8)}
	g := NewGeneratorWithSeed(stub, 1)

	suggestions := g.Generate(context.Background(), testResume(), nil)
	require.Len(t, suggestions, 8)

	for _, s := range suggestions {
		assert.Equal(t, types.SourceAI, s.Source)
	}
	assert.True(t, sort.SliceIsSorted(suggestions, func(i, j int) bool {
		return suggestions[i].RelevanceScore > suggestions[j].RelevanceScore
	}))
	// Twelve candidates are requested regardless of how many come back.
	assert.Equal(t, 12, stub.gotReq.MaxSuggestions)
}

func TestGenerate_AIOnlyCappedAtTwelve(t *testing.T) {
	g := NewGeneratorWithSeed(&stubAugmenter{candidates: makeCandidates(15)}, 1)

	suggestions := g.Generate(context.Background(), testResume(), nil)
	assert.Len(t, suggestions, 12)
}

func TestGenerate_MixedPath(t *testing.T) {
	g := NewGeneratorWithSeed(&stubAugmenter{candidates: makeCandidates(3)}, 1)

	suggestions := g.Generate(context.Background(), testResume(), nil)
	require.Len(t, suggestions, 6) // 3 AI + 3 template pad

	sources := map[string]int{}
	for _, s := range suggestions {
		sources[s.Source]++
	}
	assert.Equal(t, 3, sources[types.SourceAI])
	assert.Equal(t, 3, sources[types.SourceTemplate])
	assert.LessOrEqual(t, len(suggestions), 10)
}

func TestGenerate_FallbackWhenNoCandidates(t *testing.T) {
	g := NewGeneratorWithSeed(&stubAugmenter{}, 1)

	suggestions := g.Generate(context.Background(), testResume(), nil)
	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 8)
	for _, s := range suggestions {
		assert.Equal(t, types.SourceTemplate, s.Source)
	}
}

func TestGenerate_FallbackOnError(t *testing.T) {
	g := NewGeneratorWithSeed(&stubAugmenter{err: errors.New("model unavailable")}, 1)

	suggestions := g.Generate(context.Background(), testResume(), nil)
	require.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.Equal(t, types.SourceTemplate, s.Source)
	}
}

func TestGenerate_ProfileFlowsIntoSuggestions(t *testing.T) {
	profile := &types.ScholarProfile{
		ResearchInterests: []string{"computer vision"},
		Publications: []types.Publication{
			{Title: "Paper One"},
			{Title: "Paper Two"},
			{Title: "Paper Three"},
		},
	}
	g := NewGeneratorWithSeed(&stubAugmenter{candidates: makeCandidates(6)}, 1)

	suggestions := g.Generate(context.Background(), testResume(), profile)
	require.NotEmpty(t, suggestions)
	// Only the first two publications ride along.
	assert.Len(t, suggestions[0].RelatedPublications, 2)
	assert.Equal(t, "Paper One", suggestions[0].RelatedPublications[0].Title)
}

func TestMatchingSkills(t *testing.T) {
	resume := &types.ResumeData{
		Skills:            []string{"Python", "Go", "SQL", "Docker", "React", "AWS"},
		ResearchInterests: []string{"machine learning"},
	}

	matches := MatchingSkills("A Python service with SQL storage for machine learning jobs", resume)
	assert.Equal(t, []string{"Python", "SQL", "machine learning"}, matches)

	// Capped at five even when everything matches.
	all := MatchingSkills("python go sql docker react aws machine learning", resume)
	assert.Len(t, all, 5)

	assert.Empty(t, MatchingSkills("nothing relevant here", resume))
}

func TestGenerate_UniqueIDsWithinBatch(t *testing.T) {
	g := NewGeneratorWithSeed(&stubAugmenter{candidates: makeCandidates(8)}, 1)

	suggestions := g.Generate(context.Background(), testResume(), nil)
	seen := map[string]bool{}
	for _, s := range suggestions {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}
}
