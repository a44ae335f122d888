package augment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/project-scout/internal/llm"
	"github.com/jonathan/project-scout/internal/types"
)

const validResponse = `Here are some ideas:
[
  {
    "title": "Real-Time Anomaly Detection Platform",
    "description": "Stream sensor data through online models to flag anomalies as they happen.",
    "difficulty": "Advanced",
    "duration": "6-12 months",
    "categories": ["Machine Learning", "Streaming", "Infrastructure", "Extra"],
    "relevanceReasoning": "Builds on streaming experience."
  },
  {
    "title": "Missing fields",
    "description": "No difficulty or duration."
  }
]`

func TestParseResponse(t *testing.T) {
	candidates := ParseResponse(validResponse)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "Real-Time Anomaly Detection Platform", c.Title)
	assert.Equal(t, types.DifficultyAdvanced, c.Difficulty)
	assert.Equal(t, "6-12 months", c.Duration)
	// Categories are capped at three.
	assert.Equal(t, []string{"Machine Learning", "Streaming", "Infrastructure"}, c.Categories)
}

func TestParseResponse_NoArray(t *testing.T) {
	assert.Empty(t, ParseResponse("I could not produce any suggestions."))
}

func TestParseResponse_MalformedJSON(t *testing.T) {
	assert.Empty(t, ParseResponse(`[{"title": "broken"`))
}

func TestParseResponse_StringCategoriesDropsOnlyThatItem(t *testing.T) {
	response := `[
		{
			"title": "Good Item",
			"description": "A complete candidate.",
			"difficulty": "Intermediate",
			"duration": "3-6 months",
			"categories": ["Research"]
		},
		{
			"title": "Bad Item",
			"description": "Categories should be an array.",
			"difficulty": "Intermediate",
			"duration": "3-6 months",
			"categories": "Research"
		}
	]`

	candidates := ParseResponse(response)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Good Item", candidates[0].Title)
}

func TestParseResponse_NonObjectItemDropped(t *testing.T) {
	response := `[
		"just a string",
		{
			"title": "Survivor",
			"description": "Valid sibling.",
			"difficulty": "Advanced",
			"duration": "6-12 months",
			"categories": []
		}
	]`

	candidates := ParseResponse(response)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Survivor", candidates[0].Title)
}

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Beginner", types.DifficultyBeginner},
		{"basic level", types.DifficultyBeginner},
		{"Advanced", types.DifficultyAdvanced},
		{"Expert", types.DifficultyAdvanced},
		{"Intermediate", types.DifficultyIntermediate},
		{"something else", types.DifficultyIntermediate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDifficulty(tt.input), tt.input)
	}
}

func TestCandidateText(t *testing.T) {
	c := Candidate{
		Title:       "Graph Search",
		Description: "Index citations",
		Categories:  []string{"NLP", "Search"},
	}
	assert.Equal(t, "Graph Search Index citations NLP Search", c.Text())
}

func TestNewSelectsDisabled(t *testing.T) {
	ctx := context.Background()

	assert.IsType(t, Disabled{}, New(ctx, Options{APIKey: "real-key", Enabled: false}))
	assert.IsType(t, Disabled{}, New(ctx, Options{APIKey: "", Enabled: true}))
	assert.IsType(t, Disabled{}, New(ctx, Options{APIKey: "your_gemini_api_key_here", Enabled: true}))
	assert.IsType(t, Disabled{}, New(ctx, Options{
		APIKey:  "AIzaSyCMockKey_GetYourRealKeyFromGoogleAIStudio",
		Enabled: true,
	}))
}

func TestDisabledGenerate(t *testing.T) {
	candidates, err := Disabled{}.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Empty(t, candidates)
}

// fakeClient returns a canned response without touching the network.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateContent(ctx, prompt, tier)
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func TestGeminiGenerate(t *testing.T) {
	fake := &fakeClient{response: validResponse}
	g := NewGemini(fake, llm.TierStandard)

	req := Request{
		Resume: &types.ResumeData{
			Skills:            []string{"Python", "Go"},
			ResearchInterests: []string{"machine learning"},
			Experience:        []types.ExperienceEntry{{Title: "Engineer", Company: "Acme"}},
			Education:         []types.EducationEntry{{Degree: "Masters", Field: "CS", Institution: "State University"}},
		},
		Profile: &types.ScholarProfile{
			ResearchInterests: []string{"robotics"},
			Publications:      make([]types.Publication, 4),
			CitationCount:     120,
			HIndex:            7,
		},
		MaxSuggestions: 12,
	}

	candidates, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)

	// The rendered prompt carries the profile details.
	assert.Contains(t, fake.prompt, "generate 12 unique")
	assert.Contains(t, fake.prompt, "Python, Go")
	assert.Contains(t, fake.prompt, "Engineer at Acme")
	assert.Contains(t, fake.prompt, "Masters in CS from State University")
	assert.Contains(t, fake.prompt, "H-Index: 7")
}

func TestGeminiGenerate_ClientError(t *testing.T) {
	fake := &fakeClient{err: errors.New("quota exceeded")}
	g := NewGemini(fake, llm.TierStandard)

	_, err := g.Generate(context.Background(), Request{Resume: &types.ResumeData{}})
	assert.Error(t, err)
}

func TestGeminiGenerate_PromptOmitsScholarBlock(t *testing.T) {
	fake := &fakeClient{response: "[]"}
	g := NewGemini(fake, llm.TierStandard)

	_, err := g.Generate(context.Background(), Request{Resume: &types.ResumeData{}, MaxSuggestions: 8})
	require.NoError(t, err)
	assert.NotContains(t, fake.prompt, "Scholar Profile:")
}
