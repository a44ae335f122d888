package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/project-scout/internal/types"
)

func baseResume() *types.ResumeData {
	return &types.ResumeData{
		Skills: []string{"Python", "Machine Learning"},
		Experience: []types.ExperienceEntry{
			{Title: "Research Engineer"},
		},
		Education: []types.EducationEntry{
			{Degree: "Bachelors", Institution: "State University"},
		},
		ResearchInterests: []string{"machine learning"},
	}
}

func TestTemplateScoreWithinBand(t *testing.T) {
	s := NewScorerWithSeed(1)
	resume := baseResume()

	// base 60 + 2 skills*5 + 1 exp*2 + 1 edu*3 + 1 interest*4 = 79,
	// plus jitter [0,10).
	score := s.TemplateScore([]string{"Python", "Machine Learning"}, resume, nil, types.DifficultyBeginner)
	assert.GreaterOrEqual(t, score, 79.0)
	assert.Less(t, score, 89.0)
}

func TestTemplateScoreProfileBonus(t *testing.T) {
	resume := baseResume()
	profile := &types.ScholarProfile{
		Publications:  make([]types.Publication, 3),
		CitationCount: 500,
	}

	withProfile := NewScorerWithSeed(1).TemplateScore(nil, resume, profile, types.DifficultyBeginner)
	without := NewScorerWithSeed(1).TemplateScore(nil, resume, nil, types.DifficultyBeginner)

	// +10 profile, +6 publications, +5 citations.
	assert.InDelta(t, 21.0, withProfile-without, 0.0001)
}

func TestTemplateScorePublicationAndCitationCaps(t *testing.T) {
	resume := baseResume()
	huge := &types.ScholarProfile{
		Publications:  make([]types.Publication, 500),
		CitationCount: 1_000_000,
	}
	modest := &types.ScholarProfile{
		Publications:  make([]types.Publication, 10),
		CitationCount: 1500,
	}

	hugeScore := NewScorerWithSeed(3).TemplateScore(nil, resume, huge, types.DifficultyBeginner)
	modestScore := NewScorerWithSeed(3).TemplateScore(nil, resume, modest, types.DifficultyBeginner)

	// Both hit the publication and citation caps, so the bonuses are equal.
	assert.InDelta(t, hugeScore, modestScore, 0.0001)
}

func TestTemplateScoreDifficultyBonus(t *testing.T) {
	advanced := &types.ResumeData{
		Education: []types.EducationEntry{{Degree: "PhD"}},
	}
	junior := &types.ResumeData{}

	advScore := NewScorerWithSeed(7).TemplateScore(nil, advanced, nil, types.DifficultyAdvanced)
	advNoBackground := NewScorerWithSeed(7).TemplateScore(nil, junior, nil, types.DifficultyAdvanced)
	inter := NewScorerWithSeed(7).TemplateScore(nil, junior, nil, types.DifficultyIntermediate)

	// PhD + advanced difficulty: +5 over the same resume minus the degree bonus (3 edu points + 5 difficulty).
	assert.InDelta(t, 8.0, advScore-advNoBackground, 0.0001)
	assert.InDelta(t, 3.0, inter-advNoBackground, 0.0001)
}

func TestTemplateScoreClamped(t *testing.T) {
	resume := &types.ResumeData{
		Skills:            make([]string, 30),
		Experience:        make([]types.ExperienceEntry, 20),
		ResearchInterests: make([]string, 20),
	}
	profile := &types.ScholarProfile{Publications: make([]types.Publication, 100), CitationCount: 100000}

	s := NewScorerWithSeed(5)
	high := s.TemplateScore(resume.Skills, resume, profile, types.DifficultyIntermediate)
	assert.Equal(t, 100.0, high)

	low := NewScorerWithSeed(5).TemplateScore(nil, &types.ResumeData{}, nil, types.DifficultyBeginner)
	assert.GreaterOrEqual(t, low, 50.0)
	assert.LessOrEqual(t, low, 100.0)
}

func TestAIScoreCountsSkillMentions(t *testing.T) {
	resume := baseResume()
	text := "Build a Python pipeline for machine learning experiments"

	withMatches := NewScorerWithSeed(2).AIScore(text, resume, nil, types.DifficultyBeginner)
	noMatches := NewScorerWithSeed(2).AIScore("Design a bridge", resume, nil, types.DifficultyBeginner)

	// "Python" from skills plus "machine learning" from both skills and
	// interests: three +3 hits.
	assert.InDelta(t, 9.0, withMatches-noMatches, 0.0001)
}

func TestAIScoreProfileInterests(t *testing.T) {
	resume := &types.ResumeData{}
	profile := &types.ScholarProfile{ResearchInterests: []string{"computer vision", "robotics"}}
	text := "A computer vision system for robotics labs"

	with := NewScorerWithSeed(4).AIScore(text, resume, profile, types.DifficultyBeginner)
	without := NewScorerWithSeed(4).AIScore(text, resume, nil, types.DifficultyBeginner)

	// +10 profile plus two +5 interest mentions.
	assert.InDelta(t, 20.0, with-without, 0.0001)
}

func TestAIScoreBand(t *testing.T) {
	score := NewScorerWithSeed(9).AIScore("anything", &types.ResumeData{}, nil, types.DifficultyBeginner)
	assert.GreaterOrEqual(t, score, 70.0)
	assert.Less(t, score, 75.0)

	floor := NewScorerWithSeed(9).AIScore("", &types.ResumeData{}, nil, "")
	assert.GreaterOrEqual(t, floor, 60.0)
	assert.LessOrEqual(t, floor, 100.0)
}

func TestSimpleRelevance(t *testing.T) {
	tests := []struct {
		name         string
		skills       []string
		interests    []string
		publications []string
		want         int
	}{
		{name: "empty inputs", want: 0},
		{
			name:         "all signals saturated",
			skills:       make([]string, 10),
			interests:    make([]string, 5),
			publications: make([]string, 10),
			want:         100,
		},
		{
			name:   "skills only",
			skills: make([]string, 5),
			want:   20, // 0.5 * 0.4 * 100
		},
		{
			name:      "interests dominate",
			interests: make([]string, 5),
			want:      40,
		},
		{
			name:         "publications weighted lightest",
			publications: make([]string, 10),
			want:         20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SimpleRelevance(tt.skills, tt.interests, tt.publications))
		})
	}
}

func TestHasAdvancedBackground(t *testing.T) {
	assert.True(t, HasAdvancedBackground(&types.ResumeData{
		Experience: make([]types.ExperienceEntry, 3),
	}))
	assert.True(t, HasAdvancedBackground(&types.ResumeData{
		Education: []types.EducationEntry{{Degree: "PhD"}},
	}))
	assert.True(t, HasAdvancedBackground(&types.ResumeData{
		Education: []types.EducationEntry{{Degree: "Masters"}},
	}))
	assert.False(t, HasAdvancedBackground(&types.ResumeData{
		Experience: make([]types.ExperienceEntry, 2),
		Education:  []types.EducationEntry{{Degree: "Bachelors"}},
	}))
}
