// Package scoring computes 0-100 relevance scores for project suggestions by
// blending weighted signals from the resume, the optional scholar profile,
// and the suggestion itself. A small random jitter breaks ties between
// near-identical candidates; callers must treat scores as a band, not an
// exact value.
package scoring

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jonathan/project-scout/internal/types"
)

// Template-path scoring weights. The two paths use deliberately offset
// floors (50 vs 60) so AI-origin suggestions never rank below the weakest
// template suggestion.
const (
	templateBaseScore     = 60.0
	templateSkillPoints   = 5.0
	templateExpPoints     = 2.0
	templateEduPoints     = 3.0
	templateInterestPts   = 4.0
	templateProfileBonus  = 10.0
	templatePubPointsCap  = 20.0
	templateCitationCap   = 15.0
	templateAdvancedBonus = 5.0
	templateInterBonus    = 3.0
	templateJitterRange   = 10.0
	templateFloor         = 50.0
)

// AI-path scoring weights.
const (
	aiBaseScore      = 70.0
	aiSkillPoints    = 3.0
	aiProfileBonus   = 10.0
	aiInterestPoints = 5.0
	aiAdvancedBonus  = 10.0
	aiInterBonus     = 5.0
	aiJitterRange    = 5.0
	aiFloor          = 60.0
)

const scoreCeiling = 100.0

// Simple three-signal weights, preserved from the original heuristic.
// Tunable, no documented rationale.
const (
	simpleSkillWeight       = 0.4
	simpleInterestWeight    = 0.4
	simplePublicationWeight = 0.2
)

// Scorer produces relevance scores. The jitter source is injectable so tests
// can seed it.
type Scorer struct {
	rng *rand.Rand
}

// NewScorer creates a time-seeded scorer.
func NewScorer() *Scorer {
	return NewScorerWithSeed(time.Now().UnixNano())
}

// NewScorerWithSeed creates a scorer with a deterministic jitter seed.
func NewScorerWithSeed(seed int64) *Scorer {
	return &Scorer{rng: rand.New(rand.NewSource(seed))}
}

// TemplateScore scores a catalog suggestion against the user's background.
// The result is always within [50,100].
func (s *Scorer) TemplateScore(matchingSkills []string, resume *types.ResumeData, profile *types.ScholarProfile, difficulty string) float64 {
	score := templateBaseScore

	score += float64(len(matchingSkills)) * templateSkillPoints
	score += float64(len(resume.Experience)) * templateExpPoints
	score += float64(len(resume.Education)) * templateEduPoints
	score += float64(len(resume.ResearchInterests)) * templateInterestPts

	if profile != nil {
		score += templateProfileBonus
		score += math.Min(float64(len(profile.Publications))*2, templatePubPointsCap)
		score += math.Min(float64(profile.CitationCount)/100, templateCitationCap)
	}

	switch {
	case difficulty == types.DifficultyAdvanced && HasAdvancedBackground(resume):
		score += templateAdvancedBonus
	case difficulty == types.DifficultyIntermediate:
		score += templateInterBonus
	}

	score += s.rng.Float64() * templateJitterRange

	return clamp(score, templateFloor, scoreCeiling)
}

// AIScore scores a generated suggestion by how much of the user's background
// appears in its text. The result is always within [60,100].
func (s *Scorer) AIScore(suggestionText string, resume *types.ResumeData, profile *types.ScholarProfile, difficulty string) float64 {
	score := aiBaseScore
	lowerText := strings.ToLower(suggestionText)

	for _, skill := range userSkills(resume) {
		if strings.Contains(lowerText, strings.ToLower(skill)) {
			score += aiSkillPoints
		}
	}

	if profile != nil {
		score += aiProfileBonus
		for _, interest := range profile.ResearchInterests {
			if strings.Contains(lowerText, strings.ToLower(interest)) {
				score += aiInterestPoints
			}
		}
	}

	switch {
	case difficulty == types.DifficultyAdvanced && HasAdvancedBackground(resume):
		score += aiAdvancedBonus
	case difficulty == types.DifficultyIntermediate:
		score += aiInterBonus
	}

	score += s.rng.Float64() * aiJitterRange

	return clamp(score, aiFloor, scoreCeiling)
}

// SimpleRelevance is the quick three-signal score used outside the generator:
// skills, interests, and publication counts normalized and weighted to 0-100.
func SimpleRelevance(skills, interests, publications []string) int {
	skillScore := math.Min(float64(len(skills))/10, 1)
	interestScore := math.Min(float64(len(interests))/5, 1)
	publicationScore := math.Min(float64(len(publications))/10, 1)

	weighted := skillScore*simpleSkillWeight +
		interestScore*simpleInterestWeight +
		publicationScore*simplePublicationWeight

	return int(math.Round(weighted * 100))
}

// HasAdvancedBackground reports whether the resume indicates experience
// suited to advanced projects: more than two positions, or a PhD/Masters.
func HasAdvancedBackground(resume *types.ResumeData) bool {
	if len(resume.Experience) > 2 {
		return true
	}
	for _, edu := range resume.Education {
		if strings.Contains(edu.Degree, "PhD") || strings.Contains(edu.Degree, "Master") {
			return true
		}
	}
	return false
}

// userSkills is the combined skill and interest vocabulary of the user.
func userSkills(resume *types.ResumeData) []string {
	combined := make([]string, 0, len(resume.Skills)+len(resume.ResearchInterests))
	combined = append(combined, resume.Skills...)
	combined = append(combined, resume.ResearchInterests...)
	return combined
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
