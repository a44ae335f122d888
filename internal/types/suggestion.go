// Package types provides type definitions for structured data used throughout the project-scout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Difficulty levels for project suggestions
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Suggestion sources distinguish generative from catalog results
const (
	SourceAI       = "ai"
	SourceTemplate = "template"
)

// ProjectSuggestion represents a single ranked project recommendation.
// IDs are unique within one generation batch only; they are not persisted.
type ProjectSuggestion struct {
	ID                     string           `json:"id"`
	Title                  string           `json:"title"`
	Description            string           `json:"description"`
	RelevanceScore         float64          `json:"relevance_score"` // clamped to [50,100] (template) or [60,100] (ai)
	MatchingSkills         []string         `json:"matching_skills"` // at most 5
	SuggestedCollaborators []ScholarProfile `json:"suggested_collaborators"`
	RelatedPublications    []Publication    `json:"related_publications"`
	EstimatedDuration      string           `json:"estimated_duration"`
	Difficulty             string           `json:"difficulty"` // Beginner, Intermediate, Advanced
	Categories             []string         `json:"categories"`
	Source                 string           `json:"source"` // ai or template
}
