// Package types provides type definitions for structured data used throughout the project-scout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeData represents a parsed resume with its extracted entities
type ResumeData struct {
	ID                string            `json:"id,omitempty"`
	FileName          string            `json:"file_name,omitempty"`
	ExtractedText     string            `json:"extracted_text"`
	Skills            []string          `json:"skills" validate:"required"`
	Experience        []ExperienceEntry `json:"experience"`
	Education         []EducationEntry  `json:"education"`
	ResearchInterests []string          `json:"research_interests"`
}

// ExperienceEntry represents a single position parsed from the experience section
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry represents a single degree parsed from an education line
type EducationEntry struct {
	Degree      string `json:"degree"` // PhD, Masters, Bachelors, or Degree
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"` // 4-digit year or empty
	Field       string `json:"field"`          // discipline name or "General"
}
