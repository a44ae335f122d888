package extraction

import "github.com/jonathan/project-scout/internal/types"

// Entities groups every entity set extracted from one resume.
type Entities struct {
	Skills            []string
	Education         []types.EducationEntry
	Experience        []types.ExperienceEntry
	ResearchInterests []string
}

// Extract runs every extractor over the given sanitized resume text. It is
// pure and deterministic: the same text always yields the same entities, and
// malformed input yields empty slices rather than an error.
func Extract(text string) *Entities {
	return &Entities{
		Skills:            Skills(text),
		Education:         Education(text),
		Experience:        Experience(text),
		ResearchInterests: ResearchInterests(text),
	}
}
