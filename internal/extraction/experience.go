package extraction

import (
	"strings"

	"github.com/jonathan/project-scout/internal/types"
)

// maxExperienceEntries caps the parsed positions.
const maxExperienceEntries = 5

// minTitleLineLength separates title lines from stray short fragments.
const minTitleLineLength = 10

// experienceSectionKeywords toggle the scanner into the experience section.
// The keyword line itself is never used as content.
var experienceSectionKeywords = []string{"experience", "work", "employment", "position", "role"}

// scanState names the states of the line scanner so the close-previous-entry
// versus append-description edge cases stay testable in isolation.
type scanState int

const (
	stateScanning scanState = iota
	stateInSection
)

// Experience extracts up to five positions from resume text using a small
// line-scanning state machine. Within the experience section a bullet line
// extends the open entry's description; a sufficiently long non-bullet line
// closes the open entry and starts a new one titled by that line.
func Experience(text string) []types.ExperienceEntry {
	entries := make([]types.ExperienceEntry, 0)
	state := stateScanning
	var current *types.ExperienceEntry

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if containsAny(lower, experienceSectionKeywords) {
			state = stateInSection
			continue
		}

		if state != stateInSection || trimmed == "" {
			continue
		}

		if strings.Contains(line, "•") || strings.Contains(line, "-") {
			// Bullet lines only count once a title is open.
			if current != nil {
				current.Description += trimmed + " "
			}
			continue
		}

		if len(trimmed) > minTitleLineLength {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.ExperienceEntry{Title: trimmed}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}

	if len(entries) > maxExperienceEntries {
		entries = entries[:maxExperienceEntries]
	}
	return entries
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
