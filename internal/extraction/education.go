package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/project-scout/internal/types"
)

const (
	// maxEducationLines is how many qualifying lines are scanned.
	maxEducationLines = 5
	// maxEducationEntries caps the parsed entries.
	maxEducationEntries = 3
	// minEducationLineLength filters out section headers and noise.
	minEducationLineLength = 10
)

var (
	educationLinePattern = regexp.MustCompile(`(?i)(bachelor|master|phd|doctorate|degree|university|college|institute)`)
	yearPattern          = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// institutionKeywords anchor the ±2-word window used to extract the institution name.
var institutionKeywords = []string{"university", "college", "institute", "school"}

// disciplineFields is the fixed list of recognized fields of study.
var disciplineFields = []string{
	"Computer Science", "Engineering", "Mathematics", "Physics", "Chemistry",
	"Biology", "Psychology", "Business", "Economics", "Medicine", "Law",
}

// Education extracts up to three degree entries from resume text. A line
// qualifies when it mentions a degree or institution keyword and is long
// enough to carry real content.
func Education(text string) []types.EducationEntry {
	lines := educationLines(text)

	entries := make([]types.EducationEntry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, parseEducationLine(line))
	}

	if len(entries) > maxEducationEntries {
		entries = entries[:maxEducationEntries]
	}
	return entries
}

// educationLines returns the first qualifying lines of the text.
func educationLines(text string) []string {
	var matched []string
	for _, line := range strings.Split(text, "\n") {
		if len(matched) >= maxEducationLines {
			break
		}
		if len(strings.TrimSpace(line)) <= minEducationLineLength {
			continue
		}
		if educationLinePattern.MatchString(line) {
			matched = append(matched, line)
		}
	}
	return matched
}

// parseEducationLine builds a single immutable EducationEntry from one line.
func parseEducationLine(line string) types.EducationEntry {
	return types.EducationEntry{
		Degree:      classifyDegree(line),
		Institution: extractInstitution(line),
		Year:        extractYear(line),
		Field:       extractField(line),
	}
}

func classifyDegree(line string) string {
	switch {
	case strings.Contains(line, "PhD") || strings.Contains(line, "Doctorate"):
		return "PhD"
	case strings.Contains(line, "Master"):
		return "Masters"
	case strings.Contains(line, "Bachelor"):
		return "Bachelors"
	default:
		return "Degree"
	}
}

// extractInstitution returns a ±2-word window around the first institution
// keyword, falling back to the first 50 characters of the line.
func extractInstitution(line string) string {
	words := strings.Split(line, " ")
	for i, word := range words {
		lower := strings.ToLower(word)
		for _, keyword := range institutionKeywords {
			if strings.Contains(lower, keyword) {
				start := max(0, i-2)
				end := min(len(words), i+3)
				return strings.Join(words[start:end], " ")
			}
		}
	}
	if len(line) > 50 {
		return line[:50]
	}
	return line
}

func extractYear(line string) string {
	return yearPattern.FindString(line)
}

func extractField(line string) string {
	lower := strings.ToLower(line)
	for _, field := range disciplineFields {
		if strings.Contains(lower, strings.ToLower(field)) {
			return field
		}
	}
	return "General"
}
