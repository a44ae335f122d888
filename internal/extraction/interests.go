package extraction

import "strings"

// researchAreaVocabulary is the controlled vocabulary of research areas.
// Extraction is a membership test only; no synonym resolution.
var researchAreaVocabulary = []string{
	"Machine Learning", "Artificial Intelligence", "Data Science", "Computer Vision",
	"Natural Language Processing", "Robotics", "Cybersecurity", "Blockchain",
	"Software Engineering", "Human-Computer Interaction", "Networks", "Algorithms",
}

// ResearchInterests returns every research area mentioned in the text.
func ResearchInterests(text string) []string {
	lowerText := strings.ToLower(text)

	matches := make([]string, 0)
	for _, area := range researchAreaVocabulary {
		if strings.Contains(lowerText, strings.ToLower(area)) {
			matches = append(matches, area)
		}
	}
	return matches
}
