// Package extraction turns sanitized resume text into typed entities using
// deterministic text heuristics. All extractors are best-effort: malformed or
// empty input yields empty results, never an error.
package extraction

import "strings"

// skillVocabulary is the fixed list of recognized skill names. Matching is a
// case-insensitive substring test; output preserves canonical capitalization
// and follows vocabulary order rather than document order.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "PHP", "Ruby", "Go", "Rust",
	"React", "Vue", "Angular", "Node.js", "Express", "Django", "Flask", "Spring", "Laravel",
	"Machine Learning", "AI", "Data Science", "Deep Learning", "Neural Networks", "NLP",
	"Computer Vision", "Big Data", "Analytics", "Statistics", "Research", "Algorithm",
	"Database", "SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "DevOps", "CI/CD", "Git", "Jenkins",
	"Testing", "TDD", "Unit Testing", "Integration Testing", "API", "REST", "GraphQL",
	"Blockchain", "Cryptocurrency", "Web3", "Smart Contracts", "Solidity",
}

// Skills extracts recognized skill names from resume text.
func Skills(text string) []string {
	lowerText := strings.ToLower(text)

	found := make([]string, 0)
	seen := make(map[string]bool)
	for _, skill := range skillVocabulary {
		if !strings.Contains(lowerText, strings.ToLower(skill)) {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		found = append(found, skill)
	}

	return found
}
