package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/project-scout/internal/types"
)

const (
	topCategories       = 6
	templatesPerCat     = 3
	minCatalogResults   = 5
	minimalBaseScore    = 65.0
	scholarEntryScore   = 85.0
	interdisciplinScore = 80.0
	experienceScore     = 75.0
)

// categoryMatch is one skill category the user's background touches.
type categoryMatch struct {
	Category       string
	Score          float64
	MatchingSkills []string
}

// matchCategories finds the skill categories the user's combined skills and
// interests touch, ranked by relevance.
func matchCategories(userSkills []string) []categoryMatch {
	matches := make([]categoryMatch, 0, len(skillCategories))

	for category, categorySkills := range skillCategories {
		var matching []string
		for _, skill := range userSkills {
			if matchesAnySkill(skill, categorySkills) {
				matching = append(matching, skill)
			}
		}
		if len(matching) > 0 {
			matches = append(matches, categoryMatch{
				Category:       category,
				Score:          categoryRelevance(matching, categorySkills),
				MatchingSkills: matching,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		// Stable order for equal scores, since map iteration is random.
		return matches[i].Category < matches[j].Category
	})
	return matches
}

// matchesAnySkill reports whether a user skill matches any category skill.
// Matching is bidirectional substring, plus fuzzy pairs for the common
// ml/machine-learning and ai/artificial-intelligence abbreviations.
func matchesAnySkill(skill string, categorySkills []string) bool {
	skillLower := strings.ToLower(skill)
	for _, catSkill := range categorySkills {
		catLower := strings.ToLower(catSkill)
		if strings.Contains(skillLower, catLower) || strings.Contains(catLower, skillLower) {
			return true
		}
		if strings.Contains(skillLower, "ml") && strings.Contains(catLower, "machine learning") {
			return true
		}
		if strings.Contains(skillLower, "ai") && strings.Contains(catLower, "artificial intelligence") {
			return true
		}
	}
	return false
}

// categoryRelevance weighs how well a set of matched skills covers a
// category. Longer skill names count double as a crude specificity signal.
func categoryRelevance(matchingSkills, categorySkills []string) float64 {
	matchRatio := float64(len(matchingSkills)) / float64(len(categorySkills))
	skillQuality := 0
	for _, skill := range matchingSkills {
		if len(skill) > 10 {
			skillQuality += 2
		} else {
			skillQuality++
		}
	}
	return matchRatio*50 + float64(skillQuality)*5
}

// diversifyTemplates selects up to max templates from a pool, preferring one
// per difficulty level before filling remaining slots in pool order.
func diversifyTemplates(templates []ProjectTemplate, max int) []ProjectTemplate {
	if len(templates) <= max {
		return templates
	}

	difficultyOrder := map[string]int{
		types.DifficultyBeginner:     1,
		types.DifficultyIntermediate: 2,
		types.DifficultyAdvanced:     3,
	}
	sorted := make([]ProjectTemplate, len(templates))
	copy(sorted, templates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return difficultyOrder[sorted[i].Difficulty] < difficultyOrder[sorted[j].Difficulty]
	})

	selected := make([]ProjectTemplate, 0, max)
	seen := make(map[string]bool)
	for _, tmpl := range sorted {
		if len(selected) >= max {
			break
		}
		if !seen[tmpl.Difficulty] {
			selected = append(selected, tmpl)
			seen[tmpl.Difficulty] = true
		}
	}
	for _, tmpl := range sorted {
		if len(selected) >= max {
			break
		}
		if !containsTemplate(selected, tmpl) {
			selected = append(selected, tmpl)
		}
	}
	return selected
}

func containsTemplate(list []ProjectTemplate, tmpl ProjectTemplate) bool {
	for _, t := range list {
		if t.Title == tmpl.Title {
			return true
		}
	}
	return false
}

// TemplateSuggestions runs the full catalog path: category-matched
// templates, scholar-interest initiatives, experience-based projects, and a
// five-suggestion minimum backfill. It is the catalog-only mode; the normal
// generation flow uses MinimalTemplateSuggestions instead.
func (g *Generator) TemplateSuggestions(resume *types.ResumeData, profile *types.ScholarProfile) []types.ProjectSuggestion {
	batch := g.newBatchID()
	var suggestions []types.ProjectSuggestion
	n := 1

	userSkills := append(append([]string{}, resume.Skills...), resume.ResearchInterests...)
	matches := matchCategories(userSkills)
	if len(matches) > topCategories {
		matches = matches[:topCategories]
	}

	var publications []types.Publication
	if profile != nil {
		publications = firstPublications(profile, 2)
	}

	for _, match := range matches {
		for _, tmpl := range diversifyTemplates(projectTemplates[match.Category], templatesPerCat) {
			suggestions = append(suggestions, types.ProjectSuggestion{
				ID:                  fmt.Sprintf("%s-%s-%d", strings.ToLower(match.Category), batch, n),
				Title:               tmpl.Title,
				Description:         tmpl.Description,
				RelevanceScore:      g.scorer.TemplateScore(capSkills(match.MatchingSkills, 5), resume, profile, tmpl.Difficulty),
				MatchingSkills:      capSkills(match.MatchingSkills, 5),
				RelatedPublications: publications,
				EstimatedDuration:   tmpl.Duration,
				Difficulty:          tmpl.Difficulty,
				Categories:          tmpl.Categories,
				Source:              types.SourceTemplate,
			})
			n++
		}
	}

	if profile != nil && len(profile.ResearchInterests) > 0 {
		interests := profile.ResearchInterests
		if len(interests) > 3 {
			interests = interests[:3]
		}
		for _, interest := range interests {
			suggestions = append(suggestions, types.ProjectSuggestion{
				ID:                  fmt.Sprintf("scholar-research-%s-%d", batch, n),
				Title:               fmt.Sprintf("Advanced %s Research Initiative", interest),
				Description:         fmt.Sprintf("Explore cutting-edge developments in %s with focus on practical applications and theoretical advancements. This project leverages your existing research background and publications to push the boundaries of knowledge in this field.", interest),
				RelevanceScore:      scholarEntryScore + g.rng.Float64()*10,
				MatchingSkills:      capSkills(resume.Skills, 3),
				RelatedPublications: firstPublications(profile, 3),
				EstimatedDuration:   "8-15 months",
				Difficulty:          types.DifficultyAdvanced,
				Categories:          []string{"Research", interest, "Academic"},
				Source:              types.SourceTemplate,
			})
			n++

			suggestions = append(suggestions, types.ProjectSuggestion{
				ID:                fmt.Sprintf("interdisciplinary-%s-%d", batch, n),
				Title:             fmt.Sprintf("Interdisciplinary %s Applications", interest),
				Description:       fmt.Sprintf("Develop innovative applications of %s across multiple disciplines, creating bridges between traditional academic boundaries and fostering collaborative innovation. This project emphasizes cross-field collaboration and novel methodologies.", interest),
				RelevanceScore:    interdisciplinScore + g.rng.Float64()*10,
				MatchingSkills:    capSkills(resume.Skills, 4),
				EstimatedDuration: "6-12 months",
				Difficulty:        types.DifficultyIntermediate,
				Categories:        []string{"Interdisciplinary", interest, "Innovation"},
				Source:            types.SourceTemplate,
			})
			n++
		}
	}

	experience := resume.Experience
	if len(experience) > 2 {
		experience = experience[:2]
	}
	for _, exp := range experience {
		suggestions = append(suggestions, types.ProjectSuggestion{
			ID:                fmt.Sprintf("experience-based-%s-%d", batch, n),
			Title:             fmt.Sprintf("%s Innovation Project", exp.Title),
			Description:       fmt.Sprintf("Leverage your experience in %s at %s to develop innovative solutions that bridge industry practices with academic research. This project focuses on practical applications of theoretical knowledge and real-world impact.", exp.Title, exp.Company),
			RelevanceScore:    experienceScore + g.rng.Float64()*15,
			MatchingSkills:    capSkills(resume.Skills, 3),
			EstimatedDuration: "4-8 months",
			Difficulty:        types.DifficultyIntermediate,
			Categories:        []string{"Industry Collaboration", "Applied Research", "Innovation"},
			Source:            types.SourceTemplate,
		})
		n++
	}

	for _, fb := range legacyFallbacks {
		if len(suggestions) >= minCatalogResults {
			break
		}
		suggestions = append(suggestions, types.ProjectSuggestion{
			ID:                fmt.Sprintf("fallback-%s-%d", batch, n),
			Title:             fb.Template.Title,
			Description:       fb.Template.Description,
			RelevanceScore:    fb.Score,
			MatchingSkills:    capSkills(resume.Skills, 3),
			EstimatedDuration: fb.Template.Duration,
			Difficulty:        fb.Template.Difficulty,
			Categories:        fb.Template.Categories,
			Source:            types.SourceTemplate,
		})
		n++
	}

	return suggestions
}

// MinimalTemplateSuggestions builds the small, generic fallback set used
// when AI generation produced too few candidates. Scores sit in a lower
// band than the full catalog path on purpose.
func (g *Generator) MinimalTemplateSuggestions(resume *types.ResumeData, profile *types.ScholarProfile, max int) []types.ProjectSuggestion {
	batch := g.newBatchID()
	var suggestions []types.ProjectSuggestion
	n := 1

	if profile != nil && len(profile.ResearchInterests) > 0 {
		interest := profile.ResearchInterests[0]
		suggestions = append(suggestions, types.ProjectSuggestion{
			ID:                  fmt.Sprintf("fallback-scholar-%s-%d", batch, n),
			Title:               fmt.Sprintf("Advanced %s Research Initiative", interest),
			Description:         fmt.Sprintf("Explore cutting-edge developments in %s with focus on practical applications and theoretical advancements. This project leverages your existing research background to push the boundaries of knowledge in this field.", interest),
			RelevanceScore:      minimalBaseScore + g.rng.Float64()*10,
			MatchingSkills:      capSkills(resume.Skills, 3),
			RelatedPublications: firstPublications(profile, 2),
			EstimatedDuration:   "8-15 months",
			Difficulty:          types.DifficultyAdvanced,
			Categories:          []string{"Research", interest, "Academic"},
			Source:              types.SourceTemplate,
		})
		n++
	}

	for _, tmpl := range minimalTemplates {
		if len(suggestions) >= max {
			break
		}
		suggestions = append(suggestions, types.ProjectSuggestion{
			ID:                fmt.Sprintf("fallback-generic-%s-%d", batch, n),
			Title:             tmpl.Title,
			Description:       tmpl.Description,
			RelevanceScore:    minimalBaseScore + g.rng.Float64()*8,
			MatchingSkills:    capSkills(resume.Skills, 3),
			EstimatedDuration: tmpl.Duration,
			Difficulty:        tmpl.Difficulty,
			Categories:        tmpl.Categories,
			Source:            types.SourceTemplate,
		})
		n++
	}

	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}

func capSkills(skills []string, max int) []string {
	if len(skills) > max {
		return skills[:max]
	}
	return skills
}

func firstPublications(profile *types.ScholarProfile, max int) []types.Publication {
	if profile == nil {
		return nil
	}
	pubs := profile.Publications
	if len(pubs) > max {
		pubs = pubs[:max]
	}
	return pubs
}
