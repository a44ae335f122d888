// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/project-scout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeData outputs a human-readable summary of an extracted resume.
func (p *Printer) PrintResumeData(resume *types.ResumeData) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:   %s\n", resume.FileName))
	sb.WriteString(fmt.Sprintf("Skills: %d extracted\n", len(resume.Skills)))

	if len(resume.Skills) > 0 {
		count := min(len(resume.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Skills[i]))
		}
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
	}

	if len(resume.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(resume.Experience), 3)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" at %s", exp.Company))
			}
			sb.WriteString("\n")
		}
	}

	if len(resume.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, edu := range resume.Education {
			sb.WriteString(fmt.Sprintf("  • %s in %s", edu.Degree, edu.Field))
			if edu.Institution != "" {
				sb.WriteString(fmt.Sprintf(", %s", edu.Institution))
			}
			sb.WriteString("\n")
		}
	}

	if len(resume.ResearchInterests) > 0 {
		sb.WriteString(fmt.Sprintf("\nInterests: %s\n", strings.Join(resume.ResearchInterests, ", ")))
	}

	p.printBox("EXTRACTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScholarProfile outputs a summary of a scraped scholar profile.
func (p *Printer) PrintScholarProfile(profile *types.ScholarProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:        %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Affiliation: %s\n", profile.Affiliation))
	sb.WriteString(fmt.Sprintf("Citations:   %d\n", profile.CitationCount))
	sb.WriteString(fmt.Sprintf("h-index:     %d\n", profile.HIndex))

	if len(profile.ResearchInterests) > 0 {
		sb.WriteString(fmt.Sprintf("Interests:   %s\n", strings.Join(profile.ResearchInterests, ", ")))
	}

	if len(profile.Publications) > 0 {
		sb.WriteString(fmt.Sprintf("\nPublications (%d):\n", len(profile.Publications)))
		count := min(len(profile.Publications), maxItemsToShow)
		for i := 0; i < count; i++ {
			pub := profile.Publications[i]
			sb.WriteString(fmt.Sprintf("  • %s", pub.Title))
			if pub.Year > 0 {
				sb.WriteString(fmt.Sprintf(" (%d)", pub.Year))
			}
			sb.WriteString("\n")
		}
		if len(profile.Publications) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Publications)-maxItemsToShow))
		}
	}

	p.printBox("SCHOLAR PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs ranked project suggestions with scores and
// matched skills.
func (p *Printer) PrintSuggestions(suggestions []types.ProjectSuggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total suggestions: %d\n\n", len(suggestions)))

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, s.Title))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  [%s, %s]\n", s.RelevanceScore, s.Difficulty, s.Source))
		if len(s.MatchingSkills) > 0 {
			skills := strings.Join(s.MatchingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(suggestions)-maxItemsToShow))
	}

	p.printBox("PROJECT SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
