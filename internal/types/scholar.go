// Package types provides type definitions for structured data used throughout the project-scout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScholarProfile represents a scraped academic profile page
type ScholarProfile struct {
	Name              string        `json:"name"`
	Affiliation       string        `json:"affiliation"`
	Email             string        `json:"email,omitempty"`
	ResearchInterests []string      `json:"research_interests"`
	Publications      []Publication `json:"publications"`
	CitationCount     int           `json:"citation_count"`
	HIndex            int           `json:"h_index"`
}

// Publication represents a single publication row from a profile page or search result
type Publication struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Year      int      `json:"year"` // 0 when unknown
	Venue     string   `json:"venue"`
	Citations int      `json:"citations"`
	URL       string   `json:"url,omitempty"`
	Abstract  string   `json:"abstract,omitempty"`
}
