package scholar

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/project-scout/internal/types"
)

// maxProfilePublications caps the publication rows parsed from one profile.
const maxProfilePublications = 20

var leadingNumberPattern = regexp.MustCompile(`^\d+`)

// ParseProfile extracts a ScholarProfile from profile-page HTML using the
// fixed selector schema. Missing fields yield empty strings or zeros.
func ParseProfile(html string) (*types.ScholarProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	profile := &types.ScholarProfile{
		Name:              strings.TrimSpace(doc.Find("#gsc_prf_in").Text()),
		Affiliation:       strings.TrimSpace(doc.Find(".gsc_prf_il").First().Text()),
		ResearchInterests: make([]string, 0),
		Publications:      make([]types.Publication, 0),
	}

	// Email is the first metadata line carrying an @ sign.
	doc.Find(".gsc_prf_il").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if strings.Contains(text, "@") {
			profile.Email = text
			return false
		}
		return true
	})

	doc.Find(".gsc_prf_int a").Each(func(_ int, s *goquery.Selection) {
		if interest := strings.TrimSpace(s.Text()); interest != "" {
			profile.ResearchInterests = append(profile.ResearchInterests, interest)
		}
	})

	// Citation stats sit in a fixed positional table: total citations first,
	// h-index third.
	stats := doc.Find(".gsc_rsb_std")
	profile.CitationCount = parseCount(stats.Eq(0).Text())
	profile.HIndex = parseCount(stats.Eq(2).Text())

	doc.Find(".gsc_a_tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i >= maxProfilePublications {
			return false
		}
		if pub, ok := parsePublicationRow(row); ok {
			profile.Publications = append(profile.Publications, pub)
		}
		return true
	})

	return profile, nil
}

// parsePublicationRow reads one publication table row. The title element's
// next sibling holds the authors line, and the sibling after that the venue.
func parsePublicationRow(row *goquery.Selection) (types.Publication, bool) {
	titleSel := row.Find(".gsc_a_at")
	title := strings.TrimSpace(titleSel.Text())
	if title == "" {
		return types.Publication{}, false
	}

	pub := types.Publication{
		Title:     title,
		Authors:   splitAuthors(titleSel.Next().Text()),
		Venue:     strings.TrimSpace(titleSel.Next().Next().Text()),
		Year:      parseCount(row.Find(".gsc_a_y").Text()),
		Citations: parseCount(row.Find(".gsc_a_c").Text()),
	}

	if href, exists := titleSel.Attr("href"); exists && href != "" {
		pub.URL = DefaultBaseURL + href
	}

	return pub, true
}

// splitAuthors splits a comma-separated authors line into trimmed names.
func splitAuthors(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	authors := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// parseCount parses the leading integer of a stat cell, tolerating thousands
// separators and trailing markup text. Unparseable input yields 0.
func parseCount(raw string) int {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	digits := leadingNumberPattern.FindString(cleaned)
	if digits == "" {
		return 0
	}
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
	}
	return n
}
