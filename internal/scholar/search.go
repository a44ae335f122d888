package scholar

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/project-scout/internal/types"
)

// maxSearchResults caps the parsed result list.
const maxSearchResults = 10

var (
	searchYearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	anyNumberPattern  = regexp.MustCompile(`\d+`)
)

// ParseSearchResults extracts publications from search-result HTML. Each
// result's byline is a combined "authors - venue" string split on " - ";
// the year is pulled from the byline by regex.
func ParseSearchResults(html string) ([]types.Publication, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	results := make([]types.Publication, 0)
	doc.Find(".gs_r.gs_or.gs_scl").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxSearchResults {
			return false
		}
		if pub, ok := parseSearchResult(s); ok {
			results = append(results, pub)
		}
		return true
	})

	return results, nil
}

func parseSearchResult(s *goquery.Selection) (types.Publication, bool) {
	titleLink := s.Find(".gs_rt a")
	title := strings.TrimSpace(titleLink.Text())
	if title == "" {
		return types.Publication{}, false
	}

	byline := strings.TrimSpace(s.Find(".gs_a").Text())
	authors, venue := splitByline(byline)

	year := 0
	if match := searchYearPattern.FindString(byline); match != "" {
		year = parseCount(match)
	}

	pub := types.Publication{
		Title:     title,
		Authors:   authors,
		Venue:     venue,
		Year:      year,
		Citations: citedByCount(s),
		Abstract:  strings.TrimSpace(s.Find(".gs_rs").Text()),
	}

	if href, exists := titleLink.Attr("href"); exists {
		pub.URL = href
	}

	return pub, true
}

// splitByline splits "A Author, B Author - Venue, 2021 - publisher" into its
// author list and venue segment.
func splitByline(byline string) ([]string, string) {
	parts := strings.Split(byline, " - ")

	authors := []string{}
	if len(parts) > 0 {
		authors = splitAuthors(parts[0])
	}

	venue := ""
	if len(parts) > 1 {
		venue = strings.TrimSpace(parts[1])
	}

	return authors, venue
}

// citedByCount finds the "Cited by N" footer link and returns N.
func citedByCount(s *goquery.Selection) int {
	count := 0
	s.Find(".gs_fl a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		text := link.Text()
		if !strings.Contains(text, "Cited by") {
			return true
		}
		if digits := anyNumberPattern.FindString(text); digits != "" {
			count = parseCount(digits)
		}
		return false
	})
	return count
}
