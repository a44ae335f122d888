// Package validation provides input sanitization and boundary checks for
// resume uploads and scholar URLs.
package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// MaxFileSizeMB is the default upper bound for uploaded resume documents.
const MaxFileSizeMB = 10

// ScholarDomain is the domain marker a profile URL must contain.
const ScholarDomain = "scholar.google.com"

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	htmlTagPattern     = regexp.MustCompile(`<[^>]*>`)
	scholarIDPattern   = regexp.MustCompile(`user=([^&]+)`)
)

// allowedMIMETypes lists the document formats the upstream decoders accept.
var allowedMIMETypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/msword": true,
}

// Sanitize strips script blocks and any remaining markup from untrusted input.
// It is applied to extracted resume text and to URLs/queries before validation.
func Sanitize(input string) string {
	cleaned := scriptBlockPattern.ReplaceAllString(input, "")
	cleaned = htmlTagPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// ValidFileSize reports whether a document of sizeBytes fits within maxMB.
// The boundary is inclusive: exactly maxMB passes.
func ValidFileSize(sizeBytes int64, maxMB int) bool {
	return sizeBytes <= int64(maxMB)*1024*1024
}

// ValidFileType reports whether the MIME type is an accepted resume format.
func ValidFileType(mimeType string) bool {
	return allowedMIMETypes[mimeType]
}

// ValidURL reports whether the string parses as an absolute http or https URL.
func ValidURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// ValidScholarURL reports whether the URL is a well-formed scholar profile URL.
func ValidScholarURL(rawURL string) bool {
	return ValidURL(rawURL) && strings.Contains(rawURL, ScholarDomain)
}

// ExtractScholarID extracts the user identifier from a scholar profile URL.
// Returns an empty string when the URL carries no user parameter.
func ExtractScholarID(rawURL string) string {
	match := scholarIDPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return ""
	}
	return match[1]
}
