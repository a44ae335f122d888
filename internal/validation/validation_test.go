package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_StripsScriptBlocks(t *testing.T) {
	input := "John Doe<script>alert('xss')</script> Software Engineer"
	assert.Equal(t, "John Doe Software Engineer", Sanitize(input))
}

func TestSanitize_StripsTags(t *testing.T) {
	input := "<b>Python</b> and <i>Go</i>"
	assert.Equal(t, "Python and Go", Sanitize(input))
}

func TestSanitize_PlainTextUnchanged(t *testing.T) {
	assert.Equal(t, "plain resume text", Sanitize("  plain resume text  "))
}

func TestValidFileSize_Boundary(t *testing.T) {
	tenMB := int64(10 * 1024 * 1024)

	assert.True(t, ValidFileSize(tenMB, MaxFileSizeMB), "exactly 10MB should pass")
	assert.False(t, ValidFileSize(tenMB+1, MaxFileSizeMB), "10MB+1 byte should fail")
	assert.True(t, ValidFileSize(0, MaxFileSizeMB))
}

func TestValidFileType(t *testing.T) {
	assert.True(t, ValidFileType("application/pdf"))
	assert.True(t, ValidFileType("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	assert.True(t, ValidFileType("application/msword"))
	assert.False(t, ValidFileType("text/html"))
	assert.False(t, ValidFileType(""))
}

func TestValidURL(t *testing.T) {
	assert.True(t, ValidURL("https://example.com/page"))
	assert.True(t, ValidURL("http://example.com"))
	assert.False(t, ValidURL("ftp://example.com"))
	assert.False(t, ValidURL("not a url"))
	assert.False(t, ValidURL("/relative/path"))
}

func TestValidScholarURL(t *testing.T) {
	assert.True(t, ValidScholarURL("https://scholar.google.com/citations?user=abc123"))
	assert.False(t, ValidScholarURL("https://example.com/citations?user=abc123"))
	assert.False(t, ValidScholarURL("scholar.google.com/citations"))
}

func TestExtractScholarID(t *testing.T) {
	assert.Equal(t, "abc123", ExtractScholarID("https://scholar.google.com/citations?user=abc123"))
	assert.Equal(t, "test123", ExtractScholarID("https://scholar.google.com/citations?user=test123&hl=en"))
	assert.Equal(t, "", ExtractScholarID("https://scholar.google.com/citations"))
}
