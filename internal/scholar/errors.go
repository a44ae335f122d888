package scholar

import "fmt"

// ValidationError reports bad caller input (URL or query). The message is
// safe to surface verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RateLimitError reports that the caller exceeded the scraper's request
// budget. It carries a fixed user-facing message.
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded, please try again later"
}

// UpstreamError reports a failed fetch or unparseable upstream content. The
// message is generic by design; internal detail stays in Cause for logs.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

func upstreamf(cause error, format string, args ...any) *UpstreamError {
	return &UpstreamError{Message: fmt.Sprintf(format, args...), Cause: cause}
}
