package models

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// StatusError is returned when GitHub answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
	Body       string

	// RetryIn is set when the response carried rate-limit headers.
	RetryIn time.Duration
}

// NewStatusError builds a StatusError from a response and an excerpt of its
// body.
func NewStatusError(url string, resp *http.Response, body []byte) *StatusError {
	err := &StatusError{
		URL:        url,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(body),
	}
	if until, ok := ParseRateLimitResetTime(resp.Header); ok {
		err.RetryIn = until
	}
	return err
}

func (err *StatusError) Error() string {
	if err.RetryIn > 0 {
		return fmt.Sprintf("GET %s: %s (rate-limit exceeded, try again in %s)",
			err.URL, err.Status, err.RetryIn.Round(time.Second))
	}
	if err.Body != "" {
		return fmt.Sprintf("GET %s: %s: %s", err.URL, err.Status, err.Body)
	}
	return fmt.Sprintf("GET %s: %s", err.URL, err.Status)
}

// FileError is returned when the local filesystem refuses an operation.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (err *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", err.Op, err.Path, err.Err)
}

func (err *FileError) Unwrap() error {
	return err.Err
}

// ParseRateLimitResetTime parses a non-200 response's headers and if it contains
// fields which would suggest a user is being rate-limited, it'll tell them when
// they can try again.
func ParseRateLimitResetTime(h http.Header) (time.Duration, bool) {
	if h.Get("X-Ratelimit-Remaining") != "0" {
		return 0, false
	}

	rateLimitResetRaw := h.Get("X-Ratelimit-Reset")
	if rateLimitResetRaw == "" {
		return 0, false
	}

	rateLimitReset, err := strconv.ParseInt(rateLimitResetRaw, 10, 64)
	if err != nil {
		return 0, false
	}

	until := time.Until(time.Unix(rateLimitReset, 0))
	if until < 0 {
		until = 0
	}
	return until, true
}
