package models

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRateLimitResetTime(t *testing.T) {
	reset := time.Now().Add(10 * time.Minute).Unix()

	h := http.Header{}
	_, ok := ParseRateLimitResetTime(h)
	assert.False(t, ok, "no headers")

	h.Set("X-Ratelimit-Remaining", "12")
	h.Set("X-Ratelimit-Reset", strconv.FormatInt(reset, 10))
	_, ok = ParseRateLimitResetTime(h)
	assert.False(t, ok, "quota left")

	h.Set("X-Ratelimit-Remaining", "0")
	until, ok := ParseRateLimitResetTime(h)
	assert.True(t, ok)
	assert.InDelta(t, (10 * time.Minute).Seconds(), until.Seconds(), 5)

	h.Set("X-Ratelimit-Reset", "soon")
	_, ok = ParseRateLimitResetTime(h)
	assert.False(t, ok, "bad reset value")
}

func TestStatusError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
		Header:     http.Header{},
	}

	err := NewStatusError("https://api.github.com/x", resp, []byte(`{"message":"Not Found"}`))
	assert.Equal(t, `GET https://api.github.com/x: 404 Not Found: {"message":"Not Found"}`, err.Error())
	assert.Zero(t, err.RetryIn)

	var target *StatusError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, http.StatusNotFound, target.StatusCode)
}

func TestStatusErrorRateLimited(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusForbidden,
		Status:     "403 Forbidden",
		Header: http.Header{
			"X-Ratelimit-Remaining": []string{"0"},
			"X-Ratelimit-Reset":     []string{strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)},
		},
	}

	err := NewStatusError("https://api.github.com/x", resp, nil)
	assert.Greater(t, err.RetryIn, 59*time.Minute)
	assert.Contains(t, err.Error(), "rate-limit exceeded, try again in")
}

func TestFileError(t *testing.T) {
	err := &FileError{Op: "creating file", Path: "out/tool.exe", Err: os.ErrPermission}

	assert.Equal(t, `creating file "out/tool.exe": permission denied`, err.Error())
	assert.True(t, errors.Is(err, os.ErrPermission))
}
