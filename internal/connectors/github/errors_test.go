package github

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"APIError with 404 status", &APIError{StatusCode: 404, Message: "Not Found"}, true},
		{"wrapped APIError with 404", fmt.Errorf("tree: %w", &APIError{StatusCode: 404}), true},
		{"APIError with 403 status", &APIError{StatusCode: 403, Message: "Forbidden"}, false},
		{"generic error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"RateLimitError", &RateLimitError{ResetAt: time.Now()}, true},
		{"APIError with 429", &APIError{StatusCode: 429}, true},
		{"APIError with 500", &APIError{StatusCode: 500}, false},
		{"generic error", errors.New("rate"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRateLimited(tt.err))
		})
	}
}

func TestIsUnauthorizedAndForbidden(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{StatusCode: 401}))
	assert.False(t, IsUnauthorized(&APIError{StatusCode: 403}))
	assert.True(t, IsForbidden(&APIError{StatusCode: 403}))
	assert.False(t, IsForbidden(errors.New("forbidden")))
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Not Found", URL: "https://raw.githubusercontent.com/X/Y/main/a.md"}

	assert.Equal(t, "github: API error 404: Not Found (URL: https://raw.githubusercontent.com/X/Y/main/a.md)", err.Error())
}

func TestRateLimitError_Error(t *testing.T) {
	reset := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	err := &RateLimitError{ResetAt: reset, Limit: 60}

	assert.Equal(t, "github: rate limit exceeded, resets at 2025-01-01T12:00:00Z", err.Error())
}
