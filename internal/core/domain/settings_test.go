package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, ":8080", s.Server.Addr)
	assert.Equal(t, "https://api.github.com/", s.GitHub.APIURL)
	assert.Equal(t, "https://raw.githubusercontent.com/", s.GitHub.RawURL)
	assert.Equal(t, 10*time.Second, s.GitHub.Timeout)
	assert.Empty(t, s.GitHub.Token)
	assert.Positive(t, s.GitHub.RequestsPerSecond)
	assert.Zero(t, s.Collection.MaxConcurrency)
}

func TestFilter_IsEmpty(t *testing.T) {
	assert.True(t, Filter{}.IsEmpty())
	assert.False(t, Filter{Query: "x"}.IsEmpty())
	assert.False(t, Filter{Tags: []string{"web"}}.IsEmpty())
	assert.False(t, Filter{Difficulty: "Easy"}.IsEmpty())
	assert.False(t, Filter{Category: "Recon"}.IsEmpty())
}
