package github

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	t.Run("creates rate limiter with quota", func(t *testing.T) {
		rl := NewRateLimiter(2, UnauthenticatedRateLimit)

		require.NotNil(t, rl)
		assert.Equal(t, UnauthenticatedRateLimit, rl.Limit())
		assert.Equal(t, UnauthenticatedRateLimit, rl.Remaining())
	})

	t.Run("burst admits a full listing immediately", func(t *testing.T) {
		rl := NewRateLimiter(0.001, UnauthenticatedRateLimit)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		for i := 0; i < ProactiveBurst; i++ {
			require.NoError(t, rl.Wait(ctx))
		}
	})

	t.Run("updates from response headers", func(t *testing.T) {
		rl := NewRateLimiter(0, UnauthenticatedRateLimit)
		resetTime := time.Now().Add(time.Hour).Unix()

		rl.UpdateFromResponse(&http.Response{
			Header: http.Header{
				"X-Ratelimit-Remaining": []string{"10"},
				"X-Ratelimit-Limit":     []string{"60"},
				"X-Ratelimit-Reset":     []string{strconv.FormatInt(resetTime, 10)},
			},
		})

		assert.Equal(t, 10, rl.Remaining())
		assert.Equal(t, 60, rl.Limit())
		assert.Equal(t, resetTime, rl.ResetTime().Unix())
	})

	t.Run("ignores nil response", func(t *testing.T) {
		rl := NewRateLimiter(0, 60)
		rl.UpdateFromResponse(nil)

		assert.Equal(t, 60, rl.Remaining())
	})

	t.Run("exhausted quota fails fast", func(t *testing.T) {
		rl := NewRateLimiter(0, UnauthenticatedRateLimit)
		rl.UpdateFromResponse(&http.Response{
			Header: http.Header{
				"X-Ratelimit-Remaining": []string{"0"},
				"X-Ratelimit-Reset":     []string{strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)},
			},
		})

		err := rl.Wait(context.Background())

		var rateLimitErr *RateLimitError
		require.ErrorAs(t, err, &rateLimitErr)
		assert.True(t, IsRateLimited(err))
	})

	t.Run("exhausted quota past reset is allowed", func(t *testing.T) {
		rl := NewRateLimiter(0, UnauthenticatedRateLimit)
		rl.UpdateFromResponse(&http.Response{
			Header: http.Header{
				"X-Ratelimit-Remaining": []string{"0"},
				"X-Ratelimit-Reset":     []string{strconv.FormatInt(time.Now().Add(-time.Minute).Unix(), 10)},
			},
		})

		assert.NoError(t, rl.Wait(context.Background()))
	})

	t.Run("retry-after blocks until elapsed", func(t *testing.T) {
		rl := NewRateLimiter(0, AuthenticatedRateLimit)
		rl.UpdateFromResponse(&http.Response{
			Header: http.Header{"Retry-After": []string{"60"}},
		})

		assert.True(t, IsRateLimited(rl.Wait(context.Background())))
	})

	t.Run("wait respects context cancellation", func(t *testing.T) {
		rl := NewRateLimiter(0.001, UnauthenticatedRateLimit)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, rl.Wait(ctx))
	})
}
