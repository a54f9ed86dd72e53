// Package github resolves content repositories hosted on GitHub.
//
// The Client implements two driven ports:
//
//   - driven.TreeBrowser: the three dependent git data API calls used to
//     enumerate a repository (branch ref -> commit -> recursive tree)
//   - driven.RawFetcher: plain reads from the raw content host
//
// # Authentication
//
// A token is optional. Without one, the REST API allows 60 requests per hour;
// with one, 5,000. When configured the token is sent on raw reads too, which
// lets private content repositories work.
//
// # Rate Limiting
//
// REST calls pass through a token bucket (golang.org/x/time/rate) and the
// X-RateLimit-* headers are tracked. Once GitHub reports the quota exhausted,
// calls fail fast with a RateLimitError until the reset time. Callers resolve
// content while a request is waiting, so sleeping until the reset is never
// an option.
//
// # Errors
//
// Non-2xx responses become *APIError (status code preserved), quota
// exhaustion becomes *RateLimitError. Use IsNotFound, IsRateLimited,
// IsUnauthorized and IsForbidden to classify them.
//
// # Example Usage
//
//	client, err := github.NewClient(ctx, github.ConfigFromSettings(settings.GitHub))
//	if err != nil {
//	    return err
//	}
//	sha, err := client.ResolveBranch(ctx, repo)
package github
