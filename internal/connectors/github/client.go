package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/logger"
)

// MaxRawSize caps the size of a raw document read.
const MaxRawSize = 5 << 20

// Ensure Client implements the driven ports.
var (
	_ driven.TreeBrowser = (*Client)(nil)
	_ driven.RawFetcher  = (*Client)(nil)
)

// Client wraps the go-github client for the git data API and a plain HTTP
// client for the raw content host.
type Client struct {
	gh          *gh.Client
	http        *http.Client
	rawBase     *url.URL
	rateLimiter *RateLimiter
}

// NewClient creates a client from cfg. When cfg.Token is set every request,
// raw reads included, carries it.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	} else {
		httpClient = &http.Client{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient.Timeout = cfg.Timeout

	return NewClientWithHTTPClient(httpClient, cfg)
}

// NewClientWithHTTPClient creates a client that sends everything through httpClient.
// Useful for tests and for callers that manage transport themselves.
func NewClientWithHTTPClient(httpClient *http.Client, cfg Config) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.RawURL == "" {
		cfg.RawURL = DefaultRawURL
	}

	apiBase, err := parseBaseURL(cfg.APIURL)
	if err != nil {
		return nil, err
	}
	rawBase, err := parseBaseURL(cfg.RawURL)
	if err != nil {
		return nil, err
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = apiBase

	return &Client{
		gh:          client,
		http:        httpClient,
		rawBase:     rawBase,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Quota()),
	}, nil
}

// GitHub returns the underlying go-github client.
func (c *Client) GitHub() *gh.Client {
	return c.gh
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// ResolveBranch returns the commit SHA at the head of the repository's branch.
func (c *Client) ResolveBranch(ctx context.Context, repo domain.Repository) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	ref, resp, err := c.gh.Git.GetRef(ctx, repo.Owner, repo.Name, "heads/"+repo.Branch)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return "", c.wrapError(err, "get ref")
	}

	sha := ref.GetObject().GetSHA()
	if sha == "" {
		return "", fmt.Errorf("get ref %s: %w", repo, ErrEmptyReference)
	}
	logger.Debug("github: %s resolved to commit %s", repo, sha)
	return sha, nil
}

// ResolveCommit returns the tree SHA of a commit.
func (c *Client) ResolveCommit(ctx context.Context, repo domain.Repository, commitSHA string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	commit, resp, err := c.gh.Git.GetCommit(ctx, repo.Owner, repo.Name, commitSHA)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return "", c.wrapError(err, "get commit")
	}

	sha := commit.GetTree().GetSHA()
	if sha == "" {
		return "", fmt.Errorf("get commit %s: %w", commitSHA, ErrEmptyReference)
	}
	return sha, nil
}

// ListTree fetches the entire tree recursively in one API call.
func (c *Client) ListTree(ctx context.Context, repo domain.Repository, treeSHA string) ([]domain.TreeEntry, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	tree, resp, err := c.gh.Git.GetTree(ctx, repo.Owner, repo.Name, treeSHA, true) // recursive=true
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "get tree")
	}

	if tree.GetTruncated() {
		logger.Warn("github: tree %s of %s was truncated by the API", treeSHA, repo)
	}

	entries := make([]domain.TreeEntry, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		entries = append(entries, domain.TreeEntry{
			Type: entry.GetType(),
			Path: entry.GetPath(),
		})
	}
	return entries, nil
}

// FetchRaw reads one file from the raw content host.
// Raw reads are not counted against the REST quota and are not throttled.
func (c *Client) FetchRaw(ctx context.Context, repo domain.Repository, path string) ([]byte, error) {
	target := c.RawURL(repo, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch raw %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			URL:        target,
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxRawSize))
	if err != nil {
		return nil, fmt.Errorf("read raw %s: %w", target, err)
	}
	return data, nil
}

// RawURL builds <raw-base>/{owner}/{repo}/{branch}/{path}.
func (c *Client) RawURL(repo domain.Repository, path string) string {
	segments := []string{repo.Owner, repo.Name, repo.Branch}
	segments = append(segments, strings.Split(path, "/")...)
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return c.rawBase.String() + strings.Join(segments, "/")
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
