package driven

import (
	"context"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// TreeBrowser resolves a repository's file listing through the git data API.
// Each step is a separate network call that depends on the previous one.
type TreeBrowser interface {
	// ResolveBranch returns the commit SHA the repository's branch points at.
	ResolveBranch(ctx context.Context, repo domain.Repository) (string, error)

	// ResolveCommit returns the tree SHA of a commit.
	ResolveCommit(ctx context.Context, repo domain.Repository, commitSHA string) (string, error)

	// ListTree returns every entry reachable from a tree, recursively.
	ListTree(ctx context.Context, repo domain.Repository, treeSHA string) ([]domain.TreeEntry, error)
}

// RawFetcher retrieves the raw text of one file on the repository's branch.
type RawFetcher interface {
	// FetchRaw reads path from the repository. Non-2xx responses are errors.
	FetchRaw(ctx context.Context, repo domain.Repository, path string) ([]byte, error)
}
