package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/logger"
)

// Lister discovers the documents of a repository by walking
// branch ref, commit and tree.
type Lister struct {
	browser driven.TreeBrowser
}

// NewLister creates an identifier lister.
func NewLister(browser driven.TreeBrowser) *Lister {
	return &Lister{browser: browser}
}

// List returns the slugs of the repository's top-level markdown files in
// listing order. It never fails: any resolution error is logged and the
// repository's fallback list is returned instead.
func (l *Lister) List(ctx context.Context, repo domain.Repository) []domain.Slug {
	slugs, err := l.resolve(ctx, repo)
	if err != nil {
		fallback := domain.FallbackSlugs(repo)
		logger.Warn("Listing %s failed, using %d fallback slugs: %v", repo, len(fallback), err)
		return fallback
	}

	logger.Debug("Listed %d slugs in %s", len(slugs), repo)
	return slugs
}

func (l *Lister) resolve(ctx context.Context, repo domain.Repository) ([]domain.Slug, error) {
	commitSHA, err := l.browser.ResolveBranch(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRefResolutionFailed, err)
	}

	treeSHA, err := l.browser.ResolveCommit(ctx, repo, commitSHA)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCommitResolutionFailed, err)
	}

	entries, err := l.browser.ListTree(ctx, repo, treeSHA)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTreeResolutionFailed, err)
	}

	return domain.SlugsFromTree(entries), nil
}
