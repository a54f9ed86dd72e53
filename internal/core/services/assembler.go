package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/logger"
)

// Assembler builds a whole collection by fetching every listed document concurrently.
type Assembler struct {
	lister         *Lister
	fetcher        *Fetcher
	maxConcurrency int
}

// NewAssembler creates a collection assembler.
// maxConcurrency bounds in-flight fetches; 0 or less means one goroutine per slug.
func NewAssembler(lister *Lister, fetcher *Fetcher, maxConcurrency int) *Assembler {
	return &Assembler{
		lister:         lister,
		fetcher:        fetcher,
		maxConcurrency: maxConcurrency,
	}
}

// AssembleAll lists the repository and fetches each slug. Documents that
// fail to fetch are dropped; survivors keep the listing order. Bodies are
// not included in the result.
func (a *Assembler) AssembleAll(ctx context.Context, repo domain.Repository) []domain.CollectionEntry {
	slugs := a.lister.List(ctx, repo)
	if len(slugs) == 0 {
		return []domain.CollectionEntry{}
	}

	// One slot per slug; each goroutine writes only its own.
	slots := make([]*domain.CollectionEntry, len(slugs))

	var sem chan struct{}
	if a.maxConcurrency > 0 {
		sem = make(chan struct{}, a.maxConcurrency)
	}

	var wg sync.WaitGroup
	for i, slug := range slugs {
		wg.Add(1)
		go func(i int, slug domain.Slug) {
			defer wg.Done()

			if sem != nil {
				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-ctx.Done():
					logger.Warn("Dropping %s from %s: %v", slug, repo, ctx.Err())
					return
				}
			}

			doc, err := a.fetcher.Fetch(ctx, repo, slug)
			if err != nil {
				logger.Warn("Dropping %s from %s: %v", slug, repo, err)
				return
			}

			entry := domain.NewCollectionEntry(slug, *doc)
			slots[i] = &entry
		}(i, slug)
	}
	wg.Wait()

	entries := make([]domain.CollectionEntry, 0, len(slugs))
	for _, entry := range slots {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	logger.Debug("Assembled %d of %d entries from %s", len(entries), len(slugs), repo)
	return entries
}
