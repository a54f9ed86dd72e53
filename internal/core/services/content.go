package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService resolves content types to their repositories and runs the
// lister, fetcher and assembler against them.
type ContentService struct {
	lister    *Lister
	fetcher   *Fetcher
	assembler *Assembler
}

// NewContentService creates a new content service.
func NewContentService(lister *Lister, fetcher *Fetcher, assembler *Assembler) *ContentService {
	return &ContentService{
		lister:    lister,
		fetcher:   fetcher,
		assembler: assembler,
	}
}

// Slugs lists every slug of a content type.
func (s *ContentService) Slugs(ctx context.Context, ct domain.ContentType) ([]domain.Slug, error) {
	repo, err := repositoryFor(ct)
	if err != nil {
		return nil, err
	}
	return s.lister.List(ctx, repo), nil
}

// Get fetches one document of a content type.
func (s *ContentService) Get(ctx context.Context, ct domain.ContentType, slug domain.Slug) (*domain.ParsedDocument, error) {
	repo, err := repositoryFor(ct)
	if err != nil {
		return nil, err
	}
	return s.fetcher.Fetch(ctx, repo, slug)
}

// List assembles the collection of a content type and narrows it with filter.
// Facets are computed before filtering.
func (s *ContentService) List(ctx context.Context, ct domain.ContentType, filter domain.Filter) (*domain.Collection, error) {
	repo, err := repositoryFor(ct)
	if err != nil {
		return nil, err
	}

	entries := s.assembler.AssembleAll(ctx, repo)
	filtered := FilterEntries(entries, filter)
	if !filter.IsEmpty() {
		logger.Debug("Filter kept %d of %d %s entries", len(filtered), len(entries), ct)
	}

	return &domain.Collection{
		Type:       ct,
		Entries:    filtered,
		Tags:       AllTags(entries),
		Categories: AllCategories(entries),
	}, nil
}

func repositoryFor(ct domain.ContentType) (domain.Repository, error) {
	repo, ok := domain.RepositoryFor(ct)
	if !ok {
		return domain.Repository{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, ct)
	}
	return repo, nil
}
