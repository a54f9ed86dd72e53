package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/logger"
)

// Fetcher retrieves and parses a single document from a repository.
type Fetcher struct {
	raw    driven.RawFetcher
	parser driven.DocumentParser
}

// NewFetcher creates a document fetcher.
func NewFetcher(raw driven.RawFetcher, parser driven.DocumentParser) *Fetcher {
	return &Fetcher{
		raw:    raw,
		parser: parser,
	}
}

// Fetch reads {slug}.md from the repository's branch and parses it.
// Every failure, including an invalid slug, wraps domain.ErrDocumentNotFound.
func (f *Fetcher) Fetch(ctx context.Context, repo domain.Repository, slug domain.Slug) (*domain.ParsedDocument, error) {
	if err := domain.ValidateSlug(slug); err != nil {
		return nil, fmt.Errorf("fetch %q: %w: %w", slug, domain.ErrDocumentNotFound, err)
	}

	data, err := f.raw.FetchRaw(ctx, repo, slug+domain.DocumentExtension)
	if err != nil {
		logger.Debug("Fetch %s from %s failed: %v", slug, repo, err)
		return nil, fmt.Errorf("fetch %q: %w: %w", slug, domain.ErrDocumentNotFound, err)
	}

	doc := f.parser.Parse(data)
	logger.Debug("Fetched %s from %s (%d bytes, %d metadata keys)", slug, repo, len(data), len(doc.Metadata))
	return &doc, nil
}
