package web

import (
	"context"
	"fmt"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// mockContentService implements driving.ContentService for testing.
type mockContentService struct {
	slugs      map[domain.ContentType][]domain.Slug
	docs       map[string]domain.ParsedDocument
	entries    []domain.CollectionEntry
	err        error
	lastFilter domain.Filter
	panicOnGet bool
}

var _ driving.ContentService = (*mockContentService)(nil)

func (m *mockContentService) Slugs(_ context.Context, ct domain.ContentType) ([]domain.Slug, error) {
	if m.err != nil {
		return nil, m.err
	}
	slugs := m.slugs[ct]
	if slugs == nil {
		slugs = []domain.Slug{}
	}
	return slugs, nil
}

func (m *mockContentService) Get(_ context.Context, ct domain.ContentType, slug domain.Slug) (*domain.ParsedDocument, error) {
	if m.panicOnGet {
		panic("boom")
	}
	if m.err != nil {
		return nil, m.err
	}
	doc, ok := m.docs[string(ct)+"/"+slug]
	if !ok {
		return nil, fmt.Errorf("fetch %q: %w", slug, domain.ErrDocumentNotFound)
	}
	return &doc, nil
}

func (m *mockContentService) List(_ context.Context, ct domain.ContentType, filter domain.Filter) (*domain.Collection, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Collection{
		Type:       ct,
		Entries:    m.entries,
		Tags:       []string{"web"},
		Categories: []string{},
	}, nil
}
