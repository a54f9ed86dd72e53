package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// mockContentService is a mock implementation of driving.ContentService.
type mockContentService struct {
	slugs      []domain.Slug
	docs       map[domain.Slug]domain.ParsedDocument
	collection *domain.Collection
	err        error

	lastType   domain.ContentType
	lastFilter domain.Filter
}

var _ driving.ContentService = (*mockContentService)(nil)

func (m *mockContentService) Slugs(_ context.Context, ct domain.ContentType) ([]domain.Slug, error) {
	m.lastType = ct
	return m.slugs, m.err
}

func (m *mockContentService) Get(_ context.Context, ct domain.ContentType, slug domain.Slug) (*domain.ParsedDocument, error) {
	m.lastType = ct
	if m.err != nil {
		return nil, m.err
	}
	doc, ok := m.docs[slug]
	if !ok {
		return nil, fmt.Errorf("fetch %q: %w", slug, domain.ErrDocumentNotFound)
	}
	return &doc, nil
}

func (m *mockContentService) List(_ context.Context, ct domain.ContentType, filter domain.Filter) (*domain.Collection, error) {
	m.lastType = ct
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.collection, nil
}

func newTestServer(content *mockContentService) *Server {
	server, err := NewServer(&Ports{Content: content}, "test")
	if err != nil {
		panic(err)
	}
	return server
}
