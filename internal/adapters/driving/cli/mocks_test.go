package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/normalisers/markdown"
)

// mockContentService implements driving.ContentService for testing.
type mockContentService struct {
	slugs      []domain.Slug
	docs       map[domain.Slug]domain.ParsedDocument
	entries    []domain.CollectionEntry
	err        error
	lastFilter domain.Filter
}

var _ driving.ContentService = (*mockContentService)(nil)

func (m *mockContentService) Slugs(_ context.Context, _ domain.ContentType) ([]domain.Slug, error) {
	return m.slugs, m.err
}

func (m *mockContentService) Get(_ context.Context, _ domain.ContentType, slug domain.Slug) (*domain.ParsedDocument, error) {
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
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Collection{
		Type:       ct,
		Entries:    m.entries,
		Tags:       []string{"web", "xss"},
		Categories: []string{},
	}, nil
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.Settings
	set      map[string]string
	setErr   error
}

var _ driving.SettingsService = (*mockSettingsService)(nil)

func (m *mockSettingsService) Get() domain.Settings { return m.settings }

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.set == nil {
		m.set = make(map[string]string)
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string { return []string{"server.addr"} }

func (m *mockSettingsService) Path() string { return "/tmp/folio/config.toml" }

// setupTestServices installs mock services and returns them with a cleanup func.
func setupTestServices() (*mockContentService, *mockSettingsService, func()) {
	content := &mockContentService{
		slugs: []domain.Slug{"post-a", "post-b"},
		docs: map[domain.Slug]domain.ParsedDocument{
			"post-a": domain.NewParsedDocument(domain.Metadata{"title": "Post A"}, "Body of A.\n"),
		},
		entries: []domain.CollectionEntry{
			{Slug: "post-a", Metadata: domain.Metadata{"title": "Post A", "date": "2024-01-15", "tags": []any{"web"}}},
			{Slug: "post-b", Metadata: domain.Metadata{"title": "Post B", "tags": []any{"xss"}}},
		},
	}
	settings := &mockSettingsService{settings: domain.DefaultSettings()}

	SetServices(Services{Content: content, Settings: settings, Renderer: markdown.New()})

	return content, settings, func() {
		SetServices(Services{})
	}
}

// execute runs rootCmd with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores package-level flag variables between runs.
func resetFlags() {
	verbose = false
	configPath = ""
	serveAddr = ""
	contentOutput = outputAuto
	contentQuery = ""
	contentTags = nil
	contentDifficulty = ""
	contentCategory = ""
	contentRaw = false
}
