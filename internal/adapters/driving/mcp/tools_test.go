package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/core/domain"
)

func TestServer_handleListSlugs(t *testing.T) {
	ctx := context.Background()

	t.Run("returns slugs", func(t *testing.T) {
		content := &mockContentService{slugs: []domain.Slug{"a", "b"}}
		server := newTestServer(content)

		_, output, err := server.handleListSlugs(ctx, nil, ListSlugsInput{Type: "tools"})

		require.NoError(t, err)
		assert.Equal(t, "tool", output.Type)
		assert.Equal(t, []string{"a", "b"}, output.Slugs)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, domain.ContentTool, content.lastType)
	})

	t.Run("unknown type", func(t *testing.T) {
		server := newTestServer(&mockContentService{})

		_, _, err := server.handleListSlugs(ctx, nil, ListSlugsInput{Type: "podcast"})

		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})
}

func TestServer_handleListContent(t *testing.T) {
	ctx := context.Background()

	t.Run("returns flattened entries", func(t *testing.T) {
		content := &mockContentService{collection: &domain.Collection{
			Type: domain.ContentCTF,
			Entries: []domain.CollectionEntry{
				{Slug: "xss", Metadata: domain.Metadata{"title": "XSS", "difficulty": "Easy"}},
			},
			Tags:       []string{"web"},
			Categories: []string{},
		}}
		server := newTestServer(content)

		input := ListContentInput{Type: "ctf", Query: "xss", Tags: []string{"web"}, Difficulty: "Easy"}
		_, output, err := server.handleListContent(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "ctf", output.Type)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, map[string]any{"title": "XSS", "difficulty": "Easy", "slug": "xss"}, output.Entries[0])
		assert.Equal(t, []string{"web"}, output.Tags)
		assert.Equal(t, domain.Filter{Query: "xss", Tags: []string{"web"}, Difficulty: "Easy"}, content.lastFilter)
	})

	t.Run("propagates errors", func(t *testing.T) {
		server := newTestServer(&mockContentService{err: errors.New("boom")})

		_, _, err := server.handleListContent(ctx, nil, ListContentInput{Type: "blog"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestServer_handleGetContent(t *testing.T) {
	ctx := context.Background()
	content := &mockContentService{docs: map[domain.Slug]domain.ParsedDocument{
		"post-a": domain.NewParsedDocument(domain.Metadata{"title": "A"}, "# Hello\n"),
	}}
	server := newTestServer(content)

	t.Run("returns document", func(t *testing.T) {
		_, output, err := server.handleGetContent(ctx, nil, GetContentInput{Type: "blog", Slug: "post-a"})

		require.NoError(t, err)
		assert.Equal(t, "post-a", output.Slug)
		assert.Equal(t, map[string]any{"title": "A"}, output.Metadata)
		assert.Equal(t, "# Hello\n", output.Content)
	})

	t.Run("not found", func(t *testing.T) {
		_, _, err := server.handleGetContent(ctx, nil, GetContentInput{Type: "blog", Slug: "missing"})

		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
		assert.Contains(t, err.Error(), "Blog post")
	})
}
