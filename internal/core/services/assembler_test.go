package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/core/domain"
)

func TestAssembler_AssembleAll(t *testing.T) {
	browser := newTreeBrowser("post-a.md", "post-b.md")
	raw := &mockRawFetcher{files: map[string]string{
		"post-a.md": "---\ntitle: A\n---\nbody a",
		"post-b.md": "---\ntitle: B\n---\nbody b",
	}}
	_, _, assembler := newPipeline(browser, raw, 0)

	entries := assembler.AssembleAll(context.Background(), testRepo)

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"A","slug":"post-a"},{"title":"B","slug":"post-b"}]`, string(data))
}

func TestAssembler_AssembleAll_DropsFailuresKeepsOrder(t *testing.T) {
	logs := captureLogs(t)
	browser := newTreeBrowser("s1.md", "s2.md", "s3.md", "s4.md", "s5.md")
	raw := &mockRawFetcher{
		files: map[string]string{
			"s1.md": "---\ntitle: one\n---\n",
			"s3.md": "---\ntitle: three\n---\n",
			"s5.md": "---\ntitle: five\n---\n",
		},
		delay: 5 * time.Millisecond,
	}
	_, _, assembler := newPipeline(browser, raw, 0)

	entries := assembler.AssembleAll(context.Background(), testRepo)

	require.Len(t, entries, 3)
	assert.Equal(t, "s1", entries[0].Slug)
	assert.Equal(t, "s3", entries[1].Slug)
	assert.Equal(t, "s5", entries[2].Slug)
	assert.Equal(t, "three", entries[1].Title())
	assert.Equal(t, 5, raw.requestCount())
	assert.Contains(t, logs.String(), "Dropping s2")
	assert.Contains(t, logs.String(), "Dropping s4")
}

func TestAssembler_AssembleAll_SlugWinsOverMetadata(t *testing.T) {
	browser := newTreeBrowser("real.md")
	raw := &mockRawFetcher{files: map[string]string{
		"real.md": "---\nslug: other\ntitle: T\n---\n",
	}}
	_, _, assembler := newPipeline(browser, raw, 0)

	entries := assembler.AssembleAll(context.Background(), testRepo)

	require.Len(t, entries, 1)
	assert.Equal(t, "real", entries[0].Fields()[domain.SlugKey])
}

func TestAssembler_AssembleAll_EmptyListing(t *testing.T) {
	raw := &mockRawFetcher{}
	_, _, assembler := newPipeline(newTreeBrowser(), raw, 0)

	entries := assembler.AssembleAll(context.Background(), testRepo)

	require.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.Zero(t, raw.requestCount())
}

func TestAssembler_AssembleAll_FallbackSlugsAreFetched(t *testing.T) {
	captureLogs(t)
	blog, _ := domain.RepositoryFor(domain.ContentBlog)
	raw := &mockRawFetcher{files: map[string]string{
		"analyse-malware-statique.md": "---\ntitle: Malware\n---\n",
	}}
	_, _, assembler := newPipeline(&mockTreeBrowser{refErr: errNetwork}, raw, 0)

	entries := assembler.AssembleAll(context.Background(), blog)

	require.Len(t, entries, 1)
	assert.Equal(t, "analyse-malware-statique", entries[0].Slug)
	assert.Equal(t, 5, raw.requestCount())
}

func TestAssembler_AssembleAll_Concurrent(t *testing.T) {
	paths := []string{"a.md", "b.md", "c.md", "d.md", "e.md", "f.md"}
	files := make(map[string]string, len(paths))
	for _, p := range paths {
		files[p] = "body"
	}

	t.Run("unbounded fans out", func(t *testing.T) {
		raw := &mockRawFetcher{files: files, delay: 50 * time.Millisecond}
		_, _, assembler := newPipeline(newTreeBrowser(paths...), raw, 0)

		entries := assembler.AssembleAll(context.Background(), testRepo)

		assert.Len(t, entries, len(paths))
		assert.Greater(t, raw.maxInFlight, 1)
	})

	t.Run("bounded", func(t *testing.T) {
		raw := &mockRawFetcher{files: files, delay: 10 * time.Millisecond}
		_, _, assembler := newPipeline(newTreeBrowser(paths...), raw, 2)

		entries := assembler.AssembleAll(context.Background(), testRepo)

		assert.Len(t, entries, len(paths))
		assert.LessOrEqual(t, raw.maxInFlight, 2)
		for i, entry := range entries {
			assert.Equal(t, paths[i][:1], entry.Slug)
		}
	})
}

func TestAssembler_AssembleAll_CancelledContext(t *testing.T) {
	captureLogs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	raw := &mockRawFetcher{files: map[string]string{"a.md": "x"}, delay: time.Second}
	_, _, assembler := newPipeline(newTreeBrowser("a.md"), raw, 1)

	entries := assembler.AssembleAll(ctx, testRepo)

	assert.Empty(t, entries)
}
