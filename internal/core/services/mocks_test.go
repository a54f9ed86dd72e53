package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/logger"
	"github.com/custodia-labs/folio/internal/normalisers/markdown"
)

var errNetwork = errors.New("connection refused")

var testRepo = domain.Repository{Owner: "X", Name: "Y", Branch: "main"}

// --- Mock implementations ---

// mockTreeBrowser implements driven.TreeBrowser for testing.
type mockTreeBrowser struct {
	commitSHA string
	treeSHA   string
	entries   []domain.TreeEntry

	refErr    error
	commitErr error
	treeErr   error

	calls []string
}

var _ driven.TreeBrowser = (*mockTreeBrowser)(nil)

func (m *mockTreeBrowser) ResolveBranch(_ context.Context, _ domain.Repository) (string, error) {
	m.calls = append(m.calls, "ref")
	if m.refErr != nil {
		return "", m.refErr
	}
	return m.commitSHA, nil
}

func (m *mockTreeBrowser) ResolveCommit(_ context.Context, _ domain.Repository, commitSHA string) (string, error) {
	m.calls = append(m.calls, "commit:"+commitSHA)
	if m.commitErr != nil {
		return "", m.commitErr
	}
	return m.treeSHA, nil
}

func (m *mockTreeBrowser) ListTree(_ context.Context, _ domain.Repository, treeSHA string) ([]domain.TreeEntry, error) {
	m.calls = append(m.calls, "tree:"+treeSHA)
	if m.treeErr != nil {
		return nil, m.treeErr
	}
	return m.entries, nil
}

// newTreeBrowser returns a browser listing the given top-level files.
func newTreeBrowser(paths ...string) *mockTreeBrowser {
	entries := make([]domain.TreeEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, domain.TreeEntry{Type: domain.TreeEntryBlob, Path: p})
	}
	return &mockTreeBrowser{commitSHA: "c1", treeSHA: "t1", entries: entries}
}

// mockRawFetcher implements driven.RawFetcher for testing.
// It is safe for concurrent use and records the peak number of in-flight reads.
type mockRawFetcher struct {
	files map[string]string
	delay time.Duration

	mu          sync.Mutex
	requested   []string
	inFlight    int
	maxInFlight int
}

var _ driven.RawFetcher = (*mockRawFetcher)(nil)

func (m *mockRawFetcher) FetchRaw(ctx context.Context, _ domain.Repository, path string) ([]byte, error) {
	m.mu.Lock()
	m.requested = append(m.requested, path)
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	content, ok := m.files[path]
	if !ok {
		return nil, errors.New("github: API error 404: 404: Not Found")
	}
	return []byte(content), nil
}

func (m *mockRawFetcher) requestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requested)
}

func newPipeline(browser driven.TreeBrowser, raw driven.RawFetcher, maxConcurrency int) (*Lister, *Fetcher, *Assembler) {
	lister := NewLister(browser)
	fetcher := NewFetcher(raw, markdown.New())
	return lister, fetcher, NewAssembler(lister, fetcher, maxConcurrency)
}

// captureLogs redirects logger output for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}
