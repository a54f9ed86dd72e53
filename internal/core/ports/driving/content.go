package driving

import (
	"context"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// ContentService resolves the site's content collections.
type ContentService interface {
	// Slugs returns every slug of a content type. Listing failures degrade to
	// the type's fallback list; only an unknown type is an error.
	Slugs(ctx context.Context, ct domain.ContentType) ([]domain.Slug, error)

	// Get fetches and parses one document. Unresolvable slugs return an error
	// wrapping domain.ErrDocumentNotFound.
	Get(ctx context.Context, ct domain.ContentType, slug domain.Slug) (*domain.ParsedDocument, error)

	// List assembles the collection and applies the filter.
	List(ctx context.Context, ct domain.ContentType, filter domain.Filter) (*domain.Collection, error)
}
