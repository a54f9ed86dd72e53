package driven

import "github.com/custodia-labs/folio/internal/core/domain"

// DocumentParser splits raw document text into metadata and body.
type DocumentParser interface {
	// Parse never fails: text without a recognised metadata block, or with one
	// that cannot be decoded, yields empty metadata and the whole text as body.
	Parse(raw []byte) domain.ParsedDocument

	// Render serialises a document back into delimited metadata plus body.
	Render(doc domain.ParsedDocument) ([]byte, error)
}
