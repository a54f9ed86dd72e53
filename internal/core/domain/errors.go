package domain

import "errors"

// Domain errors represent content resolution failures.
// These are distinct from infrastructure errors, which are wrapped underneath.
var (
	// ErrDocumentNotFound indicates a slug does not resolve to a retrievable document.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidSlug indicates a slug that cannot address a top-level document.
	ErrInvalidSlug = errors.New("invalid slug")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown content type.
	ErrUnsupportedType = errors.New("unsupported content type")

	// Listing Errors.

	// ErrRefResolutionFailed indicates the branch reference could not be resolved to a commit.
	ErrRefResolutionFailed = errors.New("branch reference resolution failed")

	// ErrCommitResolutionFailed indicates the commit could not be resolved to a tree.
	ErrCommitResolutionFailed = errors.New("commit resolution failed")

	// ErrTreeResolutionFailed indicates the recursive tree listing could not be retrieved.
	ErrTreeResolutionFailed = errors.New("tree resolution failed")

	// ErrMalformedMetadata indicates a front-matter block that could not be decoded.
	// It is never surfaced to callers; the document is treated as having no metadata.
	ErrMalformedMetadata = errors.New("malformed metadata")
)
