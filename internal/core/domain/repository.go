package domain

import (
	"fmt"
	"strings"
)

// DocumentExtension is the file extension of content documents.
const DocumentExtension = ".md"

// DefaultBranch is the branch every content repository is read from.
const DefaultBranch = "main"

// TreeEntryBlob is the tree entry type for files.
const TreeEntryBlob = "blob"

// Repository identifies a remote document store.
type Repository struct {
	// Owner is the account owning the repository.
	Owner string

	// Name is the repository name.
	Name string

	// Branch is the branch documents are read from.
	Branch string
}

// String returns the owner/name@branch form.
func (r Repository) String() string {
	return fmt.Sprintf("%s/%s@%s", r.Owner, r.Name, r.Branch)
}

// Slug is the short identifier of one document within a Repository.
// It is the file name with the document extension stripped.
type Slug = string

// TreeEntry is one entry of a recursive repository listing.
type TreeEntry struct {
	// Type is "blob" for files and "tree" for directories.
	Type string

	// Path is relative to the repository root, using '/' separators.
	Path string
}

// SlugFromEntry derives the slug for a tree entry.
// ok is false for directories, non-markdown files and anything below the root.
func SlugFromEntry(entry TreeEntry) (slug Slug, ok bool) {
	if entry.Type != TreeEntryBlob {
		return "", false
	}
	if !strings.HasSuffix(entry.Path, DocumentExtension) || strings.Contains(entry.Path, "/") {
		return "", false
	}
	slug = strings.TrimSuffix(entry.Path, DocumentExtension)
	if slug == "" {
		return "", false
	}
	return slug, true
}

// SlugsFromTree filters a listing to top-level markdown files, keeping listing order.
func SlugsFromTree(entries []TreeEntry) []Slug {
	slugs := make([]Slug, 0, len(entries))
	for _, entry := range entries {
		if slug, ok := SlugFromEntry(entry); ok {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}

// ValidateSlug checks that a slug can address a top-level document.
func ValidateSlug(slug Slug) error {
	switch {
	case strings.TrimSpace(slug) == "":
		return fmt.Errorf("%w: empty", ErrInvalidSlug)
	case slug == "." || slug == "..":
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	case strings.ContainsAny(slug, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidSlug, slug)
	}
	return nil
}
