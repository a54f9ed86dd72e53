// Package domain defines the core content entities for folio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Repository: A remote document store (owner/name@branch)
//   - Slug: The short identifier addressing one document in a repository
//   - ParsedDocument: Front-matter metadata plus markdown body
//   - CollectionEntry: Metadata of one document annotated with its slug
//   - ContentType: One of the site's collections (blog, ctf, tool)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
