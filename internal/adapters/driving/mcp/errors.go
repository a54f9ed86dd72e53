// Package mcp provides an MCP (Model Context Protocol) server adapter for folio.
// It lets AI assistants list and read the site's blog posts, CTF write-ups and tool reviews.
package mcp

import "errors"

// ErrMissingContentService is returned when the content service is not provided.
var ErrMissingContentService = errors.New("mcp: content service is required")
