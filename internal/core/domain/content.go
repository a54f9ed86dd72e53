package domain

import (
	"fmt"
	"strings"
)

// ContentType identifies one of the site's content collections.
type ContentType string

// Available content types.
const (
	// ContentBlog is the blog post collection.
	ContentBlog ContentType = "blog"

	// ContentCTF is the CTF write-up collection.
	ContentCTF ContentType = "ctf"

	// ContentTool is the tool review collection.
	ContentTool ContentType = "tool"
)

// AllContentTypes returns every content type in display order.
func AllContentTypes() []ContentType {
	return []ContentType{ContentBlog, ContentCTF, ContentTool}
}

// ParseContentType resolves a route segment to a content type.
// "tools" is accepted as an alias of "tool".
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blog":
		return ContentBlog, nil
	case "ctf":
		return ContentCTF, nil
	case "tool", "tools":
		return ContentTool, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
}

// IsValid returns true if the content type is recognised.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentBlog, ContentCTF, ContentTool:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ContentType) String() string {
	return string(t)
}

// Label returns the singular human-readable name used in messages.
func (t ContentType) Label() string {
	switch t {
	case ContentBlog:
		return "Blog post"
	case ContentCTF:
		return "CTF write-up"
	case ContentTool:
		return "Tool"
	default:
		return "Document"
	}
}
