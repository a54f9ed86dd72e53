package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// ListSlugsInput is the input schema for the list_slugs tool.
type ListSlugsInput struct {
	Type string `json:"type" jsonschema:"content type: blog, ctf or tool"`
}

// ListSlugsOutput is the output schema for the list_slugs tool.
type ListSlugsOutput struct {
	Type  string   `json:"type"`
	Slugs []string `json:"slugs"`
	Count int      `json:"count"`
}

// ListContentInput is the input schema for the list_content tool.
type ListContentInput struct {
	Type       string   `json:"type" jsonschema:"content type: blog, ctf or tool"`
	Query      string   `json:"query,omitempty" jsonschema:"case-insensitive text matched against title and description"`
	Tags       []string `json:"tags,omitempty" jsonschema:"keep entries carrying any of these tags"`
	Difficulty string   `json:"difficulty,omitempty" jsonschema:"keep CTF write-ups of this difficulty"`
	Category   string   `json:"category,omitempty" jsonschema:"keep tools of this category"`
}

// ListContentOutput is the output schema for the list_content tool.
// Each entry is the document metadata with its slug under "slug".
type ListContentOutput struct {
	Type       string           `json:"type"`
	Entries    []map[string]any `json:"entries"`
	Count      int              `json:"count"`
	Tags       []string         `json:"tags"`
	Categories []string         `json:"categories"`
}

// GetContentInput is the input schema for the get_content tool.
type GetContentInput struct {
	Type string `json:"type" jsonschema:"content type: blog, ctf or tool"`
	Slug string `json:"slug" jsonschema:"document slug as returned by list_slugs"`
}

// GetContentOutput is the output schema for the get_content tool.
type GetContentOutput struct {
	Type     string         `json:"type"`
	Slug     string         `json:"slug"`
	Metadata map[string]any `json:"metadata"`
	Content  string         `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_slugs",
		Description: "List the slugs of every document of a content type",
	}, s.handleListSlugs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_content",
		Description: "List the metadata of every document of a content type, optionally filtered",
	}, s.handleListContent)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_content",
		Description: "Get the metadata and markdown body of one document",
	}, s.handleGetContent)
}

// handleListSlugs handles the list_slugs tool invocation.
func (s *Server) handleListSlugs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListSlugsInput,
) (*mcp.CallToolResult, ListSlugsOutput, error) {
	ct, err := domain.ParseContentType(input.Type)
	if err != nil {
		return nil, ListSlugsOutput{}, err
	}

	slugs, err := s.ports.Content.Slugs(ctx, ct)
	if err != nil {
		return nil, ListSlugsOutput{}, err
	}

	return nil, ListSlugsOutput{
		Type:  ct.String(),
		Slugs: slugs,
		Count: len(slugs),
	}, nil
}

// handleListContent handles the list_content tool invocation.
func (s *Server) handleListContent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListContentInput,
) (*mcp.CallToolResult, ListContentOutput, error) {
	ct, err := domain.ParseContentType(input.Type)
	if err != nil {
		return nil, ListContentOutput{}, err
	}

	filter := domain.Filter{
		Query:      input.Query,
		Tags:       input.Tags,
		Difficulty: input.Difficulty,
		Category:   input.Category,
	}

	collection, err := s.ports.Content.List(ctx, ct, filter)
	if err != nil {
		return nil, ListContentOutput{}, err
	}

	output := ListContentOutput{
		Type:       ct.String(),
		Entries:    make([]map[string]any, len(collection.Entries)),
		Count:      len(collection.Entries),
		Tags:       collection.Tags,
		Categories: collection.Categories,
	}
	for i, entry := range collection.Entries {
		output.Entries[i] = entry.Fields()
	}

	return nil, output, nil
}

// handleGetContent handles the get_content tool invocation.
func (s *Server) handleGetContent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetContentInput,
) (*mcp.CallToolResult, GetContentOutput, error) {
	ct, err := domain.ParseContentType(input.Type)
	if err != nil {
		return nil, GetContentOutput{}, err
	}

	doc, err := s.ports.Content.Get(ctx, ct, input.Slug)
	if err != nil {
		return nil, GetContentOutput{}, fmt.Errorf("%s %q: %w", ct.Label(), input.Slug, err)
	}

	return nil, GetContentOutput{
		Type:     ct.String(),
		Slug:     input.Slug,
		Metadata: doc.Metadata,
		Content:  doc.Body,
	}, nil
}
