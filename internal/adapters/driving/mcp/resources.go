package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/folio/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for folio resources.
	uriScheme = "folio://"

	// contentRoot prefixes every content resource URI.
	contentRoot = uriScheme + "content"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing the content types.
	s.server.AddResource(&mcp.Resource{
		URI:         contentRoot,
		Name:        "content-types",
		Description: "The content types served by folio",
		MIMEType:    "application/json",
	}, s.handleTypesResource)

	// Template for the slug list of a type.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: contentRoot + "/{type}/slugs",
		Name:        "content-slugs",
		Description: "Slugs of every document of a content type",
		MIMEType:    "application/json",
	}, s.handleSlugsResource)

	// Template for one document.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: contentRoot + "/{type}/documents/{slug}",
		Name:        "content-document",
		Description: "Metadata and markdown body of one document",
		MIMEType:    "application/json",
	}, s.handleDocumentResource)
}

// handleTypesResource returns the available content types.
func (s *Server) handleTypesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type typeInfo struct {
		Type       string `json:"type"`
		Label      string `json:"label"`
		Repository string `json:"repository"`
		SlugsURI   string `json:"slugs_uri"`
	}

	types := domain.AllContentTypes()
	infos := make([]typeInfo, 0, len(types))
	for _, ct := range types {
		repo, _ := domain.RepositoryFor(ct)
		infos = append(infos, typeInfo{
			Type:       ct.String(),
			Label:      ct.Label(),
			Repository: repo.String(),
			SlugsURI:   contentRoot + "/" + ct.String() + "/slugs",
		})
	}

	return jsonResult(req.Params.URI, infos)
}

// handleSlugsResource returns the slugs of a content type.
func (s *Server) handleSlugsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ct, rest, ok := parseContentURI(req.Params.URI)
	if !ok || rest != "slugs" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	slugs, err := s.ports.Content.Slugs(ctx, ct)
	if err != nil {
		return nil, fmt.Errorf("listing slugs: %w", err)
	}

	return jsonResult(req.Params.URI, slugs)
}

// handleDocumentResource returns one document as {metadata, content}.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ct, rest, ok := parseContentURI(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	slug, found := strings.CutPrefix(rest, "documents/")
	if !found || slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Content.Get(ctx, ct, slug)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	return jsonResult(req.Params.URI, map[string]any{
		"metadata": doc.Metadata,
		"content":  doc.Body,
	})
}

// parseContentURI splits folio://content/{type}/{rest} into its type and remainder.
func parseContentURI(uri string) (domain.ContentType, string, bool) {
	path, found := strings.CutPrefix(uri, contentRoot+"/")
	if !found {
		return "", "", false
	}

	typ, rest, found := strings.Cut(path, "/")
	if !found {
		return "", "", false
	}

	ct, err := domain.ParseContentType(typ)
	if err != nil {
		return "", "", false
	}
	return ct, rest, true
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
