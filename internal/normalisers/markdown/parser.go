package markdown

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/logger"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// yamlDelimiter opens and closes the block Render writes.
const yamlDelimiter = "---"

// openingMarkers are the first lines that introduce a metadata block:
// YAML, TOML and JSON front matter in the forms the frontmatter package reads.
var openingMarkers = map[string]bool{
	"---":     true,
	"---yaml": true,
	"+++":     true,
	"---toml": true,
	";;;":     true,
	"---json": true,
}

// Parser splits markdown documents into front-matter metadata and body.
type Parser struct{}

// New creates a new markdown parser.
func New() *Parser {
	return &Parser{}
}

// Parse splits raw into metadata and body.
// Without a leading marker line the whole text is the body. A block that
// fails to decode is treated the same way.
func (p *Parser) Parse(raw []byte) domain.ParsedDocument {
	text := string(raw)
	if !hasMetadataBlock(text) {
		return domain.NewParsedDocument(nil, text)
	}

	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		logger.Debug("markdown: %v: %v", domain.ErrMalformedMetadata, err)
		return domain.NewParsedDocument(nil, text)
	}

	return domain.NewParsedDocument(normaliseMap(meta), string(body))
}

// Render writes the metadata as a YAML block followed by the body.
// Parse(Render(doc)) yields doc again.
func (p *Parser) Render(doc domain.ParsedDocument) ([]byte, error) {
	var buf bytes.Buffer

	switch {
	case len(doc.Metadata) > 0:
		data, err := yaml.Marshal(map[string]any(doc.Metadata))
		if err != nil {
			return nil, fmt.Errorf("marshal metadata: %w", err)
		}
		buf.WriteString(yamlDelimiter + "\n")
		buf.Write(data)
		buf.WriteString(yamlDelimiter + "\n")
	case hasMetadataBlock(doc.Body):
		// An empty block keeps a body that starts with a marker from being read as metadata.
		buf.WriteString(yamlDelimiter + "\n" + yamlDelimiter + "\n")
	}

	buf.WriteString(doc.Body)
	return buf.Bytes(), nil
}

// hasMetadataBlock reports whether the first non-blank line is an opening marker.
func hasMetadataBlock(text string) bool {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 4096), len(text)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return openingMarkers[line]
	}
	return false
}

// normaliseMap converts decoder output into JSON-encodable values.
// YAML decodes nested mappings with interface{} keys.
func normaliseMap(m map[string]any) domain.Metadata {
	out := make(domain.Metadata, len(m))
	for k, v := range m {
		out[k] = normaliseValue(v)
	}
	return out
}

func normaliseValue(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normaliseValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normaliseValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normaliseValue(item)
		}
		return out
	default:
		return v
	}
}
