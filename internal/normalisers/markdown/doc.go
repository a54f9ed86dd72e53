// Package markdown parses content documents: an optional front-matter block
// (YAML, TOML or JSON, read with github.com/adrg/frontmatter) followed by a
// markdown body. Parsing is lenient; Render writes the YAML form back.
package markdown
