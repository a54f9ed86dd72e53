package domain

import (
	"encoding/json"
	"fmt"
)

// SlugKey is the metadata key reserved for a collection entry's slug.
const SlugKey = "slug"

// Well-known metadata keys. Any other key is carried through untouched.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyDate        = "date"
	KeyTags        = "tags"
	KeyFeatured    = "featured"
	KeyDifficulty  = "difficulty"
	KeyPlatform    = "platform"
	KeyPoints      = "points"
	KeyCategory    = "category"
	KeyWebsite     = "website"
)

// Metadata is the decoded front-matter of a document.
// Keys vary by content type, so it is an open mapping.
type Metadata map[string]any

// String returns the value for key rendered as a string.
// Missing keys yield the empty string.
func (m Metadata) String(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Strings returns the value for key as a string slice.
// A scalar value is returned as a single-element slice.
func (m Metadata) Strings(key string) []string {
	switch v := m[key].(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return []string{fmt.Sprint(v)}
	}
}

// Bool returns the value for key as a boolean. Non-boolean values are false.
func (m Metadata) Bool(key string) bool {
	b, ok := m[key].(bool)
	return ok && b
}

// Clone returns a shallow copy. A nil receiver yields an empty mapping.
func (m Metadata) Clone() Metadata {
	dst := make(Metadata, len(m))
	for k, v := range m {
		dst[k] = v
	}
	return dst
}

// ParsedDocument is a fetched document split into metadata and body.
// Metadata is never nil and Body may be empty.
type ParsedDocument struct {
	Metadata Metadata
	Body     string
}

// NewParsedDocument builds a ParsedDocument, replacing nil metadata with an empty mapping.
func NewParsedDocument(metadata Metadata, body string) ParsedDocument {
	if metadata == nil {
		metadata = Metadata{}
	}
	return ParsedDocument{Metadata: metadata, Body: body}
}

// CollectionEntry is the metadata of one document plus its originating slug.
// The body is intentionally absent so list views stay small.
type CollectionEntry struct {
	Slug     Slug
	Metadata Metadata
}

// NewCollectionEntry builds an entry from a parsed document.
func NewCollectionEntry(slug Slug, doc ParsedDocument) CollectionEntry {
	return CollectionEntry{Slug: slug, Metadata: doc.Metadata.Clone()}
}

// Fields returns the flattened form: metadata with the slug under SlugKey.
// The slug always wins over a metadata value of the same key.
func (e CollectionEntry) Fields() Metadata {
	fields := e.Metadata.Clone()
	fields[SlugKey] = e.Slug
	return fields
}

// Title returns the entry title.
func (e CollectionEntry) Title() string {
	return e.Metadata.String(KeyTitle)
}

// Tags returns the entry tags.
func (e CollectionEntry) Tags() []string {
	return e.Metadata.Strings(KeyTags)
}

// MarshalJSON encodes the flattened form.
func (e CollectionEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any(e.Fields()))
}

// UnmarshalJSON decodes the flattened form, splitting the slug back out.
func (e *CollectionEntry) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	slug, _ := fields[SlugKey].(string)
	delete(fields, SlugKey)
	e.Slug = slug
	e.Metadata = Metadata(fields)
	if e.Metadata == nil {
		e.Metadata = Metadata{}
	}
	return nil
}
