package services

import (
	"strings"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// FilterEntries returns the entries matching every set criterion of the filter,
// keeping their order.
func FilterEntries(entries []domain.CollectionEntry, filter domain.Filter) []domain.CollectionEntry {
	if filter.IsEmpty() {
		return append([]domain.CollectionEntry{}, entries...)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]domain.CollectionEntry, 0, len(entries))
	for _, entry := range entries {
		if query != "" && !matchesQuery(entry, query) {
			continue
		}
		if len(filter.Tags) > 0 && !hasAnyTag(entry.Tags(), filter.Tags) {
			continue
		}
		if filter.Difficulty != "" && entry.Metadata.String(domain.KeyDifficulty) != filter.Difficulty {
			continue
		}
		if filter.Category != "" && entry.Metadata.String(domain.KeyCategory) != filter.Category {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// AllTags returns every distinct tag across entries, first-seen order.
func AllTags(entries []domain.CollectionEntry) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, entry := range entries {
		for _, tag := range entry.Tags() {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// AllCategories returns every distinct category across entries, first-seen order.
func AllCategories(entries []domain.CollectionEntry) []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, entry := range entries {
		category := entry.Metadata.String(domain.KeyCategory)
		if category != "" && !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}
	return categories
}

func matchesQuery(entry domain.CollectionEntry, query string) bool {
	return strings.Contains(strings.ToLower(entry.Title()), query) ||
		strings.Contains(strings.ToLower(entry.Metadata.String(domain.KeyDescription)), query)
}

func hasAnyTag(tags, wanted []string) bool {
	for _, want := range wanted {
		for _, tag := range tags {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}
