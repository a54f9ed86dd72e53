package domain

// Filter narrows a collection the way the site's list pages do.
// The zero value matches every entry.
type Filter struct {
	// Query is matched case-insensitively against title and description.
	Query string

	// Tags matches entries carrying at least one of the given tags.
	Tags []string

	// Difficulty matches CTF entries exactly.
	Difficulty string

	// Category matches tool entries exactly.
	Category string
}

// IsEmpty reports whether the filter matches everything.
func (f Filter) IsEmpty() bool {
	return f.Query == "" && len(f.Tags) == 0 && f.Difficulty == "" && f.Category == ""
}

// Collection is a filtered view over one content type.
type Collection struct {
	// Type is the content type listed.
	Type ContentType

	// Entries are the entries matching the filter, in listing order.
	Entries []CollectionEntry

	// Tags are every tag of the unfiltered collection, first-seen order.
	Tags []string

	// Categories are every category of the unfiltered collection, first-seen order.
	Categories []string
}
