package domain

// catalogEntry binds a content type to its repository and degraded-mode slugs.
type catalogEntry struct {
	repository Repository
	fallback   []Slug
}

// catalog is process-wide static configuration. It is never mutated.
var catalog = map[ContentType]catalogEntry{
	ContentBlog: {
		repository: Repository{Owner: "AtomikPunch", Name: "Blog_Writeup", Branch: DefaultBranch},
		fallback: []Slug{
			"introduction-pentest-web",
			"outils-forensics-essentiels",
			"analyse-malware-statique",
			"cryptographie-moderne-ctf",
			"securite-containers-docker",
		},
	},
	ContentCTF: {
		repository: Repository{Owner: "AtomikPunch", Name: "CTF_Writeups", Branch: DefaultBranch},
	},
	ContentTool: {
		repository: Repository{Owner: "AtomikPunch", Name: "Tool_Writeups", Branch: DefaultBranch},
	},
}

// RepositoryFor returns the repository backing a content type.
func RepositoryFor(t ContentType) (Repository, bool) {
	entry, ok := catalog[t]
	return entry.repository, ok
}

// FallbackSlugs returns the fixed slug list used when listing a repository fails.
// The returned slice is a copy; repositories without a fallback yield an empty slice.
func FallbackSlugs(repo Repository) []Slug {
	for _, entry := range catalog {
		if entry.repository == repo {
			out := make([]Slug, len(entry.fallback))
			copy(out, entry.fallback)
			return out
		}
	}
	return []Slug{}
}
