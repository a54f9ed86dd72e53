package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// documentResponse is the body of GET /content/{type}/{slug}.
type documentResponse struct {
	Metadata domain.Metadata `json:"metadata"`
	Content  string          `json:"content"`
}

// collectionResponse is the body of GET /content/{type}.
type collectionResponse struct {
	Type       domain.ContentType       `json:"type"`
	Entries    []domain.CollectionEntry `json:"entries"`
	Count      int                      `json:"count"`
	Tags       []string                 `json:"tags"`
	Categories []string                 `json:"categories"`
}

// Handler serves content requests.
type Handler struct {
	content driving.ContentService
}

// NewHandler creates a content handler.
func NewHandler(content driving.ContentService) *Handler {
	return &Handler{content: content}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Slugs handles GET /content/{type}/slugs.
func (h *Handler) Slugs(w http.ResponseWriter, r *http.Request) {
	ct, ok := contentType(w, r)
	if !ok {
		return
	}

	slugs, err := h.content.Slugs(r.Context(), ct)
	if err != nil {
		h.fail(w, r, ct, err)
		return
	}

	writeJSON(w, http.StatusOK, slugs)
}

// Document handles GET /content/{type}/{slug}.
func (h *Handler) Document(w http.ResponseWriter, r *http.Request) {
	ct, ok := contentType(w, r)
	if !ok {
		return
	}

	doc, err := h.content.Get(r.Context(), ct, mux.Vars(r)["slug"])
	if err != nil {
		h.fail(w, r, ct, err)
		return
	}

	writeJSON(w, http.StatusOK, documentResponse{Metadata: doc.Metadata, Content: doc.Body})
}

// Collection handles GET /content/{type}.
func (h *Handler) Collection(w http.ResponseWriter, r *http.Request) {
	ct, ok := contentType(w, r)
	if !ok {
		return
	}

	collection, err := h.content.List(r.Context(), ct, filterFromQuery(r))
	if err != nil {
		h.fail(w, r, ct, err)
		return
	}

	writeJSON(w, http.StatusOK, collectionResponse{
		Type:       collection.Type,
		Entries:    collection.Entries,
		Count:      len(collection.Entries),
		Tags:       collection.Tags,
		Categories: collection.Categories,
	})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, ct domain.ContentType, err error) {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		logger.Debug("web: %s %s: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusNotFound, ct.Label()+" not found")
	case errors.Is(err, domain.ErrUnsupportedType):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error("web: %s %s: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// contentType parses the {type} route variable, writing a 404 when it is unknown.
func contentType(w http.ResponseWriter, r *http.Request) (domain.ContentType, bool) {
	ct, err := domain.ParseContentType(mux.Vars(r)["type"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return "", false
	}
	return ct, true
}

// filterFromQuery reads q, tag (repeatable or comma-separated), difficulty and category.
func filterFromQuery(r *http.Request) domain.Filter {
	q := r.URL.Query()

	var tags []string
	for _, raw := range q["tag"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return domain.Filter{
		Query:      strings.TrimSpace(q.Get("q")),
		Tags:       tags,
		Difficulty: strings.TrimSpace(q.Get("difficulty")),
		Category:   strings.TrimSpace(q.Get("category")),
	}
}
