package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/barisgit/snippets/internal/render"
	"github.com/barisgit/snippets/snippets"
)

// DocsHandler serves the rendered documentation pages. Pages are rendered
// once at construction since the registry never changes.
type DocsHandler struct {
	prefix string
	index  []byte
	pages  map[string][]byte
}

// NewDocsHandler renders the index and one page per component of reg
func NewDocsHandler(reg *snippets.Registry, prefix string) (*DocsHandler, error) {
	prefix = strings.TrimSuffix(prefix, "/")

	index, err := render.IndexPage(reg, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to render docs index: %w", err)
	}

	h := &DocsHandler{
		prefix: prefix,
		index:  index,
		pages:  make(map[string][]byte, reg.Len()),
	}
	for _, c := range reg.All() {
		page, err := render.Page(c)
		if err != nil {
			return nil, fmt.Errorf("failed to render docs page for %s: %w", c.ID, err)
		}
		h.pages[c.ID] = page
	}
	return h, nil
}

func (h *DocsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	rest, ok := strings.CutPrefix(r.URL.Path, h.prefix)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var body []byte
	switch id := strings.Trim(rest, "/"); {
	case id == "":
		body = h.index
	case strings.Contains(id, "/"):
		http.NotFound(w, r)
		return
	default:
		page, found := h.pages[id]
		if !found {
			http.NotFound(w, r)
			return
		}
		body = page
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(body)
	}
}
