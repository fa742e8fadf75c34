package chi

import (
	"net/http"

	"github.com/barisgit/snippets/pkg/serve"
	"github.com/barisgit/snippets/snippets"
	"github.com/go-chi/chi/v5"
)

// SnippetHandler creates a Chi handler using the shared snippet logic. It
// expects the {id} and {key} URL parameters to be set by the route.
func SnippetHandler(reg *snippets.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := "/" + chi.URLParam(r, "id") + "/" + chi.URLParam(r, "key")
		response := serve.ServeSnippet(reg, serve.SnippetConfig{}, path)

		if response.NotFound {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", response.ContentType)
		w.Header().Set("Cache-Control", response.CacheControl)
		w.WriteHeader(response.StatusCode)
		w.Write(response.Body)
	}
}

// Mount registers the snippet routes on r under config.Prefix
func Mount(r chi.Router, reg *snippets.Registry, config serve.SnippetConfig) {
	r.Get(config.Prefix+"/{id}/{key}", SnippetHandler(reg))
}
