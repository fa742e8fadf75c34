package nethttp

import (
	"net/http"

	"github.com/barisgit/snippets/pkg/serve"
	"github.com/barisgit/snippets/snippets"
)

// SnippetHandler creates a net/http handler using the shared snippet logic.
// Mount it under config.Prefix, e.g. mux.Handle("/snippets/", handler).
func SnippetHandler(reg *snippets.Registry, config serve.SnippetConfig) http.Handler {
	return SnippetHandlerFunc(reg, config)
}

// SnippetHandlerFunc creates a net/http HandlerFunc using the shared snippet logic
func SnippetHandlerFunc(reg *snippets.Registry, config serve.SnippetConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		response := serve.ServeSnippet(reg, config, r.URL.Path)

		if response.NotFound {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", response.ContentType)
		w.Header().Set("Cache-Control", response.CacheControl)
		w.WriteHeader(response.StatusCode)
		if r.Method != http.MethodHead {
			w.Write(response.Body)
		}
	}
}
