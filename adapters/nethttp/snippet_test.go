package nethttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/barisgit/snippets/internal/testutil"
	"github.com/barisgit/snippets/pkg/serve"
	"github.com/barisgit/snippets/snippets"
)

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/snippets/", SnippetHandler(snippets.Default(), serve.SnippetConfig{Prefix: "/snippets"}))
	return mux
}

func TestSnippetHandler_Serving(t *testing.T) {
	mux := newMux()

	for _, tt := range testutil.GetSnippetServingTests() {
		t.Run(tt.Name, func(t *testing.T) {
			t.Logf("🧪 Testing %s", tt.Path)

			req := httptest.NewRequest("GET", tt.Path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			testutil.ValidateSnippetResponse(t, tt, w.Code,
				w.Header().Get("Content-Type"),
				w.Header().Get("Cache-Control"),
				w.Body.String())
		})
	}
}

func TestSnippetHandler_NotFound(t *testing.T) {
	mux := newMux()

	for _, path := range testutil.GetNotFoundPaths() {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 for %s, got %d", path, w.Code)
		}
	}
}

func TestSnippetHandler_Methods(t *testing.T) {
	mux := newMux()

	req := httptest.NewRequest("HEAD", "/snippets/AnimatedContent/code", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for HEAD, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body for HEAD, got %d bytes", w.Body.Len())
	}

	req = httptest.NewRequest("POST", "/snippets/AnimatedContent/code", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for POST, got %d", w.Code)
	}
	if w.Header().Get("Allow") != "GET, HEAD" {
		t.Errorf("Expected Allow header, got '%s'", w.Header().Get("Allow"))
	}
}
