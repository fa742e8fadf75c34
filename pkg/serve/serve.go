package serve

import (
	"net/http"
	"strings"

	"github.com/barisgit/snippets/snippets"
)

// SnippetConfig configures raw snippet serving
type SnippetConfig struct {
	// Prefix is the URL path the snippet routes are mounted under (e.g. "/snippets")
	Prefix string
}

// SnippetResponse is the router-independent result of resolving a snippet path
type SnippetResponse struct {
	StatusCode   int
	ContentType  string
	CacheControl string
	Body         []byte
	NotFound     bool
	Key          snippets.Key
	ComponentID  string
}

var contentTypes = map[string]string{
	"bash": "text/x-shellscript; charset=utf-8",
	"jsx":  "text/jsx; charset=utf-8",
	"tsx":  "text/tsx; charset=utf-8",
}

// Content never changes for the lifetime of the process
const cacheControl = "public, max-age=31536000, immutable"

// ServeSnippet resolves "<prefix>/<component>/<key>" to the stored text. The
// key segment may be a wire name ("tsCode") or a file name ("tsCode.tsx").
func ServeSnippet(reg *snippets.Registry, config SnippetConfig, urlPath string) SnippetResponse {
	id, key, ok := SplitPath(config.Prefix, urlPath)
	if !ok {
		return SnippetResponse{NotFound: true, StatusCode: http.StatusNotFound}
	}

	component, err := reg.Get(id)
	if err != nil {
		return SnippetResponse{NotFound: true, StatusCode: http.StatusNotFound}
	}

	k, err := parseKeySegment(key)
	if err != nil {
		return SnippetResponse{NotFound: true, StatusCode: http.StatusNotFound}
	}

	text, err := component.Entry.Get(k)
	if err != nil {
		return SnippetResponse{NotFound: true, StatusCode: http.StatusNotFound}
	}

	return SnippetResponse{
		StatusCode:   http.StatusOK,
		ContentType:  ContentType(k),
		CacheControl: cacheControl,
		Body:         []byte(text),
		Key:          k,
		ComponentID:  component.ID,
	}
}

// ContentType returns the response content type for a key's payload
func ContentType(k snippets.Key) string {
	if ct, ok := contentTypes[k.Language()]; ok {
		return ct
	}
	return "text/plain; charset=utf-8"
}

// SplitPath extracts the component id and key segment from a request path.
func SplitPath(prefix, urlPath string) (id, key string, ok bool) {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix != "" {
		if !strings.HasPrefix(urlPath, prefix+"/") {
			return "", "", false
		}
		urlPath = strings.TrimPrefix(urlPath, prefix)
	}

	parts := strings.Split(strings.Trim(urlPath, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func parseKeySegment(segment string) (snippets.Key, error) {
	if k, err := snippets.ParseKey(segment); err == nil {
		return k, nil
	}
	for _, k := range snippets.Keys() {
		if k.FileName() == segment {
			return k, nil
		}
	}
	return snippets.ParseKey(segment)
}
