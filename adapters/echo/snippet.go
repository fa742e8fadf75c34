package echo

import (
	"github.com/barisgit/snippets/pkg/serve"
	"github.com/barisgit/snippets/snippets"
	"github.com/labstack/echo/v4"
)

// SnippetHandler creates an Echo handler using the shared snippet logic. It
// expects the :id and :key route parameters.
func SnippetHandler(reg *snippets.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := "/" + c.Param("id") + "/" + c.Param("key")
		response := serve.ServeSnippet(reg, serve.SnippetConfig{}, path)

		if response.NotFound {
			return c.NoContent(404)
		}

		c.Response().Header().Set("Cache-Control", response.CacheControl)
		return c.Blob(response.StatusCode, response.ContentType, response.Body)
	}
}

// Register adds the snippet routes to e under config.Prefix
func Register(e *echo.Echo, reg *snippets.Registry, config serve.SnippetConfig) {
	e.GET(config.Prefix+"/:id/:key", SnippetHandler(reg))
}
