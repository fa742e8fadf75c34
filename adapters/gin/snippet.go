package gin

import (
	"github.com/barisgit/snippets/pkg/serve"
	"github.com/barisgit/snippets/snippets"
	"github.com/gin-gonic/gin"
)

// SnippetHandler creates a Gin handler using the shared snippet logic. It
// expects the :id and :key route parameters.
func SnippetHandler(reg *snippets.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := "/" + c.Param("id") + "/" + c.Param("key")
		response := serve.ServeSnippet(reg, serve.SnippetConfig{}, path)

		if response.NotFound {
			c.AbortWithStatus(404)
			return
		}

		c.Header("Cache-Control", response.CacheControl)
		c.Data(response.StatusCode, response.ContentType, response.Body)
	}
}

// Register adds the snippet routes to r under config.Prefix
func Register(r gin.IRoutes, reg *snippets.Registry, config serve.SnippetConfig) {
	r.GET(config.Prefix+"/:id/:key", SnippetHandler(reg))
}
