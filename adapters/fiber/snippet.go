package fiber

import (
	"github.com/barisgit/snippets/pkg/serve"
	"github.com/barisgit/snippets/snippets"
	"github.com/gofiber/fiber/v2"
)

// SnippetHandler creates a Fiber handler using the shared snippet logic. It
// expects the :id and :key route parameters.
func SnippetHandler(reg *snippets.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := "/" + c.Params("id") + "/" + c.Params("key")
		response := serve.ServeSnippet(reg, serve.SnippetConfig{}, path)

		if response.NotFound {
			return c.SendStatus(404)
		}

		c.Set("Content-Type", response.ContentType)
		c.Set("Cache-Control", response.CacheControl)
		c.Status(response.StatusCode)
		return c.Send(response.Body)
	}
}

// Register adds the snippet routes to r under config.Prefix
func Register(r fiber.Router, reg *snippets.Registry, config serve.SnippetConfig) {
	r.Get(config.Prefix+"/:id/:key", SnippetHandler(reg))
}
