package render

import (
	"strings"
	"testing"

	"github.com/barisgit/snippets/snippets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func animatedContent(t *testing.T) snippets.Component {
	t.Helper()
	c, err := snippets.Default().Get("AnimatedContent")
	require.NoError(t, err)
	return c
}

func TestMarkdownContainsEveryKey(t *testing.T) {
	c := animatedContent(t)
	md := Markdown(c)

	assert.True(t, strings.HasPrefix(md, "# Animated Content\n"))
	assert.Contains(t, md, "Category: `Animations/AnimatedContent`")

	for _, k := range snippets.Keys() {
		text, err := c.Entry.Get(k)
		require.NoError(t, err)
		assert.Contains(t, md, text, "markdown should contain %s", k)
	}

	assert.Contains(t, md, "### TypeScript + Tailwind")
	assert.Contains(t, md, "```tsx\n")
	assert.Contains(t, md, "```bash\nnpm install @react-spring/web\n```")
	assert.NotContains(t, md, Unavailable)
}

func TestMarkdownUnavailable(t *testing.T) {
	c := animatedContent(t)
	c.Entry.Tailwind = ""
	c.Entry.Usage = "   "

	md := Markdown(c)

	assert.Equal(t, 2, strings.Count(md, "> "+Unavailable))
	assert.Contains(t, md, "### Tailwind\n\n> "+Unavailable)
}

func TestFenceFor(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"plain", "```"},
		{"a `b` c", "```"},
		{"nested ``` fence", "````"},
		{"`````", "``````"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fenceFor(tt.text), "fence for %q", tt.text)
	}
}

func TestToHTML(t *testing.T) {
	html, err := ToHTML("```jsx\nconst a = `x`;\n```\n")
	require.NoError(t, err)

	assert.Contains(t, string(html), `<code class="language-jsx">`)
	assert.Contains(t, string(html), "const a = `x`;")
}

func TestPage(t *testing.T) {
	out, err := Page(animatedContent(t))
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<title>Animated Content</title>")
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, `<code class="language-tsx">`)
	// JSX in the payload must be escaped, never rendered as markup
	assert.Contains(t, html, "&lt;AnimatedContent")
	assert.NotContains(t, html, "<AnimatedContent\n")
}

func TestIndexPage(t *testing.T) {
	out, err := IndexPage(snippets.Default(), "/docs/")
	require.NoError(t, err)

	assert.Contains(t, string(out), `<a href="/docs/AnimatedContent">Animated Content</a>`)
}

func TestIndexEmptyRegistry(t *testing.T) {
	empty := snippets.MustNewRegistry()
	assert.Contains(t, Index(empty, "/docs"), Unavailable)
}

func TestTerminal(t *testing.T) {
	c, err := snippets.Default().Get("AnimatedContent")
	require.NoError(t, err)

	out := Terminal(Markdown(c), "notty", 80)
	assert.Contains(t, out, "npm install @react-spring/web")
	assert.Contains(t, out, "Animated Content")
}

func TestTerminalFallsBackOnBadStyle(t *testing.T) {
	source := "# Title\n"
	assert.Equal(t, source, Terminal(source, "/does/not/exist.json", 0))
}
