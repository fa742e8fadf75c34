// Package render turns registry content into documentation pages: a
// Markdown document per component and its HTML rendering.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/barisgit/snippets/snippets"
	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Unavailable is shown in place of a missing or empty text block
const Unavailable = "Content unavailable."

type section struct {
	title string
	keys  []snippets.Key
}

// Page layout: each section lists its keys in display order
var sections = []section{
	{"Installation", []snippets.Key{snippets.Installation}},
	{"Install with CLI", []snippets.Key{snippets.CLIDefault, snippets.CLITailwind, snippets.CLITSDefault, snippets.CLITSTailwind}},
	{"Usage", []snippets.Key{snippets.Usage}},
	{"Code", snippets.Variants()},
}

// Markdown renders a component as a Markdown document. Every key appears
// exactly once as a fenced code block, or as an Unavailable note when its
// value is empty.
func Markdown(c snippets.Component) string {
	var b strings.Builder

	title := c.Title
	if title == "" {
		title = c.ID
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if c.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", c.Description)
	}
	if c.Category != "" {
		fmt.Fprintf(&b, "Category: `%s`\n\n", c.Path())
	}

	for _, s := range sections {
		fmt.Fprintf(&b, "## %s\n\n", s.title)
		for _, k := range s.keys {
			if len(s.keys) > 1 {
				fmt.Fprintf(&b, "### %s\n\n", k.Title())
			}
			text, _ := c.Entry.Get(k)
			writeBlock(&b, k.Language(), text)
		}
	}

	return b.String()
}

// Index renders a Markdown list linking every component page under docsPrefix
func Index(reg *snippets.Registry, docsPrefix string) string {
	var b strings.Builder
	b.WriteString("# Components\n\n")
	if reg.Len() == 0 {
		fmt.Fprintf(&b, "> %s\n", Unavailable)
		return b.String()
	}
	for _, c := range reg.All() {
		title := c.Title
		if title == "" {
			title = c.ID
		}
		fmt.Fprintf(&b, "- [%s](%s/%s) (%s)\n", title, strings.TrimSuffix(docsPrefix, "/"), c.ID, c.Category)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, language, text string) {
	if strings.TrimSpace(text) == "" {
		fmt.Fprintf(b, "> %s\n\n", Unavailable)
		return
	}
	fence := fenceFor(text)
	fmt.Fprintf(b, "%s%s\n%s\n%s\n\n", fence, language, text, fence)
}

// fenceFor returns a backtick fence longer than any backtick run in text.
func fenceFor(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ToHTML converts Markdown to an HTML fragment.
func ToHTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// Page renders a full HTML document for a component
func Page(c snippets.Component) ([]byte, error) {
	title := c.Title
	if title == "" {
		title = c.ID
	}
	return page(title, Markdown(c))
}

// IndexPage renders a full HTML document listing every component
func IndexPage(reg *snippets.Registry, docsPrefix string) ([]byte, error) {
	return page("Components", Index(reg, docsPrefix))
}

func page(title, source string) ([]byte, error) {
	body, err := ToHTML(source)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{title, body}); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

// Terminal renders Markdown for display in a terminal. Style is a glamour
// style name or path; "" or "auto" picks one from the terminal background.
// On any renderer error the source is returned unchanged.
func Terminal(source, style string, width int) string {
	var options []glamour.TermRendererOption
	if style != "" && style != "auto" {
		options = append(options, glamour.WithStylePath(style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return source
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return source
	}
	return rendered
}
