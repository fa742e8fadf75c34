package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/barisgit/snippets/snippets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncodeJSONMatchesRegistry(t *testing.T) {
	c, err := snippets.Default().Get("AnimatedContent")
	require.NoError(t, err)

	data, err := Encode(c, "json")
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "AnimatedContent", doc.ID)
	assert.Equal(t, "Animations/AnimatedContent", doc.Path)
	assert.Equal(t, c.Entry.Named(), doc.Snippets)
	assert.Len(t, doc.Snippets, 10)
}

func TestEncodeYAMLPreservesWhitespace(t *testing.T) {
	c, err := snippets.Default().Get("AnimatedContent")
	require.NoError(t, err)

	data, err := Encode(c, "yaml")
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal(data, &doc))

	// The Tailwind variants differ from the plain ones only by whitespace
	assert.Equal(t, c.Entry.Tailwind, doc.Snippets["tailwind"])
	assert.Equal(t, c.Entry.TSTailwind, doc.Snippets["tsTailwind"])
	assert.NotEqual(t, doc.Snippets["tsCode"], doc.Snippets["tsTailwind"])
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	c, _ := snippets.Default().Get("AnimatedContent")
	_, err := Encode(c, "html")
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	result, err := Write(snippets.Default(), dir, []string{"json", "yaml", "markdown"}, true)
	require.NoError(t, err)

	assert.Len(t, result.Files, 3+10)
	for _, name := range []string{"AnimatedContent.json", "AnimatedContent.yaml", "AnimatedContent.md"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	raw, err := os.ReadFile(filepath.Join(dir, "Animations", "AnimatedContent", "tsCode.tsx"))
	require.NoError(t, err)
	assert.Equal(t, snippets.AnimatedContent().TSCode+"\n", string(raw))

	// Raw files load back into an identical entry
	loaded, err := snippets.LoadEntry(os.DirFS(dir), "Animations/AnimatedContent")
	require.NoError(t, err)
	assert.Equal(t, snippets.AnimatedContent(), loaded)
}

func TestWriteRawFilesInKeyOrder(t *testing.T) {
	componentDir := func(dir string) string {
		return filepath.Join(dir, "Animations", "AnimatedContent")
	}

	var want []string
	for _, k := range snippets.Keys() {
		want = append(want, k.FileName())
	}

	for i := 0; i < 20; i++ {
		dir := t.TempDir()
		result, err := Write(snippets.Default(), dir, nil, true)
		require.NoError(t, err)
		require.Len(t, result.Files, len(want))

		for j, file := range result.Files {
			assert.Equal(t, filepath.Join(componentDir(dir), want[j]), file)
		}
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".md", Extension("markdown"))
	assert.Equal(t, ".yaml", Extension("yaml"))
	assert.Equal(t, ".json", Extension("json"))
}
