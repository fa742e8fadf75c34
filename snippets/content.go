package snippets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// contentFS holds one directory per component, laid out as
// content/<Category>/<ID>/<key file name>.
//
//go:embed content
var contentFS embed.FS

// LoadEntry reads one file per key from dir. Absent or empty files are
// reported together as ErrMissingField. A single trailing newline is
// stripped from each file.
func LoadEntry(fsys fs.FS, dir string) (Entry, error) {
	values := make(map[Key]string, keyCount)
	var missing []Key

	for _, k := range Keys() {
		data, err := fs.ReadFile(fsys, path.Join(dir, k.FileName()))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, k)
				continue
			}
			return Entry{}, fmt.Errorf("failed to read %s: %w", k.FileName(), err)
		}
		text := strings.TrimSuffix(string(data), "\n")
		if text == "" {
			missing = append(missing, k)
			continue
		}
		values[k] = text
	}

	if len(missing) > 0 {
		return Entry{}, newMissingFields(path.Base(dir), missing)
	}
	return NewEntry(values)
}

func mustLoadEntry(dir string) Entry {
	e, err := LoadEntry(contentFS, dir)
	if err != nil {
		panic(fmt.Sprintf("snippets: embedded content %s: %v", dir, err))
	}
	return e
}

var animatedContent = mustLoadEntry("content/Animations/AnimatedContent")

var defaultRegistry = MustNewRegistry(
	Component{
		ID:          "AnimatedContent",
		Category:    "Animations",
		Title:       "Animated Content",
		Description: "Fades and slides its children into place once they scroll into view.",
		Entry:       animatedContent,
	},
)

// AnimatedContent returns the content entry for the AnimatedContent component.
func AnimatedContent() Entry {
	return animatedContent
}

// Default returns the process-wide registry built from the embedded content.
func Default() *Registry {
	return defaultRegistry
}
