package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/barisgit/snippets/internal/render"
	"github.com/barisgit/snippets/snippets"
	"gopkg.in/yaml.v3"
)

// Document is the exported form of one component: metadata plus every
// text block keyed by its wire name.
type Document struct {
	ID          string            `json:"id" yaml:"id"`
	Category    string            `json:"category" yaml:"category"`
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Path        string            `json:"path" yaml:"path"`
	Snippets    map[string]string `json:"snippets" yaml:"snippets"`
}

// NewDocument builds the exported form of c
func NewDocument(c snippets.Component) Document {
	return Document{
		ID:          c.ID,
		Category:    c.Category,
		Title:       c.Title,
		Description: c.Description,
		Path:        c.Path(),
		Snippets:    c.Entry.Named(),
	}
}

// Encode renders c in one of the supported formats: json, yaml or markdown.
func Encode(c snippets.Component, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(NewDocument(c), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s as JSON: %w", c.ID, err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(NewDocument(c))
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s as YAML: %w", c.ID, err)
		}
		return data, nil
	case "markdown":
		return []byte(render.Markdown(c)), nil
	default:
		return nil, fmt.Errorf("unsupported export format '%s'", format)
	}
}

// Extension returns the file extension used for a format
func Extension(format string) string {
	switch format {
	case "markdown":
		return ".md"
	case "yaml":
		return ".yaml"
	default:
		return "." + format
	}
}

// Result lists the files written by Write
type Result struct {
	Files []string
}

// Write exports every component of reg into dir, one file per component and
// format. With raw set, each text block is also written under
// dir/<Category>/<ID>/<key file name>.
func Write(reg *snippets.Registry, dir string, formats []string, raw bool) (*Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	result := &Result{}
	for _, c := range reg.All() {
		for _, format := range formats {
			data, err := Encode(c, format)
			if err != nil {
				return nil, err
			}
			path := filepath.Join(dir, c.ID+Extension(format))
			if err := os.WriteFile(path, data, 0644); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", path, err)
			}
			result.Files = append(result.Files, path)
		}

		if raw {
			files, err := writeRaw(c, dir)
			if err != nil {
				return nil, err
			}
			result.Files = append(result.Files, files...)
		}
	}

	return result, nil
}

func writeRaw(c snippets.Component, dir string) ([]string, error) {
	componentDir := filepath.Join(dir, filepath.FromSlash(c.Path()))
	if err := os.MkdirAll(componentDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", componentDir, err)
	}

	var files []string
	for _, k := range snippets.Keys() {
		text, err := c.Entry.Get(k)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(componentDir, k.FileName())
		if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		files = append(files, path)
	}
	return files, nil
}
