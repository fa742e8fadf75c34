package snippets

import (
	"fmt"
	"path"
)

// Component is one documented UI component and its content entry.
type Component struct {
	ID          string `json:"id" yaml:"id"`
	Category    string `json:"category" yaml:"category"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Entry       Entry  `json:"entry" yaml:"entry"`
}

// Path is the location the CLI fetcher commands reference, e.g.
// "Animations/AnimatedContent".
func (c Component) Path() string {
	return path.Join(c.Category, c.ID)
}

// Registry maps component IDs to components. It has no mutation methods;
// everything it returns is a copy.
type Registry struct {
	components map[string]Component
	order      []string
}

// NewRegistry validates every component and builds a registry from them.
func NewRegistry(components ...Component) (*Registry, error) {
	r := &Registry{
		components: make(map[string]Component, len(components)),
		order:      make([]string, 0, len(components)),
	}

	for _, c := range components {
		if c.ID == "" {
			return nil, NewSnippetError(CodeMissingField, "component id cannot be empty", "id")
		}
		if _, exists := r.components[c.ID]; exists {
			return nil, NewSnippetError(CodeDuplicateComponent,
				fmt.Sprintf("duplicate component id %q", c.ID), "id")
		}
		if missing := c.Entry.Missing(); len(missing) > 0 {
			return nil, newMissingFields(c.ID, missing)
		}
		r.components[c.ID] = c
		r.order = append(r.order, c.ID)
	}

	return r, nil
}

// MustNewRegistry is NewRegistry for package-level content; it panics on
// invalid content.
func MustNewRegistry(components ...Component) *Registry {
	r, err := NewRegistry(components...)
	if err != nil {
		panic(fmt.Sprintf("snippets: invalid registry content: %v", err))
	}
	return r
}

// Get retrieves a component by id
func (r *Registry) Get(id string) (Component, error) {
	c, ok := r.components[id]
	if !ok {
		return Component{}, newComponentNotFound(id)
	}
	return c, nil
}

// Lookup resolves a component id and key wire name to the stored text.
func (r *Registry) Lookup(id, key string) (string, error) {
	c, err := r.Get(id)
	if err != nil {
		return "", err
	}
	return c.Entry.Lookup(key)
}

// All returns all components in registration order
func (r *Registry) All() []Component {
	result := make([]Component, len(r.order))
	for i, id := range r.order {
		result[i] = r.components[id]
	}
	return result
}

// IDs returns all component ids in registration order
func (r *Registry) IDs() []string {
	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}

// Len returns the number of registered components
func (r *Registry) Len() int {
	return len(r.order)
}
