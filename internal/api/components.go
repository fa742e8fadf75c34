package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/barisgit/snippets/snippets"
	"github.com/danielgtaylor/huma/v2"
)

// ComponentSummary describes a component without its content
type ComponentSummary struct {
	ID          string `json:"id" example:"AnimatedContent" doc:"Component id"`
	Category    string `json:"category" example:"Animations" doc:"Component category"`
	Title       string `json:"title" example:"Animated Content" doc:"Display title"`
	Description string `json:"description,omitempty" doc:"Short description"`
	Path        string `json:"path" example:"Animations/AnimatedContent" doc:"Path referenced by the CLI fetcher commands"`
}

// ComponentDetail is a component with all ten text blocks
type ComponentDetail struct {
	ComponentSummary
	Snippets snippets.Entry `json:"snippets" doc:"Every text block of the component"`
}

// KeyInfo describes one key of the closed key set
type KeyInfo struct {
	Name     string `json:"name" example:"tsCode" doc:"Wire name of the key"`
	Title    string `json:"title" example:"TypeScript" doc:"Display title"`
	Language string `json:"language" example:"tsx" doc:"Syntax highlighting hint"`
	FileName string `json:"file_name" example:"tsCode.tsx" doc:"File name used for raw downloads and exports"`
	Variant  bool   `json:"variant" doc:"Whether the key holds a full source variant"`
}

type ListComponentsOutput struct {
	Body struct {
		Components []ComponentSummary `json:"components" doc:"Registered components in registration order"`
	}
}

type ListKeysOutput struct {
	Body struct {
		Keys []KeyInfo `json:"keys" doc:"Every snippet key in canonical order"`
	}
}

type GetComponentInput struct {
	ID string `path:"id" example:"AnimatedContent" doc:"Component id"`
}

type GetComponentOutput struct {
	Body ComponentDetail
}

type GetSnippetInput struct {
	ID  string `path:"id" example:"AnimatedContent" doc:"Component id"`
	Key string `path:"key" enum:"installation,cliDefault,cliTailwind,cliTsDefault,cliTsTailwind,usage,code,tailwind,tsCode,tsTailwind" doc:"Snippet key"`
}

type GetSnippetOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         struct {
		Component string `json:"component" example:"AnimatedContent" doc:"Component id"`
		Key       string `json:"key" example:"installation" doc:"Snippet key"`
		Language  string `json:"language" example:"bash" doc:"Syntax highlighting hint"`
		Content   string `json:"content" example:"npm install @react-spring/web" doc:"Snippet text"`
	}
}

// NewSummary builds the summary of c
func NewSummary(c snippets.Component) ComponentSummary {
	return ComponentSummary{
		ID:          c.ID,
		Category:    c.Category,
		Title:       c.Title,
		Description: c.Description,
		Path:        c.Path(),
	}
}

// NewKeyInfo builds the description of k
func NewKeyInfo(k snippets.Key) KeyInfo {
	return KeyInfo{
		Name:     k.String(),
		Title:    k.Title(),
		Language: k.Language(),
		FileName: k.FileName(),
		Variant:  k.IsVariant(),
	}
}

// RegisterComponents adds the read-only registry operations under prefix
func RegisterComponents(api huma.API, reg *snippets.Registry, prefix string) {
	prefix = strings.TrimSuffix(prefix, "/")

	huma.Register(api, huma.Operation{
		OperationID: "list-components",
		Method:      http.MethodGet,
		Path:        prefix + "/components",
		Summary:     "List components",
		Description: "List every documented component",
		Tags:        []string{"Components"},
	}, func(ctx context.Context, input *struct{}) (*ListComponentsOutput, error) {
		resp := &ListComponentsOutput{}
		resp.Body.Components = make([]ComponentSummary, 0, reg.Len())
		for _, c := range reg.All() {
			resp.Body.Components = append(resp.Body.Components, NewSummary(c))
		}
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-component",
		Method:      http.MethodGet,
		Path:        prefix + "/components/{id}",
		Summary:     "Get component",
		Description: "Get a component with all of its snippets",
		Tags:        []string{"Components"},
	}, func(ctx context.Context, input *GetComponentInput) (*GetComponentOutput, error) {
		c, err := reg.Get(input.ID)
		if err != nil {
			return nil, err
		}
		return &GetComponentOutput{Body: ComponentDetail{
			ComponentSummary: NewSummary(c),
			Snippets:         c.Entry,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-snippet",
		Method:      http.MethodGet,
		Path:        prefix + "/components/{id}/snippets/{key}",
		Summary:     "Get snippet",
		Description: "Get a single text block of a component",
		Tags:        []string{"Components"},
	}, func(ctx context.Context, input *GetSnippetInput) (*GetSnippetOutput, error) {
		c, err := reg.Get(input.ID)
		if err != nil {
			return nil, err
		}
		k, err := snippets.ParseKey(input.Key)
		if err != nil {
			return nil, err
		}
		text, err := c.Entry.Get(k)
		if err != nil {
			return nil, err
		}

		resp := &GetSnippetOutput{CacheControl: "public, max-age=31536000, immutable"}
		resp.Body.Component = c.ID
		resp.Body.Key = k.String()
		resp.Body.Language = k.Language()
		resp.Body.Content = text
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-keys",
		Method:      http.MethodGet,
		Path:        prefix + "/keys",
		Summary:     "List snippet keys",
		Description: "List the closed set of snippet keys every component provides",
		Tags:        []string{"Components"},
	}, func(ctx context.Context, input *struct{}) (*ListKeysOutput, error) {
		resp := &ListKeysOutput{}
		for _, k := range snippets.Keys() {
			resp.Body.Keys = append(resp.Body.Keys, NewKeyInfo(k))
		}
		return resp, nil
	})
}

// Register adds every operation to api under prefix
func Register(api huma.API, reg *snippets.Registry, prefix, version string) {
	prefix = strings.TrimSuffix(prefix, "/")
	AddHealthCheck(api, prefix+"/health", "snippets", version, reg.Len())
	RegisterComponents(api, reg, prefix)
}
