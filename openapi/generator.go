package openapi

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/barisgit/snippets/internal/api"
	"github.com/barisgit/snippets/snippets"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
)

// Title is the API title used in the OpenAPI document
const Title = "Snippets API"

// Config returns the Huma configuration shared by the server and the OpenAPI
// generator. The OpenAPI document, schemas and docs UI live under prefix so
// they never collide with the rendered component pages.
func Config(prefix, version string) huma.Config {
	prefix = strings.TrimSuffix(prefix, "/")
	config := huma.DefaultConfig(Title, version)
	config.Info.Description = "Read-only access to component documentation snippets: installation, CLI commands, usage and source variants."
	config.OpenAPIPath = prefix + "/openapi"
	config.DocsPath = prefix + "/docs"
	config.SchemasPath = prefix + "/schemas"
	return config
}

// Build registers every operation for reg on a throwaway mux so the
// document can be produced without starting a server.
func Build(reg *snippets.Registry, prefix, version string) huma.API {
	humaAPI := humago.New(http.NewServeMux(), Config(prefix, version))
	api.Register(humaAPI, reg, prefix, version)
	return humaAPI
}

// GenerateSpecToFile writes the OpenAPI document to outputPath, as YAML
// when the extension is .yaml or .yml and JSON otherwise.
func GenerateSpecToFile(humaAPI huma.API, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	var spec []byte
	var err error
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".yaml", ".yml":
		spec, err = GenerateSpecYAML(humaAPI)
	default:
		spec, err = GenerateSpec(humaAPI)
	}
	if err != nil {
		return fmt.Errorf("failed to generate OpenAPI document: %w", err)
	}

	if err := os.WriteFile(outputPath, spec, 0644); err != nil {
		return fmt.Errorf("failed to save OpenAPI spec to %s: %w", outputPath, err)
	}

	return nil
}

// GenerateSpec generates an OpenAPI spec from a Huma API and returns it as bytes
func GenerateSpec(humaAPI huma.API) ([]byte, error) {
	return humaAPI.OpenAPI().MarshalJSON()
}

// GenerateSpecYAML generates an OpenAPI spec in YAML format
func GenerateSpecYAML(humaAPI huma.API) ([]byte, error) {
	return humaAPI.OpenAPI().YAML()
}

// GetRouteCount returns the number of operations in the API
func GetRouteCount(humaAPI huma.API) int {
	openAPISpec := humaAPI.OpenAPI()
	if openAPISpec == nil || openAPISpec.Paths == nil {
		return 0
	}

	routeCount := 0
	for _, pathItem := range openAPISpec.Paths {
		if pathItem == nil {
			continue
		}
		for _, op := range []*huma.Operation{
			pathItem.Get, pathItem.Post, pathItem.Put, pathItem.Delete,
			pathItem.Patch, pathItem.Head, pathItem.Options,
		} {
			if op != nil {
				routeCount++
			}
		}
	}
	return routeCount
}
