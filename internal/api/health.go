package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthResponse represents a standard health check response
type HealthResponse struct {
	Body struct {
		Status     string `json:"status" example:"ok" doc:"Service status"`
		Message    string `json:"message,omitempty" example:"snippets is running" doc:"Optional status message"`
		Version    string `json:"version,omitempty" example:"1.0.0" doc:"Optional service version"`
		Components int    `json:"components" example:"1" doc:"Number of registered components"`
	}
}

// AddHealthCheck adds a standard health check endpoint to a Huma API
func AddHealthCheck(api huma.API, path string, serviceName string, version string, components int) {
	if path == "" {
		path = "/api/health"
	}

	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        path,
		Summary:     "Health Check",
		Description: "Check if the service is running and healthy",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*HealthResponse, error) {
		resp := &HealthResponse{}
		resp.Body.Status = "ok"
		resp.Body.Components = components

		if serviceName != "" {
			resp.Body.Message = serviceName + " is running"
		}

		if version != "" {
			resp.Body.Version = version
		}

		return resp, nil
	})
}
