// Package api provides the HTTP API layer for the Brochure application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// The OpenAPI 3.0 spec is generated automatically (JSON at /openapi.json,
// interactive docs at /docs), and Huma validates requests against the
// struct tags on the DTOs:
//
//	type BrochureRequest struct {
//	    Location   string   `json:"location" required:"true" minLength:"2" maxLength:"100"`
//	    URLs       []string `json:"urls,omitempty" maxItems:"20"`
//	    MaxSources int      `json:"max_sources,omitempty" minimum:"1" maximum:"10" default:"5"`
//	}
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	brochureHandler := handlers.NewBrochureHandler(searchService, fusionService)
//	brochureHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807. Domain errors
// are mapped to HTTP status codes in handlers/errors.go.
package api
