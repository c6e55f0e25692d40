// ABOUTME: Brochure handler orchestrating search and fusion into one response
// ABOUTME: Accepts explicit source URLs or falls back to ranked search hits

package handlers

import (
	"context"
	"net/http"

	"brochure-app-api/api/dto/mappers"
	"brochure-app-api/api/dto/requests"
	"brochure-app-api/api/dto/responses"
	"brochure-app-api/core/fusion"
	"brochure-app-api/core/search"

	"github.com/danielgtaylor/huma/v2"
)

// BrochureHandler handles brochure generation requests.
type BrochureHandler struct {
	searchService *search.SearchService
	fusionService *fusion.Service
}

// NewBrochureHandler creates a new brochure handler.
func NewBrochureHandler(searchService *search.SearchService, fusionService *fusion.Service) *BrochureHandler {
	return &BrochureHandler{
		searchService: searchService,
		fusionService: fusionService,
	}
}

// RegisterRoutes registers brochure routes.
func (h *BrochureHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generateBrochure",
		Method:      http.MethodPost,
		Path:        "/brochure",
		Summary:     "Generate brochure content for a location",
		Description: "Fetches source pages, fuses their content and returns merged text, attractions and bucketed images",
		Tags:        []string{"Brochure"},
	}, h.GenerateBrochure)
}

// BrochureInput defines the input for brochure generation.
type BrochureInput struct {
	Body requests.BrochureRequest
}

// BrochureOutput defines the output for brochure generation.
type BrochureOutput struct {
	Body responses.BrochureResponse
}

// GenerateBrochure handles the POST /brochure endpoint.
func (h *BrochureHandler) GenerateBrochure(ctx context.Context, input *BrochureInput) (*BrochureOutput, error) {
	input.Body.ApplyDefaults()

	urls := input.Body.URLs
	if len(urls) == 0 {
		hits, err := h.searchService.SearchLocation(ctx, input.Body.Location, input.Body.MaxSources)
		if err != nil {
			return nil, toHumaError(err)
		}
		urls = search.TopSources(hits, input.Body.MaxSources)
	}

	if len(urls) == 0 {
		return nil, huma.Error404NotFound("no sources found for location")
	}

	merged, err := h.fusionService.FuseFromURLs(ctx, urls, input.Body.Location)
	if err != nil {
		return nil, toHumaError(err)
	}

	if input.Body.IncludeTheme != nil && !*input.Body.IncludeTheme {
		merged.Theme = nil
	}

	output := &BrochureOutput{}
	output.Body = mappers.ToBrochureResponse(merged)
	return output, nil
}
