// ABOUTME: Search handler exposing ranked source discovery for a location
// ABOUTME: Thin HTTP layer over the core search service

package handlers

import (
	"context"
	"net/http"

	"brochure-app-api/api/dto/mappers"
	"brochure-app-api/api/dto/requests"
	"brochure-app-api/api/dto/responses"
	"brochure-app-api/core/search"

	"github.com/danielgtaylor/huma/v2"
)

// SearchHandler handles location source search requests.
type SearchHandler struct {
	service *search.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service *search.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// RegisterRoutes registers search routes.
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchLocation",
		Method:      http.MethodPost,
		Path:        "/search",
		Summary:     "Search sources for a location",
		Description: "Runs query variants against the search provider and returns deduplicated, relevance-ranked hits",
		Tags:        []string{"Search"},
	}, h.SearchLocation)
}

// SearchInput defines the input for location search.
type SearchInput struct {
	Body requests.SearchRequest
}

// SearchOutput defines the output for location search.
type SearchOutput struct {
	Body responses.SearchResponse
}

// SearchLocation handles the POST /search endpoint.
func (h *SearchHandler) SearchLocation(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	input.Body.ApplyDefaults()

	hits, err := h.service.SearchLocation(ctx, input.Body.Location, input.Body.MaxResults)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &SearchOutput{}
	output.Body.Location = input.Body.Location
	output.Body.Results = mappers.ToSearchHitResponses(hits)
	return output, nil
}
