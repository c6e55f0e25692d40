// ABOUTME: Search provider client querying the external web search API
// ABOUTME: Translates raw API results into unscored domain search hits

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"brochure-app-api/core/domain"
	coreerrors "brochure-app-api/core/errors"
	"brochure-app-api/core/interfaces"
)

// SearchProviderService queries an external search API over HTTP.
type SearchProviderService struct {
	deps     interfaces.Dependencies
	endpoint string
}

// NewSearchProviderService creates a search provider for the given endpoint.
func NewSearchProviderService(deps interfaces.Dependencies, endpoint string) *SearchProviderService {
	return &SearchProviderService{
		deps:     deps,
		endpoint: endpoint,
	}
}

// Search implements interfaces.SearchProvider. Hits come back unscored;
// ranking is the caller's concern.
func (s *SearchProviderService) Search(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error) {
	if s.endpoint == "" {
		return nil, errors.New("search endpoint not configured")
	}
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	apiURL := fmt.Sprintf("%s?q=%s&limit=%d", s.endpoint, url.QueryEscape(query), maxResults)

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "search request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "search query failed",
			API:        "search",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read search response")
	}

	var apiResponse struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Snippet     string `json:"snippet"`
			ContentType string `json:"contentType"`
			PublishDate string `json:"publishDate"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse search results")
	}

	hits := make([]domain.SearchHit, 0, len(apiResponse.Results))
	for _, r := range apiResponse.Results {
		if r.URL == "" {
			continue
		}
		hits = append(hits, domain.SearchHit{
			Title:       r.Title,
			URL:         r.URL,
			Snippet:     r.Snippet,
			ContentType: domain.ContentType(r.ContentType),
			PublishDate: r.PublishDate,
		})
	}

	return hits, nil
}
