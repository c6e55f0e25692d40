// ABOUTME: Search service discovers candidate source pages for a location
// ABOUTME: Fans out query variants, deduplicates by URL and ranks the combined hits

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"brochure-app-api/core/domain"
	"brochure-app-api/core/interfaces"
	"brochure-app-api/core/ranking"
)

// queryVariants are appended to the location name so one search covers
// guides, attractions and practical advice in a single pass.
var queryVariants = []string{
	"travel guide",
	"tourist attractions",
	"travel tips",
}

const searchCacheTTL = 24 * time.Hour

// SearchService discovers and ranks web sources for a location.
type SearchService struct {
	deps     interfaces.Dependencies
	provider interfaces.SearchProvider
	ranker   *ranking.Service
}

// NewSearchService creates a new search service instance.
func NewSearchService(deps interfaces.Dependencies, provider interfaces.SearchProvider, ranker *ranking.Service) *SearchService {
	return &SearchService{
		deps:     deps,
		provider: provider,
		ranker:   ranker,
	}
}

// validateLocation validates the location query parameter.
func (s *SearchService) validateLocation(location string) error {
	if location == "" {
		return errors.New("location cannot be empty")
	}

	if len(location) < 2 {
		return errors.New("location must be at least 2 characters")
	}

	if len(location) > 100 {
		return errors.New("location cannot exceed 100 characters")
	}

	return nil
}

// SearchLocation returns ranked source candidates for a location. Query
// variants run sequentially against the provider; a variant that fails is
// logged and skipped, so partial provider outages degrade to fewer hits
// rather than an error. Results are unique by URL: the first occurrence
// fixes the position, the last occurrence supplies the data.
func (s *SearchService) SearchLocation(ctx context.Context, location string, maxResults int) ([]domain.SearchHit, error) {
	if err := s.validateLocation(location); err != nil {
		return nil, err
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	cacheKey := fmt.Sprintf("search:location:%s:%d", location, maxResults)
	if s.deps.Cache != nil {
		data, err := s.deps.Cache.Get(ctx, cacheKey)
		if err == nil && data != nil {
			var hits []domain.SearchHit
			if err := json.Unmarshal(data, &hits); err == nil {
				return hits, nil
			}
		}
	}

	if s.provider == nil {
		return nil, errors.New("search provider not configured")
	}

	var order []string
	byURL := make(map[string]domain.SearchHit)

	for _, variant := range queryVariants {
		query := location + " " + variant
		hits, err := s.provider.Search(ctx, query, maxResults)
		if err != nil {
			s.deps.Logger.Warn("Search query variant failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
			continue
		}

		for _, hit := range hits {
			if hit.URL == "" {
				continue
			}
			if _, seen := byURL[hit.URL]; !seen {
				order = append(order, hit.URL)
			}
			byURL[hit.URL] = hit
		}
	}

	combined := make([]domain.SearchHit, 0, len(order))
	for _, url := range order {
		combined = append(combined, byURL[url])
	}

	ranked := s.ranker.RankSearchResults(combined, location)
	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	if s.deps.Cache != nil && len(ranked) > 0 {
		if data, err := json.Marshal(ranked); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, searchCacheTTL)
		}
	}

	return ranked, nil
}

// TopSources returns the URLs of the best-ranked hits, at most maxSources.
func TopSources(hits []domain.SearchHit, maxSources int) []string {
	if maxSources > len(hits) {
		maxSources = len(hits)
	}
	urls := make([]string, 0, maxSources)
	for _, hit := range hits[:maxSources] {
		urls = append(urls, hit.URL)
	}
	return urls
}
