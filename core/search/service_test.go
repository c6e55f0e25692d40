package search

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"brochure-app-api/core/domain"
	"brochure-app-api/core/ranking"
)

func newTestService(provider *mockProvider, cache *mockCache) *SearchService {
	deps, _ := testDeps(nil)
	if cache != nil {
		deps.Cache = cache
	}
	return NewSearchService(deps, provider, ranking.NewService(deps))
}

func TestSearchLocation_ValidatesLocation(t *testing.T) {
	svc := newTestService(&mockProvider{}, nil)

	cases := []string{"", "x", strings.Repeat("a", 101)}
	for _, location := range cases {
		if _, err := svc.SearchLocation(context.Background(), location, 10); err == nil {
			t.Errorf("SearchLocation(%q) expected error", location)
		}
	}
}

func TestSearchLocation_NoProvider(t *testing.T) {
	svc := newTestService(nil, nil)
	svc.provider = nil

	if _, err := svc.SearchLocation(context.Background(), "Kyoto", 10); err == nil {
		t.Error("expected error without a provider")
	}
}

func TestSearchLocation_RunsAllQueryVariants(t *testing.T) {
	provider := &mockProvider{}
	svc := newTestService(provider, nil)

	_, err := svc.SearchLocation(context.Background(), "Kyoto", 10)
	if err != nil {
		t.Fatalf("SearchLocation error = %v", err)
	}

	if len(provider.queries) != len(queryVariants) {
		t.Fatalf("provider received %d queries, want %d", len(provider.queries), len(queryVariants))
	}
	for _, q := range provider.queries {
		if !strings.HasPrefix(q, "Kyoto ") {
			t.Errorf("query %q does not embed the location", q)
		}
	}
}

func TestSearchLocation_DeduplicatesByURL(t *testing.T) {
	calls := 0
	provider := &mockProvider{
		searchFunc: func(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error) {
			calls++
			switch calls {
			case 1:
				return []domain.SearchHit{
					{URL: "https://dup.example", Title: "first title"},
					{URL: "https://only.example", Title: "unique"},
				}, nil
			case 2:
				return []domain.SearchHit{
					{URL: "https://dup.example", Title: "second title"},
				}, nil
			default:
				return nil, nil
			}
		},
	}
	svc := newTestService(provider, nil)

	hits, err := svc.SearchLocation(context.Background(), "Kyoto", 10)
	if err != nil {
		t.Fatalf("SearchLocation error = %v", err)
	}

	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	for _, hit := range hits {
		if hit.URL == "https://dup.example" && hit.Title != "second title" {
			t.Errorf("duplicate URL kept %q, want the last occurrence's data", hit.Title)
		}
	}
}

func TestSearchLocation_SkipsEmptyURLs(t *testing.T) {
	provider := &mockProvider{
		searchFunc: func(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error) {
			return []domain.SearchHit{{Title: "no url"}, {URL: "https://a.example"}}, nil
		},
	}
	svc := newTestService(provider, nil)

	hits, _ := svc.SearchLocation(context.Background(), "Kyoto", 10)

	if len(hits) != 1 {
		t.Errorf("got %d hits, want the empty-URL hit dropped", len(hits))
	}
}

func TestSearchLocation_VariantFailureTolerated(t *testing.T) {
	calls := 0
	provider := &mockProvider{
		searchFunc: func(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("provider timeout")
			}
			return []domain.SearchHit{{URL: "https://a.example"}}, nil
		},
	}
	cache := newMockCache()
	deps, logger := testDeps(cache)
	svc := NewSearchService(deps, provider, ranking.NewService(deps))

	hits, err := svc.SearchLocation(context.Background(), "Kyoto", 10)
	if err != nil {
		t.Fatalf("SearchLocation error = %v, want degraded success", err)
	}
	if len(hits) != 1 {
		t.Errorf("got %d hits, want results from surviving variants", len(hits))
	}
	if len(logger.warnings) == 0 {
		t.Error("failed variant should log a warning")
	}
}

func TestSearchLocation_CacheHitSkipsProvider(t *testing.T) {
	cached := []domain.SearchHit{{URL: "https://cached.example", RelevanceScore: 9}}
	data, _ := json.Marshal(cached)

	cache := newMockCache()
	cache.data["search:location:Kyoto:10"] = data

	provider := &mockProvider{}
	deps, _ := testDeps(cache)
	svc := NewSearchService(deps, provider, ranking.NewService(deps))

	hits, err := svc.SearchLocation(context.Background(), "Kyoto", 10)
	if err != nil {
		t.Fatalf("SearchLocation error = %v", err)
	}
	if len(hits) != 1 || hits[0].URL != "https://cached.example" {
		t.Errorf("hits = %+v, want the cached result", hits)
	}
	if len(provider.queries) != 0 {
		t.Error("cache hit should not call the provider")
	}
}

func TestSearchLocation_CachesRankedResults(t *testing.T) {
	provider := &mockProvider{
		searchFunc: func(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error) {
			return []domain.SearchHit{{URL: "https://a.example"}}, nil
		},
	}
	cache := newMockCache()
	deps, _ := testDeps(cache)
	svc := NewSearchService(deps, provider, ranking.NewService(deps))

	_, err := svc.SearchLocation(context.Background(), "Kyoto", 10)
	if err != nil {
		t.Fatalf("SearchLocation error = %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}
}

func TestSearchLocation_TruncatesToMaxResults(t *testing.T) {
	provider := &mockProvider{
		searchFunc: func(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error) {
			var hits []domain.SearchHit
			for i := 0; i < 10; i++ {
				hits = append(hits, domain.SearchHit{URL: "https://e.example/" + query + string(rune('a'+i))})
			}
			return hits, nil
		},
	}
	svc := newTestService(provider, nil)

	hits, err := svc.SearchLocation(context.Background(), "Kyoto", 5)
	if err != nil {
		t.Fatalf("SearchLocation error = %v", err)
	}
	if len(hits) != 5 {
		t.Errorf("got %d hits, want truncated to 5", len(hits))
	}
}

func TestTopSources(t *testing.T) {
	hits := []domain.SearchHit{
		{URL: "https://a.example"},
		{URL: "https://b.example"},
		{URL: "https://c.example"},
	}

	urls := TopSources(hits, 2)
	if len(urls) != 2 || urls[0] != "https://a.example" || urls[1] != "https://b.example" {
		t.Errorf("TopSources = %v", urls)
	}

	if urls := TopSources(hits, 10); len(urls) != 3 {
		t.Errorf("TopSources beyond length = %v, want all", urls)
	}

	if urls := TopSources(nil, 3); len(urls) != 0 {
		t.Errorf("TopSources(nil) = %v, want empty", urls)
	}
}
