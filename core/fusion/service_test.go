package fusion

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"brochure-app-api/core/config"
	"brochure-app-api/core/domain"
)

func newTestService() (*Service, *mockLogger) {
	deps, logger := testDeps()
	return NewService(deps, config.DefaultFusionConfig()), logger
}

func TestFuse_EmptyInput(t *testing.T) {
	svc, _ := newTestService()

	merged := svc.Fuse(nil, "Kyoto")

	if merged.Location != "Kyoto" {
		t.Errorf("Location = %q, want Kyoto", merged.Location)
	}
	if merged.Attractions == nil || merged.Sources == nil || merged.ContentByCategory == nil {
		t.Error("empty fuse should return initialized collections, not nils")
	}
	if len(merged.Sources) != 0 {
		t.Errorf("Sources = %v, want empty", merged.Sources)
	}
}

func TestFuse_SkipsDocumentWithoutURL(t *testing.T) {
	svc, logger := newTestService()

	docs := []domain.ScrapedDocument{
		{MainText: "some text without a source"},
		{URL: "https://a.example", MainText: ""},
	}

	merged := svc.Fuse(docs, "Kyoto")

	if len(merged.Sources) != 1 || merged.Sources[0] != "https://a.example" {
		t.Errorf("Sources = %v, want only the valid document", merged.Sources)
	}
	if len(logger.warnings) == 0 {
		t.Error("skipping a document should log a warning")
	}
}

func TestFuse_AttractionsOrderedByAggregateScore(t *testing.T) {
	svc, _ := newTestService()

	// Tower X is mentioned by three analyzers, Park Y by one.
	tower := domain.KeyFeature{Name: "Tower X", Description: "a tower", Type: domain.FeatureTypeLandmark}
	park := domain.KeyFeature{Name: "Park Y", Description: "a park", Type: domain.FeatureTypeLandmark}

	docs := []domain.ScrapedDocument{
		{URL: "https://a.example", Analyzed: &domain.AnalyzedContent{KeyFeatures: []domain.KeyFeature{park, tower}}},
		{URL: "https://b.example", Analyzed: &domain.AnalyzedContent{KeyFeatures: []domain.KeyFeature{tower}}},
		{URL: "https://c.example", Analyzed: &domain.AnalyzedContent{KeyFeatures: []domain.KeyFeature{tower}}},
	}

	merged := svc.Fuse(docs, "Tokyo")

	if len(merged.Attractions) != 2 {
		t.Fatalf("Attractions = %d, want 2", len(merged.Attractions))
	}
	if merged.Attractions[0].Name != "Tower X" {
		t.Errorf("first attraction = %q, want Tower X (higher aggregate)", merged.Attractions[0].Name)
	}
	if merged.Attractions[0].AggregateScore <= merged.Attractions[1].AggregateScore {
		t.Error("attractions not sorted by aggregate score descending")
	}
}

func TestFuse_CategorizesParagraphs(t *testing.T) {
	svc, _ := newTestService()

	history := "The city's history begins with its founding in an ancient era, " +
		"and historical records from that century describe its origin."

	docs := []domain.ScrapedDocument{
		{URL: "https://a.example", MainText: history},
	}

	merged := svc.Fuse(docs, "Kyoto")

	if _, ok := merged.ContentByCategory["history"]; !ok {
		t.Errorf("ContentByCategory = %v, want a history entry", merged.ContentByCategory)
	}
}

func TestFuse_QuickFactsFirstWins(t *testing.T) {
	svc, _ := newTestService()

	docs := []domain.ScrapedDocument{
		{URL: "https://a.example", Analyzed: &domain.AnalyzedContent{
			PracticalInfo:        &domain.PracticalInfo{BestTimeToVisit: "spring"},
			EnvironmentalContext: &domain.EnvironmentalContext{Climate: "temperate"},
		}},
		{URL: "https://b.example", Analyzed: &domain.AnalyzedContent{
			PracticalInfo:        &domain.PracticalInfo{BestTimeToVisit: "winter", Fees: "free"},
			EnvironmentalContext: &domain.EnvironmentalContext{Climate: "humid"},
		}},
	}

	merged := svc.Fuse(docs, "Kyoto")

	if merged.QuickFacts.BestTime != "spring" {
		t.Errorf("BestTime = %q, want first-seen value", merged.QuickFacts.BestTime)
	}
	if merged.QuickFacts.Climate != "temperate" {
		t.Errorf("Climate = %q, want first-seen value", merged.QuickFacts.Climate)
	}
	if merged.QuickFacts.Fees != "free" {
		t.Errorf("Fees = %q, empty slots should still fill from later documents", merged.QuickFacts.Fees)
	}
}

func TestFuse_HighlightsDedupedAndCapped(t *testing.T) {
	svc, _ := newTestService()

	docs := []domain.ScrapedDocument{
		{URL: "https://a.example", Analyzed: &domain.AnalyzedContent{
			VisitorExperience: &domain.VisitorExperience{
				Highlights: []string{"views", "food", "views", "temples", "gardens", "markets", "museums"},
			},
		}},
	}

	merged := svc.Fuse(docs, "Kyoto")

	if len(merged.Highlights) != 5 {
		t.Fatalf("Highlights = %v, want capped at 5", merged.Highlights)
	}
	seen := map[string]bool{}
	for _, h := range merged.Highlights {
		if seen[h] {
			t.Errorf("duplicate highlight %q survived", h)
		}
		seen[h] = true
	}
}

func TestFuse_DescriptionTruncated(t *testing.T) {
	svc, _ := newTestService()

	long := strings.Repeat("overview text ", 100)
	docs := []domain.ScrapedDocument{
		{URL: "https://a.example", Analyzed: &domain.AnalyzedContent{Overview: long}},
	}

	merged := svc.Fuse(docs, "Kyoto")

	if !strings.HasSuffix(merged.Description, "...") {
		t.Error("truncated description should end with ellipsis")
	}
	if len(merged.Description) > 510 {
		t.Errorf("Description length = %d, want about the configured cap", len(merged.Description))
	}
}

func TestFuse_AnalyzerNarrativeFillsEmptyCategories(t *testing.T) {
	svc, _ := newTestService()

	docs := []domain.ScrapedDocument{
		{URL: "https://a.example", Analyzed: &domain.AnalyzedContent{
			HistoricalContext:    "Founded by monks twelve centuries ago.",
			CulturalSignificance: "Center of the tea ceremony tradition.",
		}},
	}

	merged := svc.Fuse(docs, "Kyoto")

	if merged.ContentByCategory["history"] != "Founded by monks twelve centuries ago." {
		t.Errorf("history fallback = %q", merged.ContentByCategory["history"])
	}
	if merged.ContentByCategory["culture"] != "Center of the tea ceremony tradition." {
		t.Errorf("culture fallback = %q", merged.ContentByCategory["culture"])
	}
}

func TestFuse_ImageGateAndURLDedupe(t *testing.T) {
	svc, _ := newTestService()

	docs := []domain.ScrapedDocument{
		{URL: "https://a.example", Images: []domain.ImageRecord{
			{URL: "https://img.example/tiny.jpg", Width: 100, Height: 100},
			{URL: "https://img.example/shared.jpg", Width: 900, Height: 600, Alt: "first"},
		}},
		{URL: "https://b.example", Images: []domain.ImageRecord{
			{URL: "https://img.example/shared.jpg", Width: 900, Height: 600, Alt: "second"},
		}},
	}

	merged := svc.Fuse(docs, "Kyoto")

	var all []domain.ImageRecord
	all = append(all, merged.Images.Hero...)
	all = append(all, merged.Images.Attractions...)
	all = append(all, merged.Images.Activities...)
	all = append(all, merged.Images.General...)

	if len(all) != 1 {
		t.Fatalf("got %d images, want 1 (tiny gated, shared deduplicated)", len(all))
	}
	if all[0].Alt != "second" {
		t.Errorf("Alt = %q, want last-seen metadata to win", all[0].Alt)
	}
}

func TestFuse_Deterministic(t *testing.T) {
	svc, _ := newTestService()

	docs := []domain.ScrapedDocument{
		{URL: "https://a.example", MainText: "The ancient temple has a long history across many eras.",
			Analyzed: &domain.AnalyzedContent{
				Overview:    "A historic city.",
				KeyFeatures: []domain.KeyFeature{{Name: "Tower X", Type: domain.FeatureTypeLandmark}},
			}},
		{URL: "https://b.example", MainText: "Attractions include a famous landmark monument and a museum."},
	}

	first := svc.Fuse(docs, "Kyoto")
	second := svc.Fuse(docs, "Kyoto")

	if !reflect.DeepEqual(first, second) {
		t.Error("identical input produced different output")
	}
}

func TestFuse_ThemeApplied(t *testing.T) {
	svc, _ := newTestService()
	svc.SetThemeSelector(&mockThemer{scheme: domain.ColorScheme{Name: "coastal"}})

	merged := svc.Fuse([]domain.ScrapedDocument{{URL: "https://a.example"}}, "Okinawa")

	if merged.Theme == nil || merged.Theme.Name != "coastal" {
		t.Errorf("Theme = %+v, want the selector's scheme", merged.Theme)
	}
}

func TestFuse_ActivitiesFromAnalyzer(t *testing.T) {
	svc, _ := newTestService()

	docs := []domain.ScrapedDocument{
		{URL: "https://a.example", Analyzed: &domain.AnalyzedContent{
			KeyFeatures: []domain.KeyFeature{
				{Name: "River Cruise", Type: domain.FeatureTypeActivity},
			},
			VisitorExperience: &domain.VisitorExperience{
				SuggestedActivities: []string{"river cruise", "Night Market Tour"},
			},
		}},
	}

	merged := svc.Fuse(docs, "Bangkok")

	if len(merged.Activities) != 2 {
		t.Fatalf("Activities = %+v, want 2 (case-insensitive dedupe)", merged.Activities)
	}
	if merged.Activities[0].Name != "River Cruise" {
		t.Errorf("first activity = %q, want first-seen entry", merged.Activities[0].Name)
	}
}

func TestFuseFromURLs_NoFetcher(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.FuseFromURLs(context.Background(), []string{"https://a.example"}, "Kyoto")

	if err == nil {
		t.Error("expected error without a fetcher")
	}
}

func TestFuseFromURLs_FailedFetchDegrades(t *testing.T) {
	svc, _ := newTestService()
	svc.SetFetcher(&mockFetcher{
		fetchFunc: func(ctx context.Context, url string) (*domain.ScrapedDocument, error) {
			if url == "https://bad.example" {
				return nil, errors.New("connection refused")
			}
			return &domain.ScrapedDocument{URL: url}, nil
		},
	})

	merged, err := svc.FuseFromURLs(context.Background(),
		[]string{"https://bad.example", "https://good.example"}, "Kyoto")

	if err != nil {
		t.Fatalf("FuseFromURLs error = %v", err)
	}
	if len(merged.Sources) != 1 || merged.Sources[0] != "https://good.example" {
		t.Errorf("Sources = %v, want only the fetchable page", merged.Sources)
	}
}

func TestFuseFromURLs_MergesInInputOrder(t *testing.T) {
	svc, _ := newTestService()
	svc.SetFetcher(&mockFetcher{})

	urls := []string{"https://c.example", "https://a.example", "https://b.example"}
	merged, err := svc.FuseFromURLs(context.Background(), urls, "Kyoto")

	if err != nil {
		t.Fatalf("FuseFromURLs error = %v", err)
	}
	if !reflect.DeepEqual(merged.Sources, urls) {
		t.Errorf("Sources = %v, want input order %v", merged.Sources, urls)
	}
}

func TestFuseFromURLs_ClassifierEnrichment(t *testing.T) {
	svc, _ := newTestService()
	svc.SetFetcher(&mockFetcher{
		fetchFunc: func(ctx context.Context, url string) (*domain.ScrapedDocument, error) {
			return &domain.ScrapedDocument{
				URL: url,
				Images: []domain.ImageRecord{
					{URL: "https://img.example/pano.jpg", Width: 1600, Height: 900, Quality: 0.5},
				},
			}, nil
		},
	})
	svc.SetClassifier(&mockClassifier{
		classifyFunc: func(ctx context.Context, location string, image domain.ImageRecord, locationContext string) (*domain.ImageClassification, error) {
			return &domain.ImageClassification{
				Categories:      []domain.CategoryScore{{Type: domain.ImageCategoryHero, Confidence: 0.9}},
				PrimaryCategory: domain.ImageCategoryHero,
				IsHighQuality:   true,
				RelevanceScore:  0.8,
			}, nil
		},
	})

	merged, err := svc.FuseFromURLs(context.Background(), []string{"https://a.example"}, "Kyoto")

	if err != nil {
		t.Fatalf("FuseFromURLs error = %v", err)
	}
	if len(merged.Images.Hero) != 1 {
		t.Fatalf("Hero = %+v, want the classified panorama", merged.Images.Hero)
	}
	if merged.Images.Hero[0].Quality != 0.8 {
		t.Errorf("Quality = %v, want raised to the classifier's relevance score", merged.Images.Hero[0].Quality)
	}
}
