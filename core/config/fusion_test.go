package config

import "testing"

func TestDefaultFusionConfig_Categories(t *testing.T) {
	cfg := DefaultFusionConfig()

	want := []string{"overview", "history", "attractions", "culture", "practical"}
	if len(cfg.Categories) != len(want) {
		t.Fatalf("Categories has %d entries, want %d", len(cfg.Categories), len(want))
	}
	for i, name := range want {
		if cfg.Categories[i].Name != name {
			t.Errorf("Categories[%d].Name = %q, want %q", i, cfg.Categories[i].Name, name)
		}
		if len(cfg.Categories[i].Keywords) == 0 {
			t.Errorf("category %q has no keywords", name)
		}
	}
}

func TestDefaultFusionConfig_Caps(t *testing.T) {
	cfg := DefaultFusionConfig()

	if cfg.Caps.Hero != 3 {
		t.Errorf("Caps.Hero = %d, want 3", cfg.Caps.Hero)
	}
	if cfg.Caps.Attractions != 20 {
		t.Errorf("Caps.Attractions = %d, want 20", cfg.Caps.Attractions)
	}
	if cfg.Caps.Activities != 15 {
		t.Errorf("Caps.Activities = %d, want 15", cfg.Caps.Activities)
	}
	if cfg.Caps.General != 30 {
		t.Errorf("Caps.General = %d, want 30", cfg.Caps.General)
	}
}

func TestKeywords_UnitWeight(t *testing.T) {
	kws := Keywords("temple", "shrine")

	if len(kws) != 2 {
		t.Fatalf("Keywords returned %d entries, want 2", len(kws))
	}
	for _, kw := range kws {
		if kw.Weight != 1 {
			t.Errorf("Keyword %q weight = %v, want 1", kw.Term, kw.Weight)
		}
	}
}

func TestNewFusionConfig_Options(t *testing.T) {
	synthetic := []Category{
		{Name: "wildlife", Keywords: Keywords("bird", "whale")},
	}

	cfg := NewFusionConfig(
		WithCategories(synthetic),
		WithSimilarityThreshold(0.5),
		WithBucketCaps(BucketCaps{Hero: 1, Attractions: 2, Activities: 3, General: 4}),
		WithMinParagraphLength(10),
		WithConfidenceThreshold(0.9),
	)

	if len(cfg.Categories) != 1 || cfg.Categories[0].Name != "wildlife" {
		t.Error("WithCategories should replace the category set")
	}
	if cfg.SimilarityThreshold != 0.5 {
		t.Errorf("SimilarityThreshold = %v, want 0.5", cfg.SimilarityThreshold)
	}
	if cfg.Caps.Hero != 1 || cfg.Caps.General != 4 {
		t.Error("WithBucketCaps should replace the caps")
	}
	if cfg.MinParagraphLength != 10 {
		t.Errorf("MinParagraphLength = %d, want 10", cfg.MinParagraphLength)
	}
	if cfg.ConfidenceThreshold != 0.9 {
		t.Errorf("ConfidenceThreshold = %v, want 0.9", cfg.ConfidenceThreshold)
	}
}

func TestNewFusionConfig_NoOptionsMatchesDefault(t *testing.T) {
	cfg := NewFusionConfig()
	def := DefaultFusionConfig()

	if cfg.SimilarityThreshold != def.SimilarityThreshold {
		t.Error("NewFusionConfig() should match DefaultFusionConfig()")
	}
	if cfg.ThumbnailWeights != def.ThumbnailWeights {
		t.Error("ThumbnailWeights should match the default")
	}
}
