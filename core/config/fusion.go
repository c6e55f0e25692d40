// ABOUTME: Fusion configuration for categories, thresholds, caps and selector profiles
// ABOUTME: Everything the fusion heuristics tune on lives here, not in embedded constants

package config

// Keyword is a single weighted categorization keyword. Weight defaults to 1
// when built through Keywords.
type Keyword struct {
	Term   string
	Weight float64
}

// Keywords builds a unit-weight keyword list from plain terms.
func Keywords(terms ...string) []Keyword {
	kws := make([]Keyword, 0, len(terms))
	for _, t := range terms {
		kws = append(kws, Keyword{Term: t, Weight: 1})
	}
	return kws
}

// Category is one semantic content category. Order within FusionConfig
// matters: it is the tie-break order for categorization and the stable
// iteration order everywhere categories are walked.
type Category struct {
	Name     string
	Keywords []Keyword
}

// BucketCaps limits how many images each output bucket may hold.
type BucketCaps struct {
	Hero        int
	Attractions int
	Activities  int
	General     int
}

// SelectorProfile filters candidates before diverse selection.
type SelectorProfile struct {
	// MinQuality is the minimum effective quality in [0,1]
	MinQuality float64

	// MinWidth is the minimum pixel width; 0 disables the check
	MinWidth int
}

// CompositeWeights weights the thumbnail composite score terms.
type CompositeWeights struct {
	Quality      float64
	Prominence   float64
	Colorfulness float64
	Scenic       float64
}

// FusionConfig carries every tunable of the fusion engine. Construct it
// with DefaultFusionConfig and functional options; components receive it at
// construction and never mutate it.
type FusionConfig struct {
	// Categories are the semantic categories in tie-break order
	Categories []Category

	// MinParagraphLength drops shorter paragraphs before categorization
	MinParagraphLength int

	// SimilarityThreshold is the Jaccard score at or above which two
	// paragraphs count as duplicates
	SimilarityThreshold float64

	// Caps bounds the image buckets
	Caps BucketCaps

	// MinImageDimension drops images with a known side below it
	MinImageDimension int

	// ConfidenceThreshold gates classifier categories for bucketing
	ConfidenceThreshold float64

	// Hero bucket admission rules
	HeroMinWidth   int
	HeroMinAspect  float64
	HeroMinQuality float64

	// Gallery and Thumbnail are the specialized selector profiles
	Gallery   SelectorProfile
	Thumbnail SelectorProfile

	// ThumbnailWeights weights the thumbnail composite score
	ThumbnailWeights CompositeWeights

	// Analyzer-fed list caps
	MaxAttractions int
	MaxActivities  int
	MaxHighlights  int
	MaxTips        int

	// MaxDescriptionLength truncates the merged description
	MaxDescriptionLength int
}

// DefaultFusionConfig returns the stock configuration used in production.
func DefaultFusionConfig() FusionConfig {
	return FusionConfig{
		Categories: []Category{
			{Name: "overview", Keywords: Keywords("overview", "about", "introduction", "summary", "description")},
			{Name: "history", Keywords: Keywords("history", "historical", "ancient", "founded", "established", "origin", "past", "century", "era")},
			{Name: "attractions", Keywords: Keywords("attraction", "sight", "landmark", "monument", "museum", "park", "garden", "temple", "shrine", "palace", "castle")},
			{Name: "culture", Keywords: Keywords("culture", "tradition", "custom", "festival", "celebration", "art", "music", "food", "cuisine", "local")},
			{Name: "practical", Keywords: Keywords("transport", "accommodation", "hotel", "restaurant", "shopping", "price", "cost", "ticket", "schedule", "hour", "open")},
		},
		MinParagraphLength:  50,
		SimilarityThreshold: 0.7,
		Caps: BucketCaps{
			Hero:        3,
			Attractions: 20,
			Activities:  15,
			General:     30,
		},
		MinImageDimension:   300,
		ConfidenceThreshold: 0.6,
		HeroMinWidth:        1200,
		HeroMinAspect:       1.5,
		HeroMinQuality:      0.7,
		Gallery: SelectorProfile{
			MinQuality: 0.6,
			MinWidth:   800,
		},
		Thumbnail: SelectorProfile{
			MinQuality: 0.5,
			MinWidth:   400,
		},
		ThumbnailWeights: CompositeWeights{
			Quality:      0.4,
			Prominence:   0.3,
			Colorfulness: 0.2,
			Scenic:       0.1,
		},
		MaxAttractions:       10,
		MaxActivities:        8,
		MaxHighlights:        5,
		MaxTips:              5,
		MaxDescriptionLength: 500,
	}
}

// FusionOption is a functional option for building a FusionConfig.
type FusionOption func(*FusionConfig)

// WithCategories replaces the category set. Order defines tie-breaking.
func WithCategories(categories []Category) FusionOption {
	return func(c *FusionConfig) {
		c.Categories = categories
	}
}

// WithSimilarityThreshold sets the paragraph deduplication threshold.
func WithSimilarityThreshold(threshold float64) FusionOption {
	return func(c *FusionConfig) {
		c.SimilarityThreshold = threshold
	}
}

// WithBucketCaps replaces the per-bucket image limits.
func WithBucketCaps(caps BucketCaps) FusionOption {
	return func(c *FusionConfig) {
		c.Caps = caps
	}
}

// WithMinParagraphLength sets the minimum paragraph length.
func WithMinParagraphLength(n int) FusionOption {
	return func(c *FusionConfig) {
		c.MinParagraphLength = n
	}
}

// WithConfidenceThreshold sets the classifier confidence gate.
func WithConfidenceThreshold(threshold float64) FusionOption {
	return func(c *FusionConfig) {
		c.ConfidenceThreshold = threshold
	}
}

// NewFusionConfig builds a FusionConfig from the defaults and options.
func NewFusionConfig(opts ...FusionOption) FusionConfig {
	cfg := DefaultFusionConfig()

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
