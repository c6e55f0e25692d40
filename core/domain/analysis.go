// ABOUTME: Structured output contracts of the content analyzer and image classifier
// ABOUTME: Malformed or missing fields are treated as absent values, never errors

package domain

// AnalyzedContent is the content analyzer's structured view of one document.
// Every field is optional; the merge boundary substitutes absence for
// anything malformed.
type AnalyzedContent struct {
	Overview             string                `json:"overview,omitempty"`
	KeyFeatures          []KeyFeature          `json:"keyFeatures,omitempty"`
	HistoricalContext    string                `json:"historicalContext,omitempty"`
	PracticalInfo        *PracticalInfo        `json:"practicalInfo,omitempty"`
	EnvironmentalContext *EnvironmentalContext `json:"environmentalContext,omitempty"`
	CulturalSignificance string                `json:"culturalSignificance,omitempty"`
	VisitorExperience    *VisitorExperience    `json:"visitorExperience,omitempty"`
}

// KeyFeature is a named point of interest reported by the analyzer.
// Type distinguishes landmarks from activities.
type KeyFeature struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Key feature types emitted by the analyzer.
const (
	FeatureTypeLandmark = "LANDMARK"
	FeatureTypeActivity = "ACTIVITY"
)

// PracticalInfo holds visitor logistics extracted by the analyzer.
type PracticalInfo struct {
	BestTimeToVisit string `json:"bestTimeToVisit,omitempty"`
	Fees            string `json:"fees,omitempty"`
}

// EnvironmentalContext describes the location's physical setting.
type EnvironmentalContext struct {
	Climate string `json:"climate,omitempty"`
}

// VisitorExperience aggregates the analyzer's visitor-facing suggestions.
type VisitorExperience struct {
	SuggestedActivities []string `json:"suggestedActivities,omitempty"`
	Highlights          []string `json:"highlights,omitempty"`
	Tips                []string `json:"tips,omitempty"`
}

// ImageClassification is the image classifier's verdict for one image.
type ImageClassification struct {
	Categories      []CategoryScore `json:"categories"`
	PrimaryCategory string          `json:"primaryCategory"`
	IsHighQuality   bool            `json:"isHighQuality"`
	RelevanceScore  float64         `json:"relevanceScore"`
}

// CategoryScore is a single classifier label with its confidence in [0,1].
type CategoryScore struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// Image categories assigned by the classifier.
const (
	ImageCategoryHero       = "HERO"
	ImageCategoryAttraction = "ATTRACTION"
	ImageCategoryActivity   = "ACTIVITY"
	ImageCategoryCultural   = "CULTURAL"
	ImageCategoryFood       = "FOOD"
	ImageCategoryGeneral    = "GENERAL"
	ImageCategoryScenic     = "SCENIC"
)

// IsValid reports whether the classification carries the required fields.
func (c *ImageClassification) IsValid() bool {
	return c != nil && len(c.Categories) > 0 && c.PrimaryCategory != ""
}
