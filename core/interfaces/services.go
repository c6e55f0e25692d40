// ABOUTME: Service interfaces for the external collaborators of the fusion core
// ABOUTME: Fetcher, search provider, content analyzer, image classifier and color metrics

package interfaces

import (
	"context"

	"brochure-app-api/core/domain"
)

// DocumentFetcher retrieves a web page and extracts its plain-text content,
// title and image metadata. Network policy (timeouts, retries) belongs to the
// implementation, not the fusion core.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, url string) (*domain.ScrapedDocument, error)
}

// SearchProvider executes a text query against a search index and returns
// raw hits. The hits arrive unscored; ranking is the core's job.
type SearchProvider interface {
	Search(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error)
}

// ContentAnalyzer turns a document's text into structured semantic fields.
// Implementations may be LLM-backed or rule-based; the core only merges the
// result and treats missing fields as absent values.
type ContentAnalyzer interface {
	AnalyzeContent(ctx context.Context, location, text string) (*domain.AnalyzedContent, error)
}

// ImageClassifier assigns category labels with confidence scores to an image
// given its metadata and surrounding context. A failed classification leaves
// the image with its pre-classification state.
type ImageClassifier interface {
	ClassifyImage(ctx context.Context, location string, image domain.ImageRecord, locationContext string) (*domain.ImageClassification, error)
}

// ColorMetrics carries the visual statistics extracted from image pixels.
type ColorMetrics struct {
	// Colorfulness is the spread of the dominant colors, in [0,1].
	Colorfulness float64

	// Prominence is the share of the single most dominant color, in [0,1].
	Prominence float64
}

// ImageColorService computes color statistics used by the thumbnail
// composite score.
type ImageColorService interface {
	ExtractMetrics(ctx context.Context, imageURL string) (*ColorMetrics, error)
	ExtractMetricsBatch(ctx context.Context, imageURLs []string) map[string]*ColorMetrics
}

// ThemeSelector picks a brochure color scheme from the location's
// environment signals.
type ThemeSelector interface {
	SelectScheme(location, environmentText string) domain.ColorScheme
}
