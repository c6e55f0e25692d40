// ABOUTME: Content categorizer assigns paragraphs to semantic categories
// ABOUTME: Uses length-normalized weighted keyword density over a configured category set

package fusion

import (
	"math"
	"strings"

	"brochure-app-api/core/config"
)

// Categorizer assigns paragraphs of scraped text to the best-matching
// semantic category. The category set comes from configuration; order in
// the slice is the tie-break order.
type Categorizer struct {
	categories []config.Category
}

// NewCategorizer creates a categorizer over the given category set.
func NewCategorizer(categories []config.Category) *Categorizer {
	return &Categorizer{categories: categories}
}

// Categorize returns the best category for the paragraph and its score.
// A paragraph that scores 0 under every category is noise and returns an
// empty category; it is dropped, not filed under a fallback bucket.
func (c *Categorizer) Categorize(text string) (string, float64) {
	bestCategory := ""
	bestScore := 0.0

	for _, category := range c.categories {
		score := c.score(text, category)
		// Strict > keeps the first configured category on ties.
		if score > bestScore {
			bestCategory = category.Name
			bestScore = score
		}
	}

	if bestScore == 0 {
		return "", 0
	}
	return bestCategory, bestScore
}

// Score returns the paragraph's score under one named category, 0 when the
// category is not configured.
func (c *Categorizer) Score(text, categoryName string) float64 {
	for _, category := range c.categories {
		if category.Name == categoryName {
			return c.score(text, category)
		}
	}
	return 0
}

// score computes weighted keyword hits normalized by sqrt of the text
// length, so long paragraphs can't win on volume alone.
func (c *Categorizer) score(text string, category config.Category) float64 {
	if len(text) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	var hits float64
	for _, kw := range category.Keywords {
		count := strings.Count(lower, strings.ToLower(kw.Term))
		hits += float64(count) * kw.Weight
	}

	return hits / math.Sqrt(float64(len(text)))
}
