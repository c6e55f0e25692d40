// ABOUTME: Image relevance scorer computes a heuristic quality score from metadata
// ABOUTME: A floor under the classifier's relevance score, never negative

package images

import (
	"strings"

	"brochure-app-api/core/domain"
)

// Filename fragments that mark page furniture rather than content images.
var furnitureFragments = []string{"banner", "logo", "icon", "button"}

// Pixel-area bounds outside which an image is penalized as a thumbnail or
// an oversized asset (roughly below 100x100 or above 2000x2000).
const (
	minUsefulArea = 10_000
	maxUsefulArea = 4_000_000
)

// RelevanceScore computes the local heuristic relevance of an image from
// its metadata and the surrounding document text. Terms are additive and
// the result is clamped at zero:
//
//   - alt text present:                +2
//   - alt text appears in document:    +3
//   - filename free of page furniture: +1
//   - area outside useful bounds:      -2
//
// This score is independent of, and a fallback floor for, the classifier's
// relevance score.
func RelevanceScore(img domain.ImageRecord, documentText string) float64 {
	var score float64

	if img.Alt != "" {
		score += 2
		if strings.Contains(strings.ToLower(documentText), strings.ToLower(img.Alt)) {
			score += 3
		}
	}

	if !isFurnitureFilename(img.URL) {
		score++
	}

	if area := img.Area(); area > 0 && (area < minUsefulArea || area > maxUsefulArea) {
		score -= 2
	}

	if score < 0 {
		return 0
	}
	return score
}

// isFurnitureFilename reports whether the last path segment of the URL
// contains a furniture marker like "logo" or "banner".
func isFurnitureFilename(url string) bool {
	filename := url
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		filename = url[idx+1:]
	}
	filename = strings.ToLower(filename)

	for _, fragment := range furnitureFragments {
		if strings.Contains(filename, fragment) {
			return true
		}
	}
	return false
}

// CompositeScore is the gallery-grade score combining resolution, quality
// and color statistics. Scenic shots get a flat bonus.
func CompositeScore(img domain.ImageRecord) float64 {
	score := float64(img.Area())
	score += img.Quality * 100
	score += img.Colorfulness * 100
	score += img.Prominence * 100
	if img.Scenic {
		score += 20
	}
	return score
}
