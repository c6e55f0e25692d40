// ABOUTME: Diversity-constrained image selection under per-category fairness
// ABOUTME: Round 1 guarantees category coverage, round 2 fills remaining slots by score

package images

import (
	"sort"

	"brochure-app-api/core/config"
	"brochure-app-api/core/domain"
)

// ScoreFunc ranks images during selection.
type ScoreFunc func(domain.ImageRecord) float64

// ByQuality ranks images by their effective quality.
func ByQuality(img domain.ImageRecord) float64 { return img.Quality }

// ByLocalScore ranks images by the local heuristic relevance score.
func ByLocalScore(img domain.ImageRecord) float64 { return img.LocalScore }

// ThumbnailScore builds the weighted composite used for thumbnail
// selection from the configured weights.
func ThumbnailScore(weights config.CompositeWeights) ScoreFunc {
	return func(img domain.ImageRecord) float64 {
		score := img.Quality*weights.Quality +
			img.Prominence*weights.Prominence +
			img.Colorfulness*weights.Colorfulness
		if img.Scenic {
			score += weights.Scenic
		}
		return score * 100
	}
}

// SelectDiverse picks at most targetCount images, guaranteeing that every
// represented category contributes at least one image before remaining
// slots are filled by pure score. A plain top-K sort would let one
// prolific, high-scoring category crowd out all others.
//
// Round 1 walks the categories in first-seen input order and moves each
// category's best remaining image into the result. Round 2 repeatedly
// takes the best image across all remaining groups. The output never
// repeats an image and is deterministic for identical input.
func SelectDiverse(imgs []domain.ImageRecord, targetCount int, score ScoreFunc) []domain.ImageRecord {
	if targetCount <= 0 || len(imgs) == 0 {
		return []domain.ImageRecord{}
	}
	if score == nil {
		score = ByQuality
	}

	// Group by category, preserving first-seen category order. An empty
	// category is its own bucket.
	groups := make(map[string][]domain.ImageRecord)
	categoryOrder := make([]string, 0)
	for _, img := range imgs {
		if _, seen := groups[img.PrimaryCategory]; !seen {
			categoryOrder = append(categoryOrder, img.PrimaryCategory)
		}
		groups[img.PrimaryCategory] = append(groups[img.PrimaryCategory], img)
	}

	// Sort each group best-first so the group head is always its best
	// remaining image. Stable keeps input order on score ties.
	for _, category := range categoryOrder {
		group := groups[category]
		sort.SliceStable(group, func(i, j int) bool {
			return score(group[i]) > score(group[j])
		})
		groups[category] = group
	}

	selected := make([]domain.ImageRecord, 0, targetCount)

	// Round 1: one image per represented category.
	for _, category := range categoryOrder {
		if len(selected) >= targetCount {
			break
		}
		group := groups[category]
		if len(group) == 0 {
			continue
		}
		selected = append(selected, group[0])
		groups[category] = group[1:]
	}

	// Round 2: best of the remainder, across all groups.
	for len(selected) < targetCount {
		bestCategory := ""
		bestScore := -1.0
		found := false

		for _, category := range categoryOrder {
			group := groups[category]
			if len(group) == 0 {
				continue
			}
			if head := score(group[0]); !found || head > bestScore {
				bestCategory = category
				bestScore = head
				found = true
			}
		}

		if !found {
			break
		}
		selected = append(selected, groups[bestCategory][0])
		groups[bestCategory] = groups[bestCategory][1:]
	}

	return selected
}

// SelectGallery picks a diverse gallery set: good quality, wide enough for
// a layout slot, ranked by the composite score.
func SelectGallery(imgs []domain.ImageRecord, targetCount int, profile config.SelectorProfile) []domain.ImageRecord {
	return SelectDiverse(filterByProfile(imgs, profile), targetCount, CompositeScore)
}

// SelectThumbnails picks a diverse thumbnail set using the weighted
// quality/prominence/colorfulness/scenic composite.
func SelectThumbnails(imgs []domain.ImageRecord, targetCount int, profile config.SelectorProfile, weights config.CompositeWeights) []domain.ImageRecord {
	return SelectDiverse(filterByProfile(imgs, profile), targetCount, ThumbnailScore(weights))
}

// filterByProfile drops images below the profile's quality and width floors.
func filterByProfile(imgs []domain.ImageRecord, profile config.SelectorProfile) []domain.ImageRecord {
	filtered := make([]domain.ImageRecord, 0, len(imgs))
	for _, img := range imgs {
		if img.Quality < profile.MinQuality {
			continue
		}
		if profile.MinWidth > 0 && img.Width > 0 && img.Width < profile.MinWidth {
			continue
		}
		filtered = append(filtered, img)
	}
	return filtered
}
