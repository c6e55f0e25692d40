// ABOUTME: Sorts classified images into the brochure's hero/attraction/activity/general buckets
// ABOUTME: Applies confidence gates, hero admission rules and per-bucket diverse selection

package images

import (
	"brochure-app-api/core/config"
	"brochure-app-api/core/domain"
)

// Bucketer distributes classified images into the output buckets.
type Bucketer struct {
	cfg config.FusionConfig
}

// NewBucketer creates a bucketer for the given configuration.
func NewBucketer(cfg config.FusionConfig) *Bucketer {
	return &Bucketer{cfg: cfg}
}

// BucketImages distributes images into the hero, attraction, activity and
// general buckets, then trims each bucket with diverse selection under the
// configured caps.
//
// An image may land in more than one bucket when several of its category
// confidences clear the gate; within a bucket each URL appears once.
// Cultural and food shots have no dedicated page section and flow into the
// general bucket. When classification produced no hero at all, the hero
// bucket falls back to wide, high-quality shots regardless of category.
func (b *Bucketer) BucketImages(imgs []domain.ImageRecord) domain.ImageBuckets {
	var hero, attractions, activities, general []domain.ImageRecord

	heroSeen := make(map[string]bool)
	attractionSeen := make(map[string]bool)
	activitySeen := make(map[string]bool)
	generalSeen := make(map[string]bool)

	for _, img := range imgs {
		placed := false

		if b.isHero(img) && !heroSeen[img.URL] {
			hero = append(hero, img)
			heroSeen[img.URL] = true
			placed = true
		}

		for _, cs := range img.Categories {
			if cs.Confidence <= b.cfg.ConfidenceThreshold {
				continue
			}
			switch cs.Type {
			case domain.ImageCategoryAttraction:
				if !attractionSeen[img.URL] {
					attractions = append(attractions, img)
					attractionSeen[img.URL] = true
				}
				placed = true
			case domain.ImageCategoryActivity:
				if !activitySeen[img.URL] {
					activities = append(activities, img)
					activitySeen[img.URL] = true
				}
				placed = true
			case domain.ImageCategoryCultural, domain.ImageCategoryFood:
				if !generalSeen[img.URL] {
					general = append(general, img)
					generalSeen[img.URL] = true
				}
				placed = true
			}
		}

		if !placed && !generalSeen[img.URL] {
			general = append(general, img)
			generalSeen[img.URL] = true
		}
	}

	if len(hero) == 0 {
		hero = b.heroFallback(imgs)
	}

	return domain.ImageBuckets{
		Hero:        SelectDiverse(hero, b.cfg.Caps.Hero, ByLocalScore),
		Attractions: SelectDiverse(attractions, b.cfg.Caps.Attractions, ByLocalScore),
		Activities:  SelectDiverse(activities, b.cfg.Caps.Activities, ByLocalScore),
		General:     SelectDiverse(general, b.cfg.Caps.General, ByLocalScore),
	}
}

// isHero applies the hero admission rules: the classifier must have named
// the image a hero and flagged it high quality, and when dimensions are
// known the image must be wide enough and panoramic enough for a banner.
// Unknown dimensions pass; the layout can still crop a tall hero, while a
// known-small one would render blurry.
func (b *Bucketer) isHero(img domain.ImageRecord) bool {
	if img.PrimaryCategory != domain.ImageCategoryHero || !img.IsHighQuality {
		return false
	}
	if img.Width > 0 && img.Width < b.cfg.HeroMinWidth {
		return false
	}
	if ratio := img.AspectRatio(); ratio > 0 && ratio < b.cfg.HeroMinAspect {
		return false
	}
	return true
}

// heroFallback picks banner candidates on raw metadata when the classifier
// found no hero: panoramic, wide and high quality. Unknown dimensions do
// not qualify here; without a classifier vote the metadata must carry the
// whole decision.
func (b *Bucketer) heroFallback(imgs []domain.ImageRecord) []domain.ImageRecord {
	var candidates []domain.ImageRecord
	seen := make(map[string]bool)

	for _, img := range imgs {
		if seen[img.URL] {
			continue
		}
		if img.AspectRatio() < b.cfg.HeroMinAspect {
			continue
		}
		if img.Width < b.cfg.HeroMinWidth {
			continue
		}
		if img.Quality < b.cfg.HeroMinQuality {
			continue
		}
		candidates = append(candidates, img)
		seen[img.URL] = true
	}

	return candidates
}
