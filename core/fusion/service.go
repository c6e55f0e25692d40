// ABOUTME: Fusion orchestrator merges scraped documents into one location aggregate
// ABOUTME: Categorizes text, merges attractions and analyzer output, buckets images

package fusion

import (
	"context"
	"fmt"
	"strings"

	"brochure-app-api/core/config"
	"brochure-app-api/core/domain"
	"brochure-app-api/core/images"
	"brochure-app-api/core/interfaces"
)

// maxConcurrentFetches bounds parallel page fetches in FuseFromURLs.
const maxConcurrentFetches = 3

// analyzerFeatureScore is the merge score credited to an attraction mention
// that came from the analyzer rather than paragraph categorization.
const analyzerFeatureScore = 1.0

// Service fuses scraped documents about one location into a single
// MergedLocationData aggregate. The merge itself is deterministic and
// side-effect free; external collaborators only run in FuseFromURLs, and
// every one of them is optional.
type Service struct {
	deps interfaces.Dependencies
	cfg  config.FusionConfig

	categorizer *Categorizer
	extractor   NameExtractor
	bucketer    *images.Bucketer

	fetcher      interfaces.DocumentFetcher
	analyzer     interfaces.ContentAnalyzer
	classifier   interfaces.ImageClassifier
	colorService interfaces.ImageColorService
	themer       interfaces.ThemeSelector
}

// NewService creates a fusion service with the given configuration.
func NewService(deps interfaces.Dependencies, cfg config.FusionConfig) *Service {
	return &Service{
		deps:        deps,
		cfg:         cfg,
		categorizer: NewCategorizer(cfg.Categories),
		extractor:   FirstPhraseExtractor{},
		bucketer:    images.NewBucketer(cfg),
	}
}

// SetFetcher wires the document fetcher used by FuseFromURLs.
func (s *Service) SetFetcher(fetcher interfaces.DocumentFetcher) {
	s.fetcher = fetcher
}

// SetAnalyzer wires the content analyzer. Without one, documents are fused
// from their scraped text alone.
func (s *Service) SetAnalyzer(analyzer interfaces.ContentAnalyzer) {
	s.analyzer = analyzer
}

// SetClassifier wires the image classifier.
func (s *Service) SetClassifier(classifier interfaces.ImageClassifier) {
	s.classifier = classifier
}

// SetColorService wires the color metrics extractor.
func (s *Service) SetColorService(colorService interfaces.ImageColorService) {
	s.colorService = colorService
}

// SetThemeSelector wires the brochure theme selector.
func (s *Service) SetThemeSelector(themer interfaces.ThemeSelector) {
	s.themer = themer
}

// mergeState accumulates intermediate results while documents are folded in
// one at a time.
type mergeState struct {
	paragraphsByCategory map[string][]domain.ContentParagraph
	attractionFeatures   []AttractionFeature
	overviews            []string
	historical           []string
	cultural             []string
	activities           []domain.Activity
	activitySeen         map[string]bool
	highlights           []string
	tips                 []string
	quickFacts           domain.QuickFacts

	imagesByURL []domain.ImageRecord
	imageIndex  map[string]int

	sources    []string
	sourceSeen map[string]bool
}

func newMergeState() *mergeState {
	return &mergeState{
		paragraphsByCategory: make(map[string][]domain.ContentParagraph),
		activitySeen:         make(map[string]bool),
		imageIndex:           make(map[string]int),
		sourceSeen:           make(map[string]bool),
	}
}

// Fuse merges the given documents into one aggregate for the location.
// Documents are folded in input order, so identical input always produces
// identical output. A document that panics mid-merge is skipped; one bad
// page never takes down the whole brochure.
func (s *Service) Fuse(docs []domain.ScrapedDocument, location string) domain.MergedLocationData {
	if len(docs) == 0 {
		return domain.EmptyMergedLocationData(location)
	}

	state := newMergeState()
	for i := range docs {
		s.mergeDocument(state, &docs[i])
	}

	return s.assemble(state, location)
}

// mergeDocument folds a single document into the merge state, recovering
// from panics so a malformed document is skipped rather than fatal.
func (s *Service) mergeDocument(state *mergeState, doc *domain.ScrapedDocument) {
	defer func() {
		if r := recover(); r != nil {
			s.deps.Logger.Warn("Skipping document after merge panic", map[string]interface{}{
				"url":   doc.URL,
				"error": fmt.Sprintf("%v", r),
			})
		}
	}()

	if doc.URL == "" {
		s.deps.Logger.Warn("Skipping document without a source URL", nil)
		return
	}

	if !state.sourceSeen[doc.URL] {
		state.sources = append(state.sources, doc.URL)
		state.sourceSeen[doc.URL] = true
	}

	s.mergeText(state, doc)
	s.mergeAnalyzed(state, doc.Analyzed)
	s.mergeImages(state, doc)
}

// mergeText splits, categorizes and files the document's paragraphs. The
// attractions category additionally feeds the attraction merge.
func (s *Service) mergeText(state *mergeState, doc *domain.ScrapedDocument) {
	for _, text := range SplitParagraphs(doc.MainText, s.cfg.MinParagraphLength) {
		category, score := s.categorizer.Categorize(text)
		if category == "" {
			continue
		}

		state.paragraphsByCategory[category] = append(state.paragraphsByCategory[category], domain.ContentParagraph{
			Text:      text,
			SourceURL: doc.URL,
			Category:  category,
			Score:     score,
		})

		if category == "attractions" {
			state.attractionFeatures = append(state.attractionFeatures, AttractionFeature{
				Name:        s.extractor.ExtractName(text),
				Description: text,
				Score:       score,
				SourceURL:   doc.URL,
			})
		}
	}
}

// mergeAnalyzed folds the analyzer's structured output into the state.
// Scalars are first-wins across documents; lists accumulate with
// deduplication deferred to assembly.
func (s *Service) mergeAnalyzed(state *mergeState, analyzed *domain.AnalyzedContent) {
	if analyzed == nil {
		return
	}

	if analyzed.Overview != "" {
		state.overviews = append(state.overviews, analyzed.Overview)
	}
	if analyzed.HistoricalContext != "" {
		state.historical = append(state.historical, analyzed.HistoricalContext)
	}
	if analyzed.CulturalSignificance != "" {
		state.cultural = append(state.cultural, analyzed.CulturalSignificance)
	}

	for _, feature := range analyzed.KeyFeatures {
		if feature.Name == "" {
			continue
		}
		switch feature.Type {
		case domain.FeatureTypeActivity:
			s.addActivity(state, domain.Activity{
				Name:        feature.Name,
				Description: feature.Description,
				Type:        feature.Type,
			})
		default:
			// Landmarks and untyped features merge with the paragraph-derived
			// attractions under the same name key.
			state.attractionFeatures = append(state.attractionFeatures, AttractionFeature{
				Name:        feature.Name,
				Description: feature.Description,
				Score:       analyzerFeatureScore,
			})
		}
	}

	if analyzed.PracticalInfo != nil {
		if state.quickFacts.BestTime == "" {
			state.quickFacts.BestTime = analyzed.PracticalInfo.BestTimeToVisit
		}
		if state.quickFacts.Fees == "" {
			state.quickFacts.Fees = analyzed.PracticalInfo.Fees
		}
	}
	if analyzed.EnvironmentalContext != nil && state.quickFacts.Climate == "" {
		state.quickFacts.Climate = analyzed.EnvironmentalContext.Climate
	}

	if analyzed.VisitorExperience != nil {
		for _, name := range analyzed.VisitorExperience.SuggestedActivities {
			s.addActivity(state, domain.Activity{Name: name})
		}
		state.highlights = append(state.highlights, analyzed.VisitorExperience.Highlights...)
		state.tips = append(state.tips, analyzed.VisitorExperience.Tips...)
	}
}

// addActivity records an activity once per case-insensitive name.
func (s *Service) addActivity(state *mergeState, activity domain.Activity) {
	key := strings.ToLower(strings.TrimSpace(activity.Name))
	if key == "" || state.activitySeen[key] {
		return
	}
	state.activitySeen[key] = true
	state.activities = append(state.activities, activity)
}

// mergeImages scores the document's images and folds them into the global
// URL-keyed pool. On a URL collision the later record's metadata wins but
// classifier categories accumulate, since different pages can expose
// different crops of the same asset.
func (s *Service) mergeImages(state *mergeState, doc *domain.ScrapedDocument) {
	for _, img := range doc.Images {
		if !img.IsValid() {
			continue
		}
		// Known-small images can't fill any brochure slot.
		if (img.Width > 0 && img.Width < s.cfg.MinImageDimension) ||
			(img.Height > 0 && img.Height < s.cfg.MinImageDimension) {
			continue
		}

		img.LocalScore = images.RelevanceScore(img, doc.MainText)

		idx, seen := state.imageIndex[img.URL]
		if !seen {
			state.imageIndex[img.URL] = len(state.imagesByURL)
			state.imagesByURL = append(state.imagesByURL, img)
			continue
		}

		img.Categories = mergeCategories(state.imagesByURL[idx].Categories, img.Categories)
		state.imagesByURL[idx] = img
	}
}

// mergeCategories unions two classifier label lists, keeping the first-seen
// entry per type.
func mergeCategories(existing, incoming []domain.CategoryScore) []domain.CategoryScore {
	merged := make([]domain.CategoryScore, 0, len(existing)+len(incoming))
	seen := make(map[string]bool)

	for _, cs := range existing {
		if !seen[cs.Type] {
			merged = append(merged, cs)
			seen[cs.Type] = true
		}
	}
	for _, cs := range incoming {
		if !seen[cs.Type] {
			merged = append(merged, cs)
			seen[cs.Type] = true
		}
	}
	return merged
}

// assemble turns the accumulated merge state into the final aggregate.
func (s *Service) assemble(state *mergeState, location string) domain.MergedLocationData {
	merged := domain.EmptyMergedLocationData(location)

	// Category text, in configured category order. Analyzer narrative fills
	// in for categories the scraped text never covered.
	for _, category := range s.cfg.Categories {
		text := MergeParagraphs(state.paragraphsByCategory[category.Name], s.cfg.SimilarityThreshold)
		if text == "" {
			switch category.Name {
			case "history":
				text = strings.Join(state.historical, "\n\n")
			case "culture":
				text = strings.Join(state.cultural, "\n\n")
			}
		}
		if text != "" {
			merged.ContentByCategory[category.Name] = text
		}
	}

	description := strings.Join(state.overviews, " ")
	if description == "" {
		description = merged.ContentByCategory["overview"]
	}
	merged.Description = truncate(description, s.cfg.MaxDescriptionLength)

	attractions := MergeAttractions(state.attractionFeatures)
	if len(attractions) > s.cfg.MaxAttractions {
		attractions = attractions[:s.cfg.MaxAttractions]
	}
	merged.Attractions = attractions

	activities := state.activities
	if len(activities) > s.cfg.MaxActivities {
		activities = activities[:s.cfg.MaxActivities]
	}
	merged.Activities = append(merged.Activities, activities...)

	merged.QuickFacts = state.quickFacts
	merged.Highlights = dedupeStrings(state.highlights, s.cfg.MaxHighlights)
	merged.Tips = dedupeStrings(state.tips, s.cfg.MaxTips)
	merged.Images = s.bucketer.BucketImages(state.imagesByURL)
	merged.Sources = append(merged.Sources, state.sources...)

	if s.themer != nil {
		scheme := s.themer.SelectScheme(location, s.environmentText(&merged))
		merged.Theme = &scheme
	}

	return merged
}

// environmentText gathers the text the theme selector scans for
// environment keywords.
func (s *Service) environmentText(merged *domain.MergedLocationData) string {
	parts := []string{merged.Description, merged.QuickFacts.Climate}
	for _, category := range s.cfg.Categories {
		if text, ok := merged.ContentByCategory[category.Name]; ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// FuseFromURLs fetches the given pages concurrently, enriches them through
// the wired collaborators and fuses the survivors. Failed fetches degrade
// to fewer sources; the merge itself still runs in input URL order.
func (s *Service) FuseFromURLs(ctx context.Context, urls []string, location string) (domain.MergedLocationData, error) {
	if s.fetcher == nil {
		return domain.EmptyMergedLocationData(location), fmt.Errorf("no document fetcher configured")
	}

	s.deps.Logger.Info("Fusing location sources", map[string]interface{}{
		"location": location,
		"sources":  len(urls),
	})

	results := make([]*domain.ScrapedDocument, len(urls))
	semaphore := make(chan struct{}, maxConcurrentFetches)
	done := make(chan int, len(urls))

	for i, url := range urls {
		go func(idx int, pageURL string) {
			defer func() {
				if r := recover(); r != nil {
					s.deps.Logger.Error("Recovered from panic fetching page", map[string]interface{}{
						"url":   pageURL,
						"error": fmt.Sprintf("%v", r),
					})
				}
				done <- idx
			}()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			doc, err := s.fetcher.FetchDocument(ctx, pageURL)
			if err != nil {
				s.deps.Logger.Warn("Failed to fetch page, continuing without it", map[string]interface{}{
					"url":   pageURL,
					"error": err.Error(),
				})
				return
			}
			results[idx] = doc
		}(i, url)
	}

	for range urls {
		<-done
	}

	docs := make([]domain.ScrapedDocument, 0, len(results))
	for _, doc := range results {
		if doc == nil {
			continue
		}
		s.enrichDocument(ctx, location, doc)
		docs = append(docs, *doc)
	}

	merged := s.Fuse(docs, location)
	s.applyColorMetrics(ctx, &merged)

	return merged, nil
}

// enrichDocument runs the analyzer and the image classifier over a fetched
// document. Both are best-effort; on failure the document keeps its
// pre-enrichment state.
func (s *Service) enrichDocument(ctx context.Context, location string, doc *domain.ScrapedDocument) {
	if s.analyzer != nil {
		analyzed, err := s.analyzer.AnalyzeContent(ctx, location, doc.MainText)
		if err != nil {
			s.deps.Logger.Warn("Content analysis failed, merging raw text only", map[string]interface{}{
				"url":   doc.URL,
				"error": err.Error(),
			})
		} else {
			doc.Analyzed = analyzed
		}
	}

	if s.classifier == nil {
		return
	}
	for i := range doc.Images {
		img := &doc.Images[i]
		classification, err := s.classifier.ClassifyImage(ctx, location, *img, doc.MainText)
		if err != nil || !classification.IsValid() {
			continue
		}

		img.Categories = classification.Categories
		img.PrimaryCategory = classification.PrimaryCategory
		img.IsHighQuality = classification.IsHighQuality
		img.Quality = max(img.Quality, classification.RelevanceScore)
		for _, cs := range classification.Categories {
			if cs.Type == domain.ImageCategoryScenic && cs.Confidence > s.cfg.ConfidenceThreshold {
				img.Scenic = true
			}
		}
	}
}

// applyColorMetrics backfills colorfulness and prominence onto every
// bucketed image in one batch.
func (s *Service) applyColorMetrics(ctx context.Context, merged *domain.MergedLocationData) {
	if s.colorService == nil {
		return
	}

	buckets := []*[]domain.ImageRecord{
		&merged.Images.Hero,
		&merged.Images.Attractions,
		&merged.Images.Activities,
		&merged.Images.General,
	}

	urlSet := make(map[string]bool)
	var urls []string
	for _, bucket := range buckets {
		for _, img := range *bucket {
			if !urlSet[img.URL] {
				urlSet[img.URL] = true
				urls = append(urls, img.URL)
			}
		}
	}
	if len(urls) == 0 {
		return
	}

	metrics := s.colorService.ExtractMetricsBatch(ctx, urls)
	for _, bucket := range buckets {
		for i := range *bucket {
			if m := metrics[(*bucket)[i].URL]; m != nil {
				(*bucket)[i].Colorfulness = m.Colorfulness
				(*bucket)[i].Prominence = m.Prominence
			}
		}
	}
}

// truncate caps text at maxLength with an ellipsis marker.
func truncate(text string, maxLength int) string {
	if maxLength <= 0 || len(text) <= maxLength {
		return text
	}
	return strings.TrimSpace(text[:maxLength]) + "..."
}

// dedupeStrings removes repeats while preserving first-seen order, then
// caps the result.
func dedupeStrings(values []string, limit int) []string {
	deduped := make([]string, 0, len(values))
	seen := make(map[string]bool)

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		deduped = append(deduped, trimmed)
		if limit > 0 && len(deduped) >= limit {
			break
		}
	}
	return deduped
}
