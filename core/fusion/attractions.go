// ABOUTME: Attraction fusion merges landmark mentions across documents into unique records
// ABOUTME: Name extraction is a pluggable strategy so the crude heuristic can be replaced

package fusion

import (
	"sort"
	"strings"

	"brochure-app-api/core/domain"
)

// NameExtractor derives an attraction name from free-form text. The stock
// implementation is a crude string heuristic; swapping in an NER-based
// extractor must not touch the merge logic.
type NameExtractor interface {
	ExtractName(text string) string
}

// FirstPhraseExtractor extracts the leading noun phrase of a paragraph:
// the substring up to the first period, then up to the first comma or
// opening parenthesis, trimmed. Intentionally crude; it is a known source
// of false-duplicate and false-unique names.
type FirstPhraseExtractor struct{}

// ExtractName implements NameExtractor.
func (FirstPhraseExtractor) ExtractName(text string) string {
	firstSentence := text
	if idx := strings.Index(text, "."); idx >= 0 {
		firstSentence = text[:idx]
	}

	name := firstSentence
	if idx := strings.IndexAny(firstSentence, ",("); idx >= 0 {
		name = firstSentence[:idx]
	}

	return strings.TrimSpace(name)
}

// AttractionFeature is one attraction mention before merging.
type AttractionFeature struct {
	Name        string
	Description string
	Score       float64
	SourceURL   string
}

// MergeAttractions merges mentions with identical names into unique
// records: scores accumulate, sources append, and the longer description
// wins as a proxy for detail. The result is sorted by aggregate score
// descending; the name assigned on first sight is never overwritten.
func MergeAttractions(features []AttractionFeature) []domain.AttractionRecord {
	byName := make(map[string]*domain.AttractionRecord)
	order := make([]string, 0, len(features))

	for _, f := range features {
		if f.Name == "" {
			continue
		}

		existing, ok := byName[f.Name]
		if !ok {
			byName[f.Name] = &domain.AttractionRecord{
				Name:           f.Name,
				Description:    f.Description,
				AggregateScore: f.Score,
				Sources:        appendSource(nil, f.SourceURL),
			}
			order = append(order, f.Name)
			continue
		}

		existing.AggregateScore += f.Score
		existing.Sources = appendSource(existing.Sources, f.SourceURL)
		if len(f.Description) > len(existing.Description) {
			existing.Description = f.Description
		}
	}

	merged := make([]domain.AttractionRecord, 0, len(order))
	for _, name := range order {
		merged = append(merged, *byName[name])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].AggregateScore > merged[j].AggregateScore
	})

	return merged
}

// appendSource appends a non-empty source URL, skipping exact repeats.
func appendSource(sources []string, url string) []string {
	if url == "" {
		return sources
	}
	for _, s := range sources {
		if s == url {
			return sources
		}
	}
	return append(sources, url)
}
