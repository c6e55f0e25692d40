// ABOUTME: Paragraph splitting and same-category paragraph fusion
// ABOUTME: Deduplicates restated content across sources while keeping complementary detail

package fusion

import (
	"regexp"
	"sort"
	"strings"

	"brochure-app-api/core/domain"
)

// paragraphBoundary splits scraped text on blank-line boundaries.
var paragraphBoundary = regexp.MustCompile(`\n\s*\n`)

// SplitParagraphs splits a document's main text into trimmed paragraphs,
// discarding any shorter than minLength. Short fragments carry no reliable
// categorization signal.
func SplitParagraphs(text string, minLength int) []string {
	parts := paragraphBoundary.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) < minLength {
			continue
		}
		paragraphs = append(paragraphs, trimmed)
	}

	return paragraphs
}

// MergeParagraphs merges same-category paragraphs from multiple documents
// into one coherent text block. Paragraphs are kept in score-descending
// order; a paragraph is dropped when its Jaccard similarity to any
// already-kept paragraph reaches the threshold. Travel sites restate the
// same facts constantly, so a strict threshold collapses restatement while
// keeping complementary detail.
func MergeParagraphs(paragraphs []domain.ContentParagraph, similarityThreshold float64) string {
	if len(paragraphs) == 0 {
		return ""
	}

	sorted := make([]domain.ContentParagraph, len(paragraphs))
	copy(sorted, paragraphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	kept := make([]string, 0, len(sorted))
	for _, p := range sorted {
		duplicate := false
		for _, existing := range kept {
			if Similarity(p.Text, existing) >= similarityThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, p.Text)
		}
	}

	return strings.Join(kept, "\n\n")
}
