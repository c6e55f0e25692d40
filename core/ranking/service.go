// ABOUTME: Search result ranker scores and orders raw search hits for a location query
// ABOUTME: Additive scoring over content type, term frequency, domain authority and recency

package ranking

import (
	"sort"
	"strings"
	"time"

	"brochure-app-api/core/domain"
	"brochure-app-api/core/interfaces"

	"github.com/araddon/dateparse"
)

// Content-type base scores. Travel guides carry the strongest prior for
// brochure sources.
var contentTypeScores = map[domain.ContentType]float64{
	domain.ContentTypeTravelGuide:  5,
	domain.ContentTypeOfficialSite: 4,
	domain.ContentTypeBlog:         3,
	domain.ContentTypeNewsArticle:  2,
	domain.ContentTypeOther:        1,
}

const daysPerMonth = 30

// Service ranks search hits by estimated relevance to a location query.
type Service struct {
	deps interfaces.Dependencies

	// now is injectable for recency tests
	now func() time.Time
}

// NewService creates a new ranking service instance.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps: deps,
		now:  time.Now,
	}
}

// RankSearchResults scores every hit and returns a new slice sorted by
// relevance descending. The sort is stable, so ties keep input order and
// re-ranking an already-ranked slice leaves the relative order unchanged.
func (s *Service) RankSearchResults(hits []domain.SearchHit, locationQuery string) []domain.SearchHit {
	ranked := make([]domain.SearchHit, len(hits))
	copy(ranked, hits)

	terms := strings.Fields(strings.ToLower(locationQuery))
	now := s.now()

	for i := range ranked {
		ranked[i].RelevanceScore = s.scoreHit(&ranked[i], terms, now)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked
}

// scoreHit computes the additive relevance score for one hit.
func (s *Service) scoreHit(hit *domain.SearchHit, queryTerms []string, now time.Time) float64 {
	score, ok := contentTypeScores[hit.ContentType]
	if !ok {
		score = 1
	}

	// Query term frequency over title and snippet.
	content := strings.ToLower(hit.Title + " " + hit.Snippet)
	for _, term := range queryTerms {
		score += float64(strings.Count(content, term))
	}

	// Domain authority.
	url := strings.ToLower(hit.URL)
	if strings.Contains(url, ".gov") {
		score += 3
	}
	if strings.Contains(url, ".org") {
		score += 2
	}
	if strings.Contains(url, "tourism") || strings.Contains(url, "travel") {
		score += 2
	}

	score += recencyBonus(hit.PublishDate, now)

	return score
}

// recencyBonus rewards fresher content. Unknown or unparsable dates never
// error; they simply contribute nothing.
func recencyBonus(publishDate string, now time.Time) float64 {
	if publishDate == "" || strings.EqualFold(publishDate, "unknown") {
		return 0
	}

	published, err := dateparse.ParseAny(publishDate)
	if err != nil {
		return 0
	}

	monthsOld := now.Sub(published).Hours() / (24 * daysPerMonth)
	switch {
	case monthsOld < 1:
		return 3
	case monthsOld < 6:
		return 2
	case monthsOld < 12:
		return 1
	default:
		return 0
	}
}
