// ABOUTME: Search domain models for location search hits
// ABOUTME: Defines structures for results returned by the external search provider

package domain

// ContentType classifies the kind of page a search hit points at.
type ContentType string

const (
	ContentTypeTravelGuide  ContentType = "Travel Guide"
	ContentTypeNewsArticle  ContentType = "News Article"
	ContentTypeBlog         ContentType = "Blog"
	ContentTypeOfficialSite ContentType = "Official Site"
	ContentTypeOther        ContentType = "Other"
)

// SearchHit represents a single result from the search provider.
// RelevanceScore is zero until the ranker scores the hit; once ranked the
// hit is treated as read-only.
type SearchHit struct {
	// Title is the result's page title
	Title string `json:"title"`

	// URL is the result's page URL
	URL string `json:"url"`

	// Snippet is the short text excerpt returned by the provider
	Snippet string `json:"snippet"`

	// ContentType is the provider's classification of the page
	ContentType ContentType `json:"type"`

	// PublishDate is the provider-reported publish date, free-form.
	// May be empty or "Unknown"; unparsable dates simply earn no
	// recency bonus.
	PublishDate string `json:"date,omitempty"`

	// RelevanceScore is the computed relevance, filled in by the ranker
	RelevanceScore float64 `json:"relevanceScore"`
}
