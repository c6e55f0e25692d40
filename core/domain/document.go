// ABOUTME: Scraped document domain models, the read-only input to fusion
// ABOUTME: Defines documents, content paragraphs and image records

package domain

// ScrapedDocument is one fetched web page, reduced to the pieces the fusion
// engine consumes. It is owned by the fetcher and read-only to fusion.
type ScrapedDocument struct {
	// URL is the page the document was scraped from
	URL string `json:"url"`

	// Title is the extracted page title
	Title string `json:"title"`

	// MainText is the readable plain-text content of the page
	MainText string `json:"mainText"`

	// Images holds the image metadata found in the page, in document order
	Images []ImageRecord `json:"images"`

	// Analyzed is the content analyzer's structured output for this
	// document. Nil when analysis failed or was skipped.
	Analyzed *AnalyzedContent `json:"analyzedContent,omitempty"`
}

// ContentParagraph is a paragraph of scraped text on its way through
// categorization. Category stays empty until categorization assigns one.
type ContentParagraph struct {
	// Text is the paragraph body
	Text string

	// SourceURL is the document the paragraph came from
	SourceURL string

	// Category is the assigned semantic category, empty if uncategorized
	Category string

	// Score is the categorization score for the assigned category
	Score float64
}

// ImageRecord is one image found in a scraped document, enriched in place
// by local scoring, the classifier and the color service. Images are keyed
// by URL; on collision the last-seen metadata wins but classifier
// categories accumulate.
type ImageRecord struct {
	// URL is the image source URL and the record's identity
	URL string `json:"url"`

	// Alt is the image's alt text
	Alt string `json:"alt"`

	// Title is the image's title attribute
	Title string `json:"title,omitempty"`

	// Width and Height are the rendered dimensions, 0 when unknown
	Width  int `json:"width"`
	Height int `json:"height"`

	// Quality is the effective quality in [0,1]: the scraper's estimate,
	// raised to the classifier's relevance score when that is higher
	Quality float64 `json:"quality"`

	// Context is the text surrounding the image in the source page
	Context string `json:"context,omitempty"`

	// LocalScore is the heuristic relevance score computed from metadata
	// and surrounding text, independent of the classifier
	LocalScore float64 `json:"localScore"`

	// Categories are the classifier-assigned labels with confidences
	Categories []CategoryScore `json:"categories,omitempty"`

	// PrimaryCategory is the classifier's single best label
	PrimaryCategory string `json:"primaryCategory,omitempty"`

	// IsHighQuality is the classifier's quality flag
	IsHighQuality bool `json:"isHighQuality,omitempty"`

	// Colorfulness and Prominence are color statistics in [0,1] used by
	// the thumbnail composite score
	Colorfulness float64 `json:"colorfulness,omitempty"`
	Prominence   float64 `json:"prominence,omitempty"`

	// Scenic marks landscape/scenery shots
	Scenic bool `json:"isScenic,omitempty"`
}

// AspectRatio returns width/height, or 0 when either dimension is unknown.
func (img *ImageRecord) AspectRatio() float64 {
	if img.Width <= 0 || img.Height <= 0 {
		return 0
	}
	return float64(img.Width) / float64(img.Height)
}

// Area returns width*height in pixels, or 0 when either dimension is unknown.
func (img *ImageRecord) Area() int {
	if img.Width <= 0 || img.Height <= 0 {
		return 0
	}
	return img.Width * img.Height
}

// IsValid checks that the record can participate in fusion at all.
func (img *ImageRecord) IsValid() bool {
	return img.URL != ""
}
