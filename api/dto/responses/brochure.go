// ABOUTME: Response DTOs for search, brochure and image selection endpoints
// ABOUTME: Wire representations decoupled from the core domain models

package responses

// SearchHitResponse is one ranked search result.
type SearchHitResponse struct {
	Title          string  `json:"title" doc:"Page title"`
	URL            string  `json:"url" doc:"Page URL"`
	Snippet        string  `json:"snippet" doc:"Short excerpt"`
	ContentType    string  `json:"type" doc:"Page classification"`
	PublishDate    string  `json:"date,omitempty" doc:"Provider-reported publish date"`
	RelevanceScore float64 `json:"relevanceScore" doc:"Computed relevance score"`
}

// SearchResponse is the body of the search endpoint.
type SearchResponse struct {
	Location string              `json:"location" doc:"Queried location"`
	Results  []SearchHitResponse `json:"results" doc:"Ranked results, best first"`
}

// AttractionResponse is one merged attraction.
type AttractionResponse struct {
	Name           string   `json:"name" doc:"Attraction name"`
	Description    string   `json:"description" doc:"Most detailed description seen"`
	AggregateScore float64  `json:"aggregateScore" doc:"Summed mention scores"`
	Sources        []string `json:"sources" doc:"URLs that mentioned the attraction"`
}

// ActivityResponse is one suggested activity.
type ActivityResponse struct {
	Name        string `json:"name" doc:"Activity name"`
	Description string `json:"description,omitempty" doc:"Activity description"`
	Type        string `json:"type,omitempty" doc:"Analyzer-assigned type"`
}

// QuickFactsResponse holds practical visitor facts.
type QuickFactsResponse struct {
	Climate  string `json:"climate,omitempty" doc:"Climate summary"`
	BestTime string `json:"bestTime,omitempty" doc:"Best time to visit"`
	Fees     string `json:"fees,omitempty" doc:"Entry fees"`
}

// ImageResponse is one selected image.
type ImageResponse struct {
	URL            string  `json:"url" doc:"Image URL"`
	Alt            string  `json:"alt,omitempty" doc:"Alt text"`
	Width          int     `json:"width,omitempty" doc:"Pixel width, 0 if unknown"`
	Height         int     `json:"height,omitempty" doc:"Pixel height, 0 if unknown"`
	Quality        float64 `json:"quality" doc:"Effective quality in [0,1]"`
	Category       string  `json:"category,omitempty" doc:"Primary category label"`
	RelevanceScore float64 `json:"relevanceScore" doc:"Relevance score"`
}

// ImageBucketsResponse partitions the selected images.
type ImageBucketsResponse struct {
	Hero        []ImageResponse `json:"hero" doc:"Banner candidates"`
	Attractions []ImageResponse `json:"attractions" doc:"Attraction shots"`
	Activities  []ImageResponse `json:"activities" doc:"Activity shots"`
	General     []ImageResponse `json:"general" doc:"Everything else"`
}

// ThemeResponse is the selected color scheme.
type ThemeResponse struct {
	Name       string   `json:"name" doc:"Scheme name"`
	Primary    string   `json:"primary" doc:"Primary color"`
	Secondary  string   `json:"secondary" doc:"Secondary color"`
	Accent     string   `json:"accent" doc:"Accent color"`
	Background string   `json:"background" doc:"Background color"`
	Text       string   `json:"text" doc:"Text color"`
	Highlights []string `json:"highlights" doc:"Highlight colors"`
}

// BrochureResponse is the body of the brochure generation endpoint.
type BrochureResponse struct {
	Location          string               `json:"location" doc:"Location the brochure is about"`
	Description       string               `json:"description" doc:"Merged overview text"`
	Attractions       []AttractionResponse `json:"attractions" doc:"Top attractions, best first"`
	Activities        []ActivityResponse   `json:"activities" doc:"Suggested activities"`
	ContentByCategory map[string]string    `json:"contentByCategory" doc:"Merged text per semantic category"`
	QuickFacts        QuickFactsResponse   `json:"quickFacts" doc:"Practical visitor facts"`
	Highlights        []string             `json:"highlights" doc:"Visitor highlights"`
	Tips              []string             `json:"tips" doc:"Visitor tips"`
	Images            ImageBucketsResponse `json:"images" doc:"Selected images per bucket"`
	Sources           []string             `json:"sources" doc:"Contributing source URLs"`
	Theme             *ThemeResponse       `json:"theme,omitempty" doc:"Selected color scheme"`
}

// SelectImagesResponse is the body of the image selection endpoint.
type SelectImagesResponse struct {
	Images []ImageResponse `json:"images" doc:"Selected images, best first"`
}
