// ABOUTME: MergedLocationData is the terminal aggregate produced by one fusion run
// ABOUTME: Holds deduplicated attractions, merged category text and bucketed images

package domain

// AttractionRecord is one deduplicated attraction. Merging accumulates
// score and provenance; the name never changes once assigned.
type AttractionRecord struct {
	// Name is the normalized attraction name and the record's key
	Name string `json:"name"`

	// Description is the most detailed description seen so far
	Description string `json:"description"`

	// AggregateScore is the sum of the scores of all merged mentions
	AggregateScore float64 `json:"aggregateScore"`

	// Sources lists the URLs of the documents that mentioned the attraction
	Sources []string `json:"sources"`
}

// Activity is a suggested activity collected from the analyzer output.
type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

// QuickFacts holds practical visitor facts; first non-empty value wins
// during the merge.
type QuickFacts struct {
	Climate  string `json:"climate,omitempty"`
	BestTime string `json:"bestTime,omitempty"`
	Fees     string `json:"fees,omitempty"`
}

// ImageBuckets partitions the selected images for brochure assembly.
// Within a bucket, images are ranked best-first and unique by URL.
type ImageBuckets struct {
	Hero        []ImageRecord `json:"hero"`
	Attractions []ImageRecord `json:"attractions"`
	Activities  []ImageRecord `json:"activities"`
	General     []ImageRecord `json:"general"`
}

// ColorScheme is the brochure theme chosen for the location's environment.
type ColorScheme struct {
	Name       string   `json:"name"`
	Primary    string   `json:"primary"`
	Secondary  string   `json:"secondary"`
	Accent     string   `json:"accent"`
	Background string   `json:"background"`
	Text       string   `json:"text"`
	Highlights []string `json:"highlights"`
}

// MergedLocationData is the result of fusing every scraped document about a
// location. It is built once per fusion run and immutable once returned.
type MergedLocationData struct {
	// Location is the location name the fusion ran for
	Location string `json:"location"`

	// Description is the merged overview text, length-capped
	Description string `json:"description"`

	// Attractions are the deduplicated top attractions, best first
	Attractions []AttractionRecord `json:"attractions"`

	// Activities are the deduplicated suggested activities
	Activities []Activity `json:"activities"`

	// ContentByCategory maps each semantic category to its merged text
	ContentByCategory map[string]string `json:"contentByCategory"`

	// QuickFacts holds practical visitor information
	QuickFacts QuickFacts `json:"quickFacts"`

	// Highlights and Tips are deduplicated analyzer suggestions
	Highlights []string `json:"highlights"`
	Tips       []string `json:"tips"`

	// Images holds the diverse, capped per-bucket image selections
	Images ImageBuckets `json:"images"`

	// Sources lists the URLs of every document that contributed
	Sources []string `json:"sources"`

	// Theme is the color scheme chosen for the location, when enabled
	Theme *ColorScheme `json:"theme,omitempty"`
}

// EmptyMergedLocationData returns a well-formed zero-value aggregate for a
// location. Fusing zero documents yields this rather than an error.
func EmptyMergedLocationData(location string) MergedLocationData {
	return MergedLocationData{
		Location:          location,
		Attractions:       []AttractionRecord{},
		Activities:        []Activity{},
		ContentByCategory: map[string]string{},
		Highlights:        []string{},
		Tips:              []string{},
		Images: ImageBuckets{
			Hero:        []ImageRecord{},
			Attractions: []ImageRecord{},
			Activities:  []ImageRecord{},
			General:     []ImageRecord{},
		},
		Sources: []string{},
	}
}
