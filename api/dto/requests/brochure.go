// ABOUTME: Request DTOs for search and brochure generation endpoints
// ABOUTME: Provides validation constraints and default values for incoming requests

package requests

// SearchRequest represents the request body for location source search.
type SearchRequest struct {
	// Location is the place to find sources for
	Location string `json:"location" required:"true" minLength:"2" maxLength:"100" doc:"Location name to search sources for"`

	// MaxResults caps how many ranked hits are returned
	MaxResults int `json:"max_results,omitempty" minimum:"1" maximum:"50" default:"10" doc:"Maximum number of results"`
}

// ApplyDefaults sets default values for optional fields.
func (r *SearchRequest) ApplyDefaults() {
	if r.MaxResults == 0 {
		r.MaxResults = 10
	}
}

// BrochureRequest represents the request body for brochure generation.
// When URLs are given they are fused directly; otherwise the top-ranked
// search hits for the location are used.
type BrochureRequest struct {
	// Location is the place the brochure is about
	Location string `json:"location" required:"true" minLength:"2" maxLength:"100" doc:"Location name to generate a brochure for"`

	// URLs optionally fixes the source pages instead of searching
	URLs []string `json:"urls,omitempty" maxItems:"20" doc:"Optional source page URLs, bypasses search"`

	// MaxSources caps how many searched pages feed the brochure
	MaxSources int `json:"max_sources,omitempty" minimum:"1" maximum:"10" default:"5" doc:"Maximum number of source pages"`

	// IncludeTheme toggles color scheme selection (default: true)
	IncludeTheme *bool `json:"include_theme,omitempty" default:"true" doc:"Select a color scheme for the brochure"`
}

// ApplyDefaults sets default values for optional fields.
func (r *BrochureRequest) ApplyDefaults() {
	if r.MaxSources == 0 {
		r.MaxSources = 5
	}
	if r.IncludeTheme == nil {
		enabled := true
		r.IncludeTheme = &enabled
	}
}
