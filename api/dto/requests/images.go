// ABOUTME: Request DTOs for the standalone image selection endpoint
// ABOUTME: Carries caller-supplied image metadata into the diverse selector

package requests

// Selection modes accepted by the image selection endpoint.
const (
	SelectionModeDiverse   = "diverse"
	SelectionModeGallery   = "gallery"
	SelectionModeThumbnail = "thumbnail"
)

// ImageInput is one candidate image supplied by the caller.
type ImageInput struct {
	URL             string  `json:"url" required:"true" format:"uri" doc:"Image URL"`
	Alt             string  `json:"alt,omitempty" doc:"Alt text"`
	Width           int     `json:"width,omitempty" minimum:"0" doc:"Pixel width, 0 if unknown"`
	Height          int     `json:"height,omitempty" minimum:"0" doc:"Pixel height, 0 if unknown"`
	Quality         float64 `json:"quality,omitempty" minimum:"0" maximum:"1" doc:"Quality estimate in [0,1]"`
	Category        string  `json:"category,omitempty" doc:"Primary category label, empty if unclassified"`
	Colorfulness    float64 `json:"colorfulness,omitempty" minimum:"0" maximum:"1" doc:"Colorfulness in [0,1]"`
	Prominence      float64 `json:"prominence,omitempty" minimum:"0" maximum:"1" doc:"Dominant color share in [0,1]"`
	Scenic          bool    `json:"isScenic,omitempty" doc:"Landscape/scenery flag"`
	RelevanceScore  float64 `json:"relevanceScore,omitempty" minimum:"0" doc:"Relevance score used for diverse ranking"`
}

// SelectImagesRequest represents the request body for image selection.
type SelectImagesRequest struct {
	// Images are the candidates to select from
	Images []ImageInput `json:"images" minItems:"1" maxItems:"200" doc:"Candidate images"`

	// TargetCount is how many images to pick
	TargetCount int `json:"target_count,omitempty" minimum:"1" maximum:"50" default:"3" doc:"Number of images to select"`

	// Mode picks the scoring profile (diverse/gallery/thumbnail)
	Mode string `json:"mode,omitempty" enum:"diverse,gallery,thumbnail" default:"diverse" doc:"Selection mode"`
}

// ApplyDefaults sets default values for optional fields.
func (r *SelectImagesRequest) ApplyDefaults() {
	if r.TargetCount == 0 {
		r.TargetCount = 3
	}
	if r.Mode == "" {
		r.Mode = SelectionModeDiverse
	}
}
