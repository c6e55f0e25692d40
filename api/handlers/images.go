// ABOUTME: Image selection handler exposing the diverse selector directly
// ABOUTME: Lets callers rank their own image sets without a full fusion run

package handlers

import (
	"context"
	"net/http"

	"brochure-app-api/api/dto/mappers"
	"brochure-app-api/api/dto/requests"
	"brochure-app-api/api/dto/responses"
	"brochure-app-api/core/config"
	"brochure-app-api/core/domain"
	"brochure-app-api/core/images"

	"github.com/danielgtaylor/huma/v2"
)

// ImagesHandler handles standalone image selection requests.
type ImagesHandler struct {
	cfg config.FusionConfig
}

// NewImagesHandler creates a new images handler.
func NewImagesHandler(cfg config.FusionConfig) *ImagesHandler {
	return &ImagesHandler{cfg: cfg}
}

// RegisterRoutes registers image selection routes.
func (h *ImagesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "selectImages",
		Method:      http.MethodPost,
		Path:        "/images/select",
		Summary:     "Select a diverse image subset",
		Description: "Picks the best images under category-diversity constraints, with gallery and thumbnail profiles",
		Tags:        []string{"Images"},
	}, h.SelectImages)
}

// SelectImagesInput defines the input for image selection.
type SelectImagesInput struct {
	Body requests.SelectImagesRequest
}

// SelectImagesOutput defines the output for image selection.
type SelectImagesOutput struct {
	Body responses.SelectImagesResponse
}

// SelectImages handles the POST /images/select endpoint.
func (h *ImagesHandler) SelectImages(ctx context.Context, input *SelectImagesInput) (*SelectImagesOutput, error) {
	input.Body.ApplyDefaults()

	candidates := mappers.FromImageInputs(input.Body.Images)

	var selected []domain.ImageRecord
	switch input.Body.Mode {
	case requests.SelectionModeGallery:
		selected = images.SelectGallery(candidates, input.Body.TargetCount, h.cfg.Gallery)
	case requests.SelectionModeThumbnail:
		selected = images.SelectThumbnails(candidates, input.Body.TargetCount, h.cfg.Thumbnail, h.cfg.ThumbnailWeights)
	default:
		selected = images.SelectDiverse(candidates, input.Body.TargetCount, images.ByLocalScore)
	}

	output := &SelectImagesOutput{}
	output.Body.Images = mappers.ToImageResponses(selected)
	return output, nil
}
