// ABOUTME: Mapping between core domain models and API DTOs
// ABOUTME: Keeps wire formats and domain types free to evolve independently

package mappers

import (
	"brochure-app-api/api/dto/requests"
	"brochure-app-api/api/dto/responses"
	"brochure-app-api/core/domain"
)

// ToSearchHitResponse converts a domain search hit to its response DTO.
func ToSearchHitResponse(hit domain.SearchHit) responses.SearchHitResponse {
	return responses.SearchHitResponse{
		Title:          hit.Title,
		URL:            hit.URL,
		Snippet:        hit.Snippet,
		ContentType:    string(hit.ContentType),
		PublishDate:    hit.PublishDate,
		RelevanceScore: hit.RelevanceScore,
	}
}

// ToSearchHitResponses converts a slice of hits, never returning nil.
func ToSearchHitResponses(hits []domain.SearchHit) []responses.SearchHitResponse {
	out := make([]responses.SearchHitResponse, 0, len(hits))
	for _, hit := range hits {
		out = append(out, ToSearchHitResponse(hit))
	}
	return out
}

// ToImageResponse converts a domain image record to its response DTO.
func ToImageResponse(img domain.ImageRecord) responses.ImageResponse {
	return responses.ImageResponse{
		URL:            img.URL,
		Alt:            img.Alt,
		Width:          img.Width,
		Height:         img.Height,
		Quality:        img.Quality,
		Category:       img.PrimaryCategory,
		RelevanceScore: img.LocalScore,
	}
}

// ToImageResponses converts a slice of image records, never returning nil.
func ToImageResponses(imgs []domain.ImageRecord) []responses.ImageResponse {
	out := make([]responses.ImageResponse, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, ToImageResponse(img))
	}
	return out
}

// ToBrochureResponse converts a fused aggregate to the brochure DTO.
func ToBrochureResponse(merged domain.MergedLocationData) responses.BrochureResponse {
	attractions := make([]responses.AttractionResponse, 0, len(merged.Attractions))
	for _, a := range merged.Attractions {
		attractions = append(attractions, responses.AttractionResponse{
			Name:           a.Name,
			Description:    a.Description,
			AggregateScore: a.AggregateScore,
			Sources:        a.Sources,
		})
	}

	activities := make([]responses.ActivityResponse, 0, len(merged.Activities))
	for _, a := range merged.Activities {
		activities = append(activities, responses.ActivityResponse{
			Name:        a.Name,
			Description: a.Description,
			Type:        a.Type,
		})
	}

	resp := responses.BrochureResponse{
		Location:          merged.Location,
		Description:       merged.Description,
		Attractions:       attractions,
		Activities:        activities,
		ContentByCategory: merged.ContentByCategory,
		QuickFacts: responses.QuickFactsResponse{
			Climate:  merged.QuickFacts.Climate,
			BestTime: merged.QuickFacts.BestTime,
			Fees:     merged.QuickFacts.Fees,
		},
		Highlights: merged.Highlights,
		Tips:       merged.Tips,
		Images: responses.ImageBucketsResponse{
			Hero:        ToImageResponses(merged.Images.Hero),
			Attractions: ToImageResponses(merged.Images.Attractions),
			Activities:  ToImageResponses(merged.Images.Activities),
			General:     ToImageResponses(merged.Images.General),
		},
		Sources: merged.Sources,
	}

	if merged.Theme != nil {
		resp.Theme = &responses.ThemeResponse{
			Name:       merged.Theme.Name,
			Primary:    merged.Theme.Primary,
			Secondary:  merged.Theme.Secondary,
			Accent:     merged.Theme.Accent,
			Background: merged.Theme.Background,
			Text:       merged.Theme.Text,
			Highlights: merged.Theme.Highlights,
		}
	}

	return resp
}

// FromImageInput converts a caller-supplied image to a domain record.
func FromImageInput(in requests.ImageInput) domain.ImageRecord {
	return domain.ImageRecord{
		URL:             in.URL,
		Alt:             in.Alt,
		Width:           in.Width,
		Height:          in.Height,
		Quality:         in.Quality,
		PrimaryCategory: in.Category,
		Colorfulness:    in.Colorfulness,
		Prominence:      in.Prominence,
		Scenic:          in.Scenic,
		LocalScore:      in.RelevanceScore,
	}
}

// FromImageInputs converts a slice of caller-supplied images.
func FromImageInputs(inputs []requests.ImageInput) []domain.ImageRecord {
	out := make([]domain.ImageRecord, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, FromImageInput(in))
	}
	return out
}
