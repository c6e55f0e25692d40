// ABOUTME: Image classifier client labeling images with travel categories
// ABOUTME: Invalid classifier output leaves the image unclassified rather than failing

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"brochure-app-api/core/domain"
	coreerrors "brochure-app-api/core/errors"
	"brochure-app-api/core/interfaces"
)

const (
	classifierCacheTTL = 24 * time.Hour

	// maxClassifierContext bounds the page text sent along with each image.
	maxClassifierContext = 2000
)

// ClassifierService calls the external image classification endpoint.
type ClassifierService struct {
	deps     interfaces.Dependencies
	endpoint string
}

// NewClassifierService creates a classifier client for the given endpoint.
func NewClassifierService(deps interfaces.Dependencies, endpoint string) *ClassifierService {
	return &ClassifierService{
		deps:     deps,
		endpoint: endpoint,
	}
}

// classifyRequest is the wire format of one classification call.
type classifyRequest struct {
	Location string `json:"location"`
	Image    struct {
		URL    string `json:"url"`
		Alt    string `json:"alt,omitempty"`
		Width  int    `json:"width,omitempty"`
		Height int    `json:"height,omitempty"`
	} `json:"image"`
	Context string `json:"context,omitempty"`
}

// ClassifyImage implements interfaces.ImageClassifier.
func (s *ClassifierService) ClassifyImage(ctx context.Context, location string, image domain.ImageRecord, locationContext string) (*domain.ImageClassification, error) {
	if s.endpoint == "" {
		return nil, errors.New("classifier endpoint not configured")
	}
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}
	if image.URL == "" {
		return nil, &coreerrors.ValidationError{Field: "image.url", Message: "cannot be empty"}
	}

	cacheKey := fmt.Sprintf("classify:%s:%s", location, image.URL)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var classification domain.ImageClassification
			if err := json.Unmarshal(data, &classification); err == nil {
				return &classification, nil
			}
		}
	}

	req := classifyRequest{Location: location}
	req.Image.URL = image.URL
	req.Image.Alt = image.Alt
	req.Image.Width = image.Width
	req.Image.Height = image.Height
	req.Context = image.Context
	if req.Context == "" {
		req.Context = locationContext
	}
	if len(req.Context) > maxClassifierContext {
		req.Context = req.Context[:maxClassifierContext]
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to encode classifier request")
	}

	resp, err := s.deps.HTTPClient.Post(ctx, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, coreerrors.WrapError(err, "classifier request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "image classification failed",
			API:        "classifier",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read classifier response")
	}

	var classification domain.ImageClassification
	if err := json.Unmarshal(body, &classification); err != nil {
		return nil, &coreerrors.MalformedInputError{
			Item:   "classifier response",
			Reason: err.Error(),
		}
	}
	if !classification.IsValid() {
		return nil, &coreerrors.MalformedInputError{
			Item:   "classifier response",
			Reason: "missing categories or primary category",
		}
	}

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey, body, classifierCacheTTL)
	}

	return &classification, nil
}
