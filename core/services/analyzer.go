// ABOUTME: Content analyzer client posting document text to the analysis endpoint
// ABOUTME: Malformed analyzer output degrades to absent fields, never a fatal error

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
	analyzerCacheTTL = 24 * time.Hour

	// maxAnalyzerChars bounds the text sent per document. Analyzer latency
	// and cost grow with input size while extraction quality plateaus.
	maxAnalyzerChars = 12000
)

// AnalyzerService calls the external content analysis endpoint.
type AnalyzerService struct {
	deps     interfaces.Dependencies
	endpoint string
}

// NewAnalyzerService creates an analyzer client for the given endpoint.
func NewAnalyzerService(deps interfaces.Dependencies, endpoint string) *AnalyzerService {
	return &AnalyzerService{
		deps:     deps,
		endpoint: endpoint,
	}
}

// AnalyzeContent implements interfaces.ContentAnalyzer.
func (s *AnalyzerService) AnalyzeContent(ctx context.Context, location, text string) (*domain.AnalyzedContent, error) {
	if s.endpoint == "" {
		return nil, errors.New("analyzer endpoint not configured")
	}
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	if len(text) > maxAnalyzerChars {
		text = text[:maxAnalyzerChars]
	}

	cacheKey := fmt.Sprintf("analyze:%s:%d", location, hashText(text))
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var analyzed domain.AnalyzedContent
			if err := json.Unmarshal(data, &analyzed); err == nil {
				return &analyzed, nil
			}
		}
	}

	payload, err := json.Marshal(map[string]string{
		"location": location,
		"content":  text,
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to encode analyzer request")
	}

	resp, err := s.deps.HTTPClient.Post(ctx, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, coreerrors.WrapError(err, "analyzer request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "content analysis failed",
			API:        "analyzer",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read analyzer response")
	}

	var analyzed domain.AnalyzedContent
	if err := json.Unmarshal(body, &analyzed); err != nil {
		return nil, &coreerrors.MalformedInputError{
			Item:   "analyzer response",
			Reason: err.Error(),
		}
	}

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey, body, analyzerCacheTTL)
	}

	return &analyzed, nil
}

// hashText is a small FNV-style hash keeping cache keys bounded while the
// input text is not.
func hashText(text string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(text); i++ {
		h ^= uint32(text[i])
		h *= 16777619
	}
	return h
}
