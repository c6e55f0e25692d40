package fusion

import (
	"context"

	"brochure-app-api/core/domain"
	"brochure-app-api/core/interfaces"
)

// mockLogger is a no-op implementation of the Logger interface
type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockFetcher is a mock implementation of the DocumentFetcher interface
type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) (*domain.ScrapedDocument, error)
}

func (m *mockFetcher) FetchDocument(ctx context.Context, url string) (*domain.ScrapedDocument, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return &domain.ScrapedDocument{URL: url}, nil
}

// mockAnalyzer is a mock implementation of the ContentAnalyzer interface
type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, location, text string) (*domain.AnalyzedContent, error)
}

func (m *mockAnalyzer) AnalyzeContent(ctx context.Context, location, text string) (*domain.AnalyzedContent, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, location, text)
	}
	return &domain.AnalyzedContent{}, nil
}

// mockClassifier is a mock implementation of the ImageClassifier interface
type mockClassifier struct {
	classifyFunc func(ctx context.Context, location string, image domain.ImageRecord, locationContext string) (*domain.ImageClassification, error)
}

func (m *mockClassifier) ClassifyImage(ctx context.Context, location string, image domain.ImageRecord, locationContext string) (*domain.ImageClassification, error) {
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, location, image, locationContext)
	}
	return nil, nil
}

// mockThemer is a mock implementation of the ThemeSelector interface
type mockThemer struct {
	scheme domain.ColorScheme
}

func (m *mockThemer) SelectScheme(location, environmentText string) domain.ColorScheme {
	return m.scheme
}

func testDeps() (interfaces.Dependencies, *mockLogger) {
	logger := &mockLogger{}
	return interfaces.Dependencies{Logger: logger}, logger
}
