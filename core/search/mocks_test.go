package search

import (
	"context"
	"time"

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

// mockCache is an in-memory implementation of the Cache interface
type mockCache struct {
	data map[string][]byte
	sets int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if data, ok := m.data[key]; ok {
		return data, nil
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	m.sets++
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// mockProvider is a mock implementation of the SearchProvider interface
type mockProvider struct {
	searchFunc func(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error)
	queries    []string
}

func (m *mockProvider) Search(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error) {
	m.queries = append(m.queries, query)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, maxResults)
	}
	return nil, nil
}

func testDeps(cache interfaces.Cache) (interfaces.Dependencies, *mockLogger) {
	logger := &mockLogger{}
	return interfaces.Dependencies{Cache: cache, Logger: logger}, logger
}
