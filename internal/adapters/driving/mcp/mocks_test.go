package mcp

import (
	"context"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.UnifiedSearchService.
type mockSearchService struct {
	result   *domain.UnifiedSearchResult
	err      error
	stats    domain.CacheStats
	statsErr error
	clearErr error
	types    []domain.ContentType

	lastRequest domain.SearchRequest
	cleared     int
}

func (m *mockSearchService) UnifiedSearch(
	_ context.Context,
	req domain.SearchRequest,
) (*domain.UnifiedSearchResult, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &domain.UnifiedSearchResult{
			Query:   req.Query,
			Results: map[domain.ContentType]domain.ContentTypeResults{},
		}, nil
	}
	return m.result, nil
}

func (m *mockSearchService) ClearCache(_ context.Context) error {
	m.cleared++
	return m.clearErr
}

func (m *mockSearchService) CacheStats(_ context.Context) (domain.CacheStats, error) {
	return m.stats, m.statsErr
}

func (m *mockSearchService) ContentTypes() []domain.ContentType {
	if m.types == nil {
		return domain.AllContentTypes()
	}
	return m.types
}
