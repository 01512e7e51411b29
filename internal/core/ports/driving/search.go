package driving

import (
	"context"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// UnifiedSearchService runs one query across many reference-data domains.
type UnifiedSearchService interface {
	// UnifiedSearch normalizes the request, fans out to every requested
	// domain and returns the ranked, aggregated result. Only invalid
	// requests fail; per-domain failures degrade to empty results.
	UnifiedSearch(ctx context.Context, req domain.SearchRequest) (*domain.UnifiedSearchResult, error)

	// ClearCache drops every cached result.
	ClearCache(ctx context.Context) error

	// CacheStats reports result cache usage.
	CacheStats(ctx context.Context) (domain.CacheStats, error)

	// ContentTypes lists the registered content types in canonical order.
	ContentTypes() []domain.ContentType
}
