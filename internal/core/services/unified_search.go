package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
	"github.com/custodia-labs/lorequery/internal/core/ports/driving"
	"github.com/custodia-labs/lorequery/internal/logger"
)

// Ensure UnifiedSearchService implements the interface.
var _ driving.UnifiedSearchService = (*UnifiedSearchService)(nil)

// UnifiedSearchService runs one query across every requested domain.
//
// Identical concurrent queries are not coalesced: both miss the cache and
// both dispatch. The last one to finish overwrites the cache entry.
type UnifiedSearchService struct {
	registry *DomainRegistry
	cache    driven.ResultCache
	ttl      time.Duration
	observer driven.SearchObserver
	newID    func() string
}

// NewUnifiedSearchService creates a unified search service.
// The cache is optional (can be nil); a non-positive ttl uses the default.
func NewUnifiedSearchService(registry *DomainRegistry, cache driven.ResultCache, ttl time.Duration) *UnifiedSearchService {
	if registry == nil {
		registry = NewDomainRegistry(nil)
	}
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &UnifiedSearchService{
		registry: registry,
		cache:    cache,
		ttl:      ttl,
		observer: driven.NopObserver{},
		newID:    uuid.NewString,
	}
}

// SetObserver sets the observer notified of search and cache events.
func (s *UnifiedSearchService) SetObserver(observer driven.SearchObserver) {
	if observer == nil {
		observer = driven.NopObserver{}
	}
	s.observer = observer
}

// UnifiedSearch implements driving.UnifiedSearchService.
func (s *UnifiedSearchService) UnifiedSearch(
	ctx context.Context, req domain.SearchRequest,
) (*domain.UnifiedSearchResult, error) {
	start := time.Now()

	q, err := NormalizeQuery(req)
	if err != nil {
		return nil, err
	}

	log := logger.For(s.newID())
	logger.Section("Unified Search")
	log.Debug("Query: %q", q.Text)
	log.Debug("Types: %v, limit: %d, details: %t, fuzzy: %g, sort: %s",
		q.ContentTypes, q.Limit, q.IncludeDetails, q.FuzzyThreshold, q.SortBy)

	key := querySignature(q)
	if cached, ok := s.cachedResult(ctx, log, key); ok {
		log.Info("Cache hit: %d results", cached.TotalResults)
		return cached, nil
	}

	outcomes := s.dispatch(ctx, q)

	result, err := s.aggregate(log, q, outcomes)
	if err != nil {
		log.Warn("Aggregation failed: %v", err)
		return nil, err
	}
	result.ExecutionTime = time.Since(start)

	s.storeResult(ctx, log, key, result)
	s.observer.UnifiedSearched(result.ExecutionTime, result.TotalResults)

	log.Info("Found %d results in %s", result.TotalResults, domain.FormatExecutionTime(result.ExecutionTime))
	return result, nil
}

// aggregate combines settled outcomes into the response. Any panic while
// combining surfaces as an AggregationError.
func (s *UnifiedSearchService) aggregate(
	log logger.Scope, q domain.SearchQuery, outcomes []outcome,
) (result *domain.UnifiedSearchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &domain.AggregationError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	results := make(map[domain.ContentType]domain.ContentTypeResults, len(outcomes))
	total := 0
	for _, o := range outcomes {
		if o.err != nil {
			log.Warn("%v", o.err)
			results[o.contentType] = domain.EmptyResults()
			continue
		}

		group := buildGroup(o.contentType, o.page, q)
		log.Debug("%s: %d of %d items", o.contentType, len(group.Items), group.Count)
		results[o.contentType] = group
		total += len(group.Items)
	}

	if len(results) != len(q.ContentTypes) {
		return nil, &domain.AggregationError{
			Err: fmt.Errorf("%d result groups for %d content types", len(results), len(q.ContentTypes)),
		}
	}

	return &domain.UnifiedSearchResult{
		Query:          q.Text,
		TotalResults:   total,
		Results:        results,
		Suggestions:    generateSuggestions(q.Text, results, q.ContentTypes, total),
		RelatedContent: findRelated(results),
	}, nil
}

// buildGroup runs normalization, fuzzy filtering, ranking and truncation
// for one content type.
func buildGroup(ct domain.ContentType, page rawPage, q domain.SearchQuery) domain.ContentTypeResults {
	items := normalizeRecords(ct, page.Records, q.IncludeDetails)
	if q.FuzzyEnabled() {
		items = fuzzyFilter(items, q.Text, q.FuzzyThreshold)
	}
	rankItems(items, q.Text, q.SortBy)

	count := page.Count
	if count <= 0 {
		count = len(page.Records)
	}
	if len(items) > q.Limit {
		items = items[:q.Limit]
	}

	return domain.ContentTypeResults{
		Count:   count,
		Items:   items,
		HasMore: page.HasMore || count > q.Limit,
	}
}

func (s *UnifiedSearchService) cachedResult(
	ctx context.Context, log logger.Scope, key string,
) (*domain.UnifiedSearchResult, bool) {
	if s.cache == nil {
		return nil, false
	}

	result, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn("%v", asCacheError("get", err))
		ok = false
	}
	ok = ok && result != nil
	s.observer.CacheLookup(ok)
	return result, ok
}

func (s *UnifiedSearchService) storeResult(
	ctx context.Context, log logger.Scope, key string, result *domain.UnifiedSearchResult,
) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
		log.Warn("%v", asCacheError("set", err))
	}
}

// ClearCache implements driving.UnifiedSearchService.
func (s *UnifiedSearchService) ClearCache(ctx context.Context) error {
	if s.cache == nil {
		logger.Debug("No result cache configured, nothing to clear")
		return nil
	}
	if err := s.cache.Flush(ctx); err != nil {
		return asCacheError("flush", err)
	}
	logger.Info("Result cache cleared")
	return nil
}

// CacheStats implements driving.UnifiedSearchService.
func (s *UnifiedSearchService) CacheStats(ctx context.Context) (domain.CacheStats, error) {
	if s.cache == nil {
		return domain.CacheStats{Backend: domain.CacheBackendNone.String()}, nil
	}
	stats, err := s.cache.Stats(ctx)
	if err != nil {
		return domain.CacheStats{}, asCacheError("stats", err)
	}
	return stats, nil
}

// ContentTypes implements driving.UnifiedSearchService.
func (s *UnifiedSearchService) ContentTypes() []domain.ContentType {
	return s.registry.Types()
}

func asCacheError(op string, err error) error {
	var ce *domain.CacheError
	if errors.As(err, &ce) {
		return err
	}
	return &domain.CacheError{Op: op, Err: err}
}
