package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// outcome is the settled result of one per-domain search task.
// Exactly one of page or err is meaningful.
type outcome struct {
	contentType domain.ContentType
	page        rawPage
	err         error
}

// dispatch searches every requested content type concurrently and waits for
// all of them. Failures, panics and unregistered types are recorded in the
// outcome of their own type and never abort the other tasks.
func (s *UnifiedSearchService) dispatch(ctx context.Context, q domain.SearchQuery) []outcome {
	outcomes := make([]outcome, len(q.ContentTypes))

	var g errgroup.Group
	for i, ct := range q.ContentTypes {
		outcomes[i].contentType = ct

		entry, ok := s.registry.lookup(ct)
		if !ok {
			outcomes[i].err = &domain.DomainSearchError{ContentType: ct, Err: domain.ErrUnsupportedType}
			s.observer.DomainSearched(ct, 0, outcomes[i].err)
			continue
		}

		g.Go(func() error {
			outcomes[i] = s.searchDomain(ctx, entry, q)
			return nil // failures stay in the outcome
		})
	}
	_ = g.Wait()

	return outcomes
}

// searchDomain runs one registry entry and converts any failure, including
// a panic inside the collaborator or its extractors, into a DomainSearchError.
func (s *UnifiedSearchService) searchDomain(ctx context.Context, entry registryEntry, q domain.SearchQuery) (out outcome) {
	ct := entry.contentType
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			out = outcome{
				contentType: ct,
				err:         &domain.DomainSearchError{ContentType: ct, Err: fmt.Errorf("panic: %v", r)},
			}
		}
		s.observer.DomainSearched(ct, time.Since(start), out.err)
	}()

	page, err := entry.search(ctx, q.Text, domain.DomainQuery{
		Limit:   q.Limit,
		Filters: copyFilters(entry.filters),
	})
	if err != nil {
		return outcome{contentType: ct, err: &domain.DomainSearchError{ContentType: ct, Err: err}}
	}
	return outcome{contentType: ct, page: page}
}
