package driven

import (
	"time"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// SearchObserver receives events from the unified search pipeline.
// Calls happen on dispatch goroutines and must not block.
type SearchObserver interface {
	// DomainSearched reports one per-domain backend call.
	DomainSearched(ct domain.ContentType, elapsed time.Duration, err error)

	// CacheLookup reports a result cache lookup.
	CacheLookup(hit bool)

	// UnifiedSearched reports a completed unified search.
	UnifiedSearched(elapsed time.Duration, total int)
}

// NopObserver discards every event.
type NopObserver struct{}

// DomainSearched implements SearchObserver.
func (NopObserver) DomainSearched(domain.ContentType, time.Duration, error) {}

// CacheLookup implements SearchObserver.
func (NopObserver) CacheLookup(bool) {}

// UnifiedSearched implements SearchObserver.
func (NopObserver) UnifiedSearched(time.Duration, int) {}
