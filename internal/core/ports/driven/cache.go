package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// ResultCache stores complete aggregated responses keyed by query signature.
// Implementations must be safe for concurrent use and must never hand out
// state shared with a stored entry.
type ResultCache interface {
	// Get returns a copy of the entry for key.
	// The boolean is false on a miss or an expired entry.
	Get(ctx context.Context, key string) (*domain.UnifiedSearchResult, bool, error)

	// Set stores a copy of result under key for ttl.
	Set(ctx context.Context, key string, result *domain.UnifiedSearchResult, ttl time.Duration) error

	// Flush removes every entry.
	Flush(ctx context.Context) error

	// Stats reports hit, miss and key counts.
	Stats(ctx context.Context) (domain.CacheStats, error)
}
