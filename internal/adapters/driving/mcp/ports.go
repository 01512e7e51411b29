package mcp

import (
	"net/http"

	"github.com/custodia-labs/lorequery/internal/core/ports/driving"
)

// Ports aggregates everything the MCP server depends on.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs unified searches and manages the result cache.
	Search driving.UnifiedSearchService

	// Metrics, when set, is served at /metrics in HTTP mode.
	Metrics http.Handler
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
