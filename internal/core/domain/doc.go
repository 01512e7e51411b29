// Package domain defines the core entities of lorequery.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ContentType: One of the twelve reference-data domains
//   - SearchRequest / SearchQuery: Raw and normalized unified search options
//   - SearchResultItem: The canonical form of a hit from any domain
//   - UnifiedSearchResult: The aggregated response of one unified search
//   - Spell, Monster, Weapon, ...: Native records returned by collaborators
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
