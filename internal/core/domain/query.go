package domain

// SortStrategy selects how items are ordered within a content type.
type SortStrategy string

// Available sort strategies.
const (
	// SortRelevance orders by descending relevance score.
	SortRelevance SortStrategy = "relevance"

	// SortName orders by ascending item name.
	SortName SortStrategy = "name"

	// SortType orders by content type, then by descending relevance score.
	SortType SortStrategy = "type"
)

// IsValid returns true if the sort strategy is recognised.
func (s SortStrategy) IsValid() bool {
	switch s {
	case SortRelevance, SortName, SortType:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s SortStrategy) String() string {
	return string(s)
}

// Search option bounds and defaults.
const (
	DefaultLimit          = 5
	MinLimit              = 1
	MaxLimit              = 20
	DefaultFuzzyThreshold = 0.3
	MinFuzzyThreshold     = 0.0
	MaxFuzzyThreshold     = 1.0
	DefaultSort           = SortRelevance
)

// SearchRequest carries the caller-supplied options of a unified search.
// Optional fields are pointers so that an omitted value can be told apart
// from an explicit zero.
type SearchRequest struct {
	// Query is the search text. Required.
	Query string

	// ContentTypes lists the tags to search. Empty means all types.
	ContentTypes []string

	// Limit is the maximum number of items per content type.
	Limit *int

	// IncludeDetails returns full descriptions instead of previews.
	IncludeDetails *bool

	// FuzzyThreshold controls approximate matching, 0.0 (strict) to 1.0 (off).
	FuzzyThreshold *float64

	// SortBy is the sort strategy name. Empty means relevance.
	SortBy string
}

// SearchQuery is the canonical, validated form of a SearchRequest.
// It is built by the query normalizer and never modified afterwards.
type SearchQuery struct {
	Text           string
	ContentTypes   []ContentType
	Limit          int
	IncludeDetails bool
	FuzzyThreshold float64
	SortBy         SortStrategy
}

// FuzzyEnabled reports whether the fuzzy filter runs for this query.
func (q SearchQuery) FuzzyEnabled() bool {
	return q.FuzzyThreshold < MaxFuzzyThreshold
}

// DomainQuery is what the dispatcher hands to a per-domain collaborator.
type DomainQuery struct {
	// Limit is the number of items requested from the backend.
	Limit int

	// Filters holds domain-specific query parameters.
	Filters map[string]string
}

// Page is the response shape every per-domain collaborator returns.
type Page[T any] struct {
	// Count is the total number of matches reported by the backend.
	Count int

	// Items are the returned records, possibly fewer than Count.
	Items []T

	// HasMore reports whether the backend has further pages.
	HasMore bool
}
