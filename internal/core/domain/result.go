package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Metadata is the small, explicitly enumerated set of domain-specific
// properties attached to a result item.
type Metadata map[string]any

// Clone returns a copy of the metadata that shares no slices or maps
// with the receiver.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []any:
		cp := make([]any, len(val))
		for i := range val {
			cp[i] = cloneValue(val[i])
		}
		return cp
	case map[string]any:
		return Metadata(val).Clone()
	case Metadata:
		return val.Clone()
	default:
		return v
	}
}

// StringSlice returns the metadata value for key as a string slice.
// It accepts both []string and the []any produced by JSON decoding.
func (m Metadata) StringSlice(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// SearchResultItem is the canonical form of a hit from any domain.
type SearchResultItem struct {
	// ID is unique within one response only: "{contentType}-{index}".
	ID string `json:"id"`

	// Name is the display name of the record.
	Name string `json:"name"`

	// ContentType is the domain the item came from.
	ContentType ContentType `json:"contentType"`

	// Description is the full description text.
	Description string `json:"description"`

	// URL links to the record upstream, when known.
	URL string `json:"url,omitempty"`

	// RelevanceScore is set by the ranker.
	RelevanceScore float64 `json:"relevanceScore"`

	// Preview is a truncated description, present only without details.
	Preview string `json:"preview,omitempty"`

	// Metadata holds domain-specific properties.
	Metadata Metadata `json:"metadata,omitempty"`

	// MatchDistance is the fuzzy distance (0 exact, 1 no match).
	// Nil when the fuzzy filter did not run.
	MatchDistance *float64 `json:"-"`
}

// Clone returns a deep copy of the item.
func (i SearchResultItem) Clone() SearchResultItem {
	out := i
	out.Metadata = i.Metadata.Clone()
	if i.MatchDistance != nil {
		d := *i.MatchDistance
		out.MatchDistance = &d
	}
	return out
}

// ContentTypeResults groups the items of one content type.
type ContentTypeResults struct {
	// Count is the total reported upstream, not the number of items.
	Count int `json:"count"`

	// Items are the ranked and truncated items.
	Items []SearchResultItem `json:"items"`

	// HasMore reports whether more items exist than were returned.
	HasMore bool `json:"hasMore"`
}

// EmptyResults returns the all-zero group used for failed or unknown types.
func EmptyResults() ContentTypeResults {
	return ContentTypeResults{Items: []SearchResultItem{}}
}

// Clone returns a deep copy of the group.
func (r ContentTypeResults) Clone() ContentTypeResults {
	out := r
	if r.Items == nil {
		return out
	}
	out.Items = make([]SearchResultItem, len(r.Items))
	for i := range r.Items {
		out.Items[i] = r.Items[i].Clone()
	}
	return out
}

// RelationshipKind classifies a cross-domain relationship.
type RelationshipKind string

// Known relationship kinds.
const (
	RelationSpellClass     RelationshipKind = "spell-class"
	RelationEquipmentClass RelationshipKind = "equipment-class"
	RelationCrossReference RelationshipKind = "cross-reference"
)

// RelatedContentItem links two items of different content types.
type RelatedContentItem struct {
	Type         RelationshipKind `json:"type"`
	Primary      SearchResultItem `json:"primary"`
	Secondary    SearchResultItem `json:"secondary"`
	Relationship string           `json:"relationship"`
}

// UnifiedSearchResult is the aggregated response of one unified search.
type UnifiedSearchResult struct {
	Query          string
	TotalResults   int
	ExecutionTime  time.Duration
	Results        map[ContentType]ContentTypeResults
	Suggestions    []string
	RelatedContent []RelatedContentItem
}

// Clone returns a deep copy of the result.
func (r *UnifiedSearchResult) Clone() *UnifiedSearchResult {
	if r == nil {
		return nil
	}
	out := &UnifiedSearchResult{
		Query:         r.Query,
		TotalResults:  r.TotalResults,
		ExecutionTime: r.ExecutionTime,
		Results:       make(map[ContentType]ContentTypeResults, len(r.Results)),
	}
	for ct, group := range r.Results {
		out.Results[ct] = group.Clone()
	}
	if r.Suggestions != nil {
		out.Suggestions = append([]string{}, r.Suggestions...)
	}
	if r.RelatedContent == nil {
		return out
	}
	out.RelatedContent = make([]RelatedContentItem, len(r.RelatedContent))
	for i, rel := range r.RelatedContent {
		out.RelatedContent[i] = RelatedContentItem{
			Type:         rel.Type,
			Primary:      rel.Primary.Clone(),
			Secondary:    rel.Secondary.Clone(),
			Relationship: rel.Relationship,
		}
	}
	return out
}

// FormatExecutionTime renders a duration the way results report it: "<n>ms".
func FormatExecutionTime(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

// unifiedSearchJSON is the wire shape of UnifiedSearchResult.
type unifiedSearchJSON struct {
	Query          string                             `json:"query"`
	TotalResults   int                                `json:"totalResults"`
	ExecutionTime  string                             `json:"executionTime"`
	Results        map[ContentType]ContentTypeResults `json:"results"`
	Suggestions    []string                           `json:"suggestions"`
	RelatedContent []RelatedContentItem               `json:"relatedContent"`
}

// MarshalJSON encodes the result with executionTime as "<n>ms".
func (r UnifiedSearchResult) MarshalJSON() ([]byte, error) {
	wire := unifiedSearchJSON{
		Query:          r.Query,
		TotalResults:   r.TotalResults,
		ExecutionTime:  FormatExecutionTime(r.ExecutionTime),
		Results:        r.Results,
		Suggestions:    r.Suggestions,
		RelatedContent: r.RelatedContent,
	}
	if wire.Suggestions == nil {
		wire.Suggestions = []string{}
	}
	if wire.RelatedContent == nil {
		wire.RelatedContent = []RelatedContentItem{}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the wire shape produced by MarshalJSON.
func (r *UnifiedSearchResult) UnmarshalJSON(data []byte) error {
	var wire unifiedSearchJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	ms, err := strconv.ParseInt(strings.TrimSuffix(wire.ExecutionTime, "ms"), 10, 64)
	if err != nil && wire.ExecutionTime != "" {
		return fmt.Errorf("parse executionTime %q: %w", wire.ExecutionTime, err)
	}

	*r = UnifiedSearchResult{
		Query:          wire.Query,
		TotalResults:   wire.TotalResults,
		ExecutionTime:  time.Duration(ms) * time.Millisecond,
		Results:        wire.Results,
		Suggestions:    wire.Suggestions,
		RelatedContent: wire.RelatedContent,
	}
	return nil
}

// CacheStats reports result cache usage.
type CacheStats struct {
	Backend string `json:"backend"`
	Hits    int64  `json:"hits"`
	Misses  int64  `json:"misses"`
	Keys    int    `json:"keys"`
}
