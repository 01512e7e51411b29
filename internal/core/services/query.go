package services

import (
	"math"
	"strings"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// NormalizeQuery validates raw caller options and applies defaults and
// clamping. It has no side effects.
func NormalizeQuery(req domain.SearchRequest) (domain.SearchQuery, error) {
	text := strings.TrimSpace(req.Query)
	if text == "" {
		return domain.SearchQuery{}, &domain.ValidationError{Field: "query", Reason: "must not be empty"}
	}

	types, err := normalizeContentTypes(req.ContentTypes)
	if err != nil {
		return domain.SearchQuery{}, err
	}

	limit := domain.DefaultLimit
	if req.Limit != nil {
		limit = clampInt(*req.Limit, domain.MinLimit, domain.MaxLimit)
	}

	threshold := domain.DefaultFuzzyThreshold
	if req.FuzzyThreshold != nil {
		if math.IsNaN(*req.FuzzyThreshold) {
			return domain.SearchQuery{}, &domain.ValidationError{Field: "fuzzy_threshold", Reason: "must be a number"}
		}
		threshold = math.Min(math.Max(*req.FuzzyThreshold, domain.MinFuzzyThreshold), domain.MaxFuzzyThreshold)
	}

	sortBy := domain.DefaultSort
	if s := strings.ToLower(strings.TrimSpace(req.SortBy)); s != "" {
		sortBy = domain.SortStrategy(s)
		if !sortBy.IsValid() {
			return domain.SearchQuery{}, &domain.ValidationError{
				Field:  "sort_by",
				Reason: "must be one of relevance, name, type",
			}
		}
	}

	includeDetails := false
	if req.IncludeDetails != nil {
		includeDetails = *req.IncludeDetails
	}

	return domain.SearchQuery{
		Text:           text,
		ContentTypes:   types,
		Limit:          limit,
		IncludeDetails: includeDetails,
		FuzzyThreshold: threshold,
		SortBy:         sortBy,
	}, nil
}

// normalizeContentTypes parses tags, drops duplicates and keeps request
// order. An empty list selects every content type.
func normalizeContentTypes(tags []string) ([]domain.ContentType, error) {
	if len(tags) == 0 {
		return domain.AllContentTypes(), nil
	}

	seen := make(map[domain.ContentType]bool, len(tags))
	types := make([]domain.ContentType, 0, len(tags))
	for _, tag := range tags {
		ct, ok := domain.ParseContentType(tag)
		if !ok {
			return nil, &domain.ValidationError{
				Field:  "content_types",
				Reason: "unknown content type " + strings.TrimSpace(tag),
				Err:    domain.ErrUnsupportedType,
			}
		}
		if seen[ct] {
			continue
		}
		seen[ct] = true
		types = append(types, ct)
	}
	return types, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
