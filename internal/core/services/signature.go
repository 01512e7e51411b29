package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// querySignature is the cache key of a normalized query. Queries with the
// same effective options share a signature; any difference changes it.
func querySignature(q domain.SearchQuery) string {
	tags := make([]string, len(q.ContentTypes))
	for i, ct := range q.ContentTypes {
		tags[i] = ct.String()
	}
	sort.Strings(tags)

	return strings.Join([]string{
		"unified",
		strings.ToLower(q.Text),
		strings.Join(tags, ","),
		strconv.Itoa(q.Limit),
		strconv.FormatBool(q.IncludeDetails),
		strconv.FormatFloat(q.FuzzyThreshold, 'g', -1, 64),
		q.SortBy.String(),
	}, "|")
}
