package services

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

const maxSuggestions = 5

// popularTerms are offered when a query finds nothing.
var popularTerms = []string{"fireball", "dragon", "wizard", "fighter", "healing", "magic sword"}

// generateSuggestions proposes alternate queries from the ranked, truncated
// results. Popular terms lead when nothing matched; longer words from
// returned names that contain the query follow.
func generateSuggestions(query string, results map[domain.ContentType]domain.ContentTypeResults, order []domain.ContentType, total int) []string {
	q := strings.ToLower(query)
	seen := make(map[string]bool)
	suggestions := make([]string, 0, maxSuggestions)

	add := func(term string) {
		if len(suggestions) >= maxSuggestions || seen[term] {
			return
		}
		seen[term] = true
		suggestions = append(suggestions, term)
	}

	if total == 0 {
		for _, term := range popularTerms {
			if !strings.EqualFold(term, query) {
				add(term)
			}
		}
	}

	for _, ct := range order {
		for _, item := range results[ct].Items {
			for _, word := range strings.Fields(strings.ToLower(item.Name)) {
				word = strings.Trim(word, ",.;:()\"")
				if utf8.RuneCountInString(word) > 3 && word != q && strings.Contains(word, q) {
					add(word)
				}
			}
		}
	}

	return suggestions
}
