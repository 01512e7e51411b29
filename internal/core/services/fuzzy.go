package services

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xrash/smetrics"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

const (
	fuzzyNameWeight        = 2.0
	fuzzyDescriptionWeight = 1.0

	// fuzzyPositionScale turns a character offset into a distance penalty:
	// a match 100 characters in costs a full point.
	fuzzyPositionScale = 100.0

	// fuzzyMinQueryRunes is the shortest query matched approximately.
	fuzzyMinQueryRunes = 2
)

// fuzzyFilter drops items too far from the query and records the distance
// of the rest. Order is preserved. Callers skip it when the threshold
// disables fuzzy matching.
func fuzzyFilter(items []domain.SearchResultItem, query string, threshold float64) []domain.SearchResultItem {
	q := strings.ToLower(query)

	kept := items[:0:0]
	for _, item := range items {
		var weighted, weights float64

		if d := fieldDistance(q, strings.ToLower(item.Name)); d <= threshold {
			weighted += d * fuzzyNameWeight
			weights += fuzzyNameWeight
		}
		if d := fieldDistance(q, strings.ToLower(item.Description)); d <= threshold {
			weighted += d * fuzzyDescriptionWeight
			weights += fuzzyDescriptionWeight
		}
		if weights == 0 {
			continue
		}

		distance := weighted / weights
		item.MatchDistance = &distance
		kept = append(kept, item)
	}
	return kept
}

// fieldDistance returns the normalized distance in [0,1] between a
// lower-cased query and a lower-cased field.
func fieldDistance(query, field string) float64 {
	if field == "" {
		return 1
	}

	if pos := strings.Index(field, query); pos >= 0 {
		return math.Min(float64(utf8.RuneCountInString(field[:pos]))/fuzzyPositionScale, 1)
	}

	queryRunes := utf8.RuneCountInString(query)
	if queryRunes < fuzzyMinQueryRunes {
		return 1
	}

	words, offsets := splitWords(field)
	maxWindow := len(strings.Fields(query)) + 1

	best := 1.0
	for i := range words {
		penalty := float64(offsets[i]) / fuzzyPositionScale
		if penalty >= best {
			break
		}
		for n := 1; n <= maxWindow && i+n <= len(words); n++ {
			window := strings.Join(words[i:i+n], " ")
			longest := max(queryRunes, utf8.RuneCountInString(window))
			edits := smetrics.WagnerFischer(query, window, 1, 1, 1)
			if d := float64(edits)/float64(longest) + penalty; d < best {
				best = d
			}
		}
	}
	return math.Min(best, 1)
}

// splitWords splits s on whitespace and returns each word with its rune
// offset in s.
func splitWords(s string) ([]string, []int) {
	var words []string
	var offsets []int

	start := -1
	startRune := 0
	runeIdx := 0
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, s[start:i])
				offsets = append(offsets, startRune)
				start = -1
			}
		} else if start < 0 {
			start = i
			startRune = runeIdx
		}
		runeIdx++
	}
	if start >= 0 {
		words = append(words, s[start:])
		offsets = append(offsets, startRune)
	}
	return words, offsets
}
