package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

const (
	scoreExactName    = 100.0
	scoreNamePrefix   = 80.0
	scoreNameContains = 60.0
	scoreDescription  = 20.0
	scoreFuzzyMax     = 30.0
)

// scoreItem computes the relevance score of one item. The fuzzy bonus
// applies only when fuzzy filtering ran and set a distance.
func scoreItem(item domain.SearchResultItem, queryLower string) float64 {
	name := strings.ToLower(item.Name)

	var score float64
	switch {
	case name == queryLower:
		score = scoreExactName
	case strings.HasPrefix(name, queryLower):
		score = scoreNamePrefix
	case strings.Contains(name, queryLower):
		score = scoreNameContains
	}

	if strings.Contains(strings.ToLower(item.Description), queryLower) {
		score += scoreDescription
	}

	if item.MatchDistance != nil {
		score += scoreFuzzyMax * (1 - *item.MatchDistance)
	}

	return score * item.ContentType.Weight()
}

// rankItems scores items in place and orders them by strategy.
// All sorts are stable so equal keys keep emission order.
func rankItems(items []domain.SearchResultItem, query string, strategy domain.SortStrategy) {
	q := strings.ToLower(query)
	for i := range items {
		items[i].RelevanceScore = scoreItem(items[i], q)
	}

	switch strategy {
	case domain.SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Name < items[j].Name
		})
	case domain.SortType:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].ContentType != items[j].ContentType {
				return items[i].ContentType < items[j].ContentType
			}
			return items[i].RelevanceScore > items[j].RelevanceScore
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].RelevanceScore > items[j].RelevanceScore
		})
	}
}
