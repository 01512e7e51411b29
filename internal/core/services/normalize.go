package services

import (
	"strconv"
	"unicode"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

const (
	previewMaxRunes = 150
	previewCutRunes = 147
	ellipsis        = "..."
)

// normalizeRecords converts extracted records into canonical items.
// Ids are positional and unique within one response only.
func normalizeRecords(ct domain.ContentType, records []rawRecord, includeDetails bool) []domain.SearchResultItem {
	items := make([]domain.SearchResultItem, 0, len(records))
	for i, rec := range records {
		item := domain.SearchResultItem{
			ID:          ct.String() + "-" + strconv.Itoa(i),
			Name:        rec.Name,
			ContentType: ct,
			Description: rec.Description,
			URL:         rec.URL,
			Metadata:    rec.Metadata,
		}
		if !includeDetails {
			item.Preview = makePreview(rec.Description)
		}
		items = append(items, item)
	}
	return items
}

// makePreview keeps short descriptions verbatim. Longer ones are cut at the
// last whitespace within the first 147 runes and end with "...". A single
// word longer than that is cut hard.
func makePreview(desc string) string {
	runes := []rune(desc)
	if len(runes) <= previewMaxRunes {
		return desc
	}

	cut := runes[:previewCutRunes]
	if !unicode.IsSpace(runes[previewCutRunes]) {
		for i := len(cut) - 1; i > 0; i-- {
			if unicode.IsSpace(cut[i]) {
				cut = cut[:i]
				break
			}
		}
	}

	end := len(cut)
	for end > 0 && unicode.IsSpace(cut[end-1]) {
		end--
	}
	return string(cut[:end]) + ellipsis
}
