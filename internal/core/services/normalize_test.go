package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

func TestMakePreview(t *testing.T) {
	t.Run("short description is kept verbatim", func(t *testing.T) {
		desc := strings.Repeat("a", 150)
		assert.Equal(t, desc, makePreview(desc))
		assert.Equal(t, "", makePreview(""))
	})

	t.Run("long description is cut at a word boundary", func(t *testing.T) {
		desc := strings.Repeat("word ", 40) // 200 runes
		preview := makePreview(desc)

		assert.True(t, strings.HasSuffix(preview, "..."))
		assert.LessOrEqual(t, utf8.RuneCountInString(preview), 150)
		body := strings.TrimSuffix(preview, "...")
		for _, w := range strings.Fields(body) {
			assert.Equal(t, "word", w)
		}
	})

	t.Run("single long word is cut hard", func(t *testing.T) {
		desc := strings.Repeat("x", 200)
		preview := makePreview(desc)
		assert.Equal(t, strings.Repeat("x", 147)+"...", preview)
	})

	t.Run("boundary right after the cut keeps the last word", func(t *testing.T) {
		desc := strings.Repeat("x", 147) + " tail that runs on and on"
		desc += strings.Repeat(" more", 5)
		assert.Equal(t, strings.Repeat("x", 147)+"...", makePreview(desc))
	})

	t.Run("multibyte text is cut by rune", func(t *testing.T) {
		desc := strings.Repeat("é", 160)
		preview := makePreview(desc)
		assert.Equal(t, 150, utf8.RuneCountInString(preview))
	})
}

func TestNormalizeRecords(t *testing.T) {
	records := []rawRecord{
		{Name: "Fireball", URL: "https://example.test/fireball", Description: "Boom.", Metadata: domain.Metadata{"level": 3}},
		{Name: "Fire Bolt", Description: strings.Repeat("hot ", 50)},
	}

	t.Run("without details", func(t *testing.T) {
		items := normalizeRecords(domain.ContentSpells, records, false)

		require.Len(t, items, 2)
		assert.Equal(t, "spells-0", items[0].ID)
		assert.Equal(t, "spells-1", items[1].ID)
		assert.Equal(t, domain.ContentSpells, items[0].ContentType)
		assert.Equal(t, "https://example.test/fireball", items[0].URL)
		assert.Equal(t, "Boom.", items[0].Preview)
		assert.Equal(t, 3, items[0].Metadata["level"])
		assert.True(t, strings.HasSuffix(items[1].Preview, "..."))
		assert.Nil(t, items[0].MatchDistance)
	})

	t.Run("with details", func(t *testing.T) {
		items := normalizeRecords(domain.ContentSpells, records, true)
		assert.Empty(t, items[0].Preview)
		assert.Empty(t, items[1].Preview)
		assert.Equal(t, records[1].Description, items[1].Description)
	})
}
