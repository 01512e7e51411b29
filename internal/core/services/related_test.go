package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

func TestFindRelated_SpellClass(t *testing.T) {
	results := map[domain.ContentType]domain.ContentTypeResults{
		domain.ContentSpells: {Items: []domain.SearchResultItem{
			{Name: "Fireball", ContentType: domain.ContentSpells, Metadata: domain.Metadata{"classes": []string{"Sorcerer", "Wizard"}}},
		}},
		domain.ContentClasses: {Items: itemsNamed(domain.ContentClasses, "Fighter", "Wizard")},
	}

	related := findRelated(results)

	require.Len(t, related, 1)
	assert.Equal(t, domain.RelationSpellClass, related[0].Type)
	assert.Equal(t, "Fireball can be cast by Wizards", related[0].Relationship)
	assert.Equal(t, "Fireball", related[0].Primary.Name)
	assert.Equal(t, "Wizard", related[0].Secondary.Name)
}

func TestFindRelated_SpellClass_DecodedMetadata(t *testing.T) {
	results := map[domain.ContentType]domain.ContentTypeResults{
		domain.ContentSpells: {Items: []domain.SearchResultItem{
			{Name: "Cure Wounds", Metadata: domain.Metadata{"classes": []any{"Cleric"}}},
		}},
		domain.ContentClasses: {Items: itemsNamed(domain.ContentClasses, "Cleric")},
	}

	related := findRelated(results)

	require.Len(t, related, 1)
	assert.Equal(t, "Cure Wounds can be cast by Clerics", related[0].Relationship)
}

func TestFindRelated_EquipmentClass(t *testing.T) {
	weapons := []domain.SearchResultItem{
		{Name: "Warhammer", Metadata: domain.Metadata{"properties": domain.WeaponProperties{Martial: true}}},
		{Name: "Rapier", Metadata: domain.Metadata{"properties": map[string]any{"finesse": true}}},
		{Name: "Quarterstaff", Metadata: domain.Metadata{"properties": domain.WeaponProperties{}}},
		{Name: "Club"},
	}
	results := map[domain.ContentType]domain.ContentTypeResults{
		domain.ContentWeapons: {Items: weapons},
		domain.ContentClasses: {Items: itemsNamed(domain.ContentClasses, "Fighter", "Rogue", "Wizard", "Bard")},
	}

	related := findRelated(results)

	sentences := make([]string, len(related))
	for i, r := range related {
		assert.Equal(t, domain.RelationEquipmentClass, r.Type)
		sentences[i] = r.Relationship
	}
	assert.Equal(t, []string{
		"Warhammer is well-suited for Fighters",
		"Rapier is well-suited for Rogues",
		"Quarterstaff is well-suited for Wizards",
	}, sentences)
}

func TestFindRelated_CrossReference(t *testing.T) {
	results := map[domain.ContentType]domain.ContentTypeResults{
		domain.ContentSpells: {Items: itemsNamed(domain.ContentSpells, "Acid Arrow", "Bigby's Hand")},
		domain.ContentSpellLists: {Items: []domain.SearchResultItem{
			{Name: "Wizard", Metadata: domain.Metadata{"spells": []string{"acid-arrow", "bigbys-hand"}}},
		}},
	}

	related := findRelated(results)

	require.Len(t, related, 2)
	assert.Equal(t, domain.RelationCrossReference, related[0].Type)
	assert.Equal(t, "Acid Arrow appears on the Wizard spell list", related[0].Relationship)
	assert.Equal(t, "Bigby's Hand appears on the Wizard spell list", related[1].Relationship)
}

func TestFindRelated_CapsAtTen(t *testing.T) {
	var spells []domain.SearchResultItem
	for i := 0; i < 12; i++ {
		spells = append(spells, domain.SearchResultItem{
			Name:     fmt.Sprintf("Spell %d", i),
			Metadata: domain.Metadata{"classes": []string{"Wizard"}},
		})
	}
	results := map[domain.ContentType]domain.ContentTypeResults{
		domain.ContentSpells:  {Items: spells},
		domain.ContentClasses: {Items: itemsNamed(domain.ContentClasses, "Wizard")},
	}

	related := findRelated(results)

	require.Len(t, related, maxRelationships)
	assert.Equal(t, "Spell 0", related[0].Primary.Name)
	assert.Equal(t, "Spell 9", related[9].Primary.Name)
}

func TestFindRelated_NothingToRelate(t *testing.T) {
	related := findRelated(map[domain.ContentType]domain.ContentTypeResults{
		domain.ContentSpells: {Items: itemsNamed(domain.ContentSpells, "Fireball")},
	})

	assert.NotNil(t, related)
	assert.Empty(t, related)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acid-arrow", slugify("Acid Arrow"))
	assert.Equal(t, "bigbys-hand", slugify("Bigby's Hand"))
	assert.Equal(t, "protection-from-evil-and-good", slugify("Protection from Evil and Good"))
	assert.Equal(t, "mordenkainens-sword", slugify("  Mordenkainen's Sword! "))
}
