package services

import (
	"strings"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

const maxRelationships = 10

// weaponAffinity ties class name keywords to the weapons that suit them.
type weaponAffinity struct {
	classKeywords  []string
	weaponKeywords []string
	suits          func(domain.WeaponProperties) bool
}

var weaponAffinities = []weaponAffinity{
	{
		classKeywords:  []string{"fighter", "paladin"},
		weaponKeywords: []string{"sword", "axe"},
		suits:          func(p domain.WeaponProperties) bool { return p.Martial },
	},
	{
		classKeywords:  []string{"rogue", "ranger"},
		weaponKeywords: []string{"bow", "dagger"},
		suits:          func(p domain.WeaponProperties) bool { return p.Finesse },
	},
	{
		classKeywords:  []string{"wizard", "sorcerer"},
		weaponKeywords: []string{"staff", "wand"},
	},
}

// findRelated applies the known cross-domain rules to items already in the
// response. It never queries a collaborator. First found wins the cap.
func findRelated(results map[domain.ContentType]domain.ContentTypeResults) []domain.RelatedContentItem {
	related := make([]domain.RelatedContentItem, 0)
	emit := func(kind domain.RelationshipKind, primary, secondary domain.SearchResultItem, sentence string) bool {
		if len(related) >= maxRelationships {
			return false
		}
		related = append(related, domain.RelatedContentItem{
			Type:         kind,
			Primary:      primary.Clone(),
			Secondary:    secondary.Clone(),
			Relationship: sentence,
		})
		return true
	}

	spells := results[domain.ContentSpells].Items
	classes := results[domain.ContentClasses].Items
	weapons := results[domain.ContentWeapons].Items
	lists := results[domain.ContentSpellLists].Items

	for _, spell := range spells {
		for _, className := range spell.Metadata.StringSlice("classes") {
			match, ok := findByNameContains(classes, className)
			if !ok {
				continue
			}
			if !emit(domain.RelationSpellClass, spell, match, spell.Name+" can be cast by "+match.Name+"s") {
				return related
			}
		}
	}

	for _, weapon := range weapons {
		for _, cls := range classes {
			if !weaponSuitsClass(weapon, cls) {
				continue
			}
			if !emit(domain.RelationEquipmentClass, weapon, cls, weapon.Name+" is well-suited for "+cls.Name+"s") {
				return related
			}
		}
	}

	for _, spell := range spells {
		slug := slugify(spell.Name)
		for _, list := range lists {
			if !containsString(list.Metadata.StringSlice("spells"), slug) {
				continue
			}
			if !emit(domain.RelationCrossReference, spell, list, spell.Name+" appears on the "+list.Name+" spell list") {
				return related
			}
		}
	}

	return related
}

func findByNameContains(items []domain.SearchResultItem, fragment string) (domain.SearchResultItem, bool) {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return domain.SearchResultItem{}, false
	}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), fragment) {
			return item, true
		}
	}
	return domain.SearchResultItem{}, false
}

func weaponSuitsClass(weapon, cls domain.SearchResultItem) bool {
	weaponName := strings.ToLower(weapon.Name)
	className := strings.ToLower(cls.Name)
	props := weaponProperties(weapon.Metadata)

	for _, a := range weaponAffinities {
		if !containsAny(className, a.classKeywords) {
			continue
		}
		// The first matching class rule decides.
		return (a.suits != nil && a.suits(props)) || containsAny(weaponName, a.weaponKeywords)
	}
	return false
}

// weaponProperties reads the properties metadata, whether typed or decoded
// from JSON.
func weaponProperties(m domain.Metadata) domain.WeaponProperties {
	switch v := m["properties"].(type) {
	case domain.WeaponProperties:
		return v
	case map[string]any:
		martial, _ := v["martial"].(bool)
		finesse, _ := v["finesse"].(bool)
		return domain.WeaponProperties{Martial: martial, Finesse: finesse}
	default:
		return domain.WeaponProperties{}
	}
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// slugify lower-cases a name and joins its words with hyphens, matching
// upstream record slugs such as "acid-arrow".
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == '\'':
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
