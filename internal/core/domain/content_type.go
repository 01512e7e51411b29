package domain

import "strings"

// ContentType identifies a reference-data domain with its own search backend.
type ContentType string

// Supported content types.
const (
	ContentSpells      ContentType = "spells"
	ContentMonsters    ContentType = "monsters"
	ContentRaces       ContentType = "races"
	ContentClasses     ContentType = "classes"
	ContentWeapons     ContentType = "weapons"
	ContentArmor       ContentType = "armor"
	ContentMagicItems  ContentType = "magic-items"
	ContentFeats       ContentType = "feats"
	ContentConditions  ContentType = "conditions"
	ContentBackgrounds ContentType = "backgrounds"
	ContentSections    ContentType = "sections"
	ContentSpellLists  ContentType = "spell-lists"
)

// allContentTypes is the fixed enumeration in its canonical order.
var allContentTypes = []ContentType{
	ContentSpells, ContentMonsters, ContentRaces, ContentClasses,
	ContentWeapons, ContentArmor, ContentMagicItems, ContentFeats,
	ContentConditions, ContentBackgrounds, ContentSections, ContentSpellLists,
}

// AllContentTypes returns every supported content type.
// The returned slice is a copy and may be modified by the caller.
func AllContentTypes() []ContentType {
	out := make([]ContentType, len(allContentTypes))
	copy(out, allContentTypes)
	return out
}

// ParseContentType converts a tag into a ContentType.
// Matching ignores case and surrounding whitespace.
func ParseContentType(tag string) (ContentType, bool) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(tag)))
	return ct, ct.IsValid()
}

// IsValid returns true if the content type is part of the fixed enumeration.
func (c ContentType) IsValid() bool {
	for _, ct := range allContentTypes {
		if ct == c {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (c ContentType) String() string {
	return string(c)
}

// Weight returns the ranking multiplier reflecting how often the domain is
// the intended target of a query. Unknown types weigh 1.0.
func (c ContentType) Weight() float64 {
	switch c {
	case ContentSpells:
		return 1.2
	case ContentMonsters:
		return 1.1
	case ContentClasses, ContentRaces:
		return 1.0
	case ContentMagicItems:
		return 0.9
	case ContentWeapons, ContentArmor:
		return 0.8
	case ContentFeats:
		return 0.7
	case ContentConditions, ContentBackgrounds:
		return 0.6
	case ContentSections, ContentSpellLists:
		return 0.5
	default:
		return 1.0
	}
}

// Description returns a human-readable description of the domain.
func (c ContentType) Description() string {
	switch c {
	case ContentSpells:
		return "Spells with level, school and casting details"
	case ContentMonsters:
		return "Monsters and creatures with challenge ratings"
	case ContentRaces:
		return "Playable races and subraces"
	case ContentClasses:
		return "Character classes and archetypes"
	case ContentWeapons:
		return "Weapons with damage and properties"
	case ContentArmor:
		return "Armor with armor class values"
	case ContentMagicItems:
		return "Magic items by rarity and type"
	case ContentFeats:
		return "Feats and their prerequisites"
	case ContentConditions:
		return "Status conditions"
	case ContentBackgrounds:
		return "Character backgrounds"
	case ContentSections:
		return "Rules text sections"
	case ContentSpellLists:
		return "Class spell lists"
	default:
		return unknownDescription
	}
}
