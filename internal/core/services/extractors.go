package services

import "github.com/custodia-labs/lorequery/internal/core/domain"

// Extractors enumerate exactly the record fields they read.

func describeSpell(s domain.Spell) string { return s.Description }

func spellMetadata(s domain.Spell) domain.Metadata {
	return domain.Metadata{
		"level":       s.Level,
		"school":      s.School,
		"castingTime": s.CastingTime,
		"range":       s.Range,
		"components":  s.Components,
		"duration":    s.Duration,
		"classes":     append([]string{}, s.Classes...),
	}
}

func describeMonster(m domain.Monster) string { return m.Description }

func monsterMetadata(m domain.Monster) domain.Metadata {
	return domain.Metadata{
		"challengeRating": m.ChallengeRating,
		"type":            m.Type,
		"size":            m.Size,
		"alignment":       m.Alignment,
		"armorClass":      m.ArmorClass,
		"hitPoints":       m.HitPoints,
	}
}

func describeRace(r domain.Race) string { return r.Description }

func raceMetadata(r domain.Race) domain.Metadata {
	return domain.Metadata{
		"size":   r.Size,
		"speed":  r.Speed,
		"traits": r.TraitNames(),
	}
}

func describeClass(c domain.Class) string { return c.Description }

func classMetadata(c domain.Class) domain.Metadata {
	return domain.Metadata{
		"hitDie":         c.HitDie,
		"primaryAbility": append([]string{}, c.PrimaryAbility...),
		"savingThrows":   append([]string{}, c.SavingThrows...),
	}
}

// Weapons carry no prose upstream; the description is built from stats.
func describeWeapon(w domain.Weapon) string {
	desc := w.DamageDice
	if w.DamageType != "" {
		desc += " " + w.DamageType
	}
	if desc == "" {
		return ""
	}
	return desc + " damage"
}

func weaponMetadata(w domain.Weapon) domain.Metadata {
	return domain.Metadata{
		"damageDice": w.DamageDice,
		"damageType": w.DamageType,
		"properties": w.Properties,
	}
}

func describeArmor(a domain.Armor) string {
	if a.ACDisplay == "" {
		return a.Category
	}
	return a.Category + " armor, AC " + a.ACDisplay
}

func armorMetadata(a domain.Armor) domain.Metadata {
	return domain.Metadata{
		"category": a.Category,
		"acBase":   a.ACBase,
	}
}

func describeMagicItem(m domain.MagicItem) string { return m.Description }

func magicItemMetadata(m domain.MagicItem) domain.Metadata {
	return domain.Metadata{
		"type":               m.Type,
		"rarity":             m.Rarity,
		"requiresAttunement": m.RequiresAttunement,
	}
}

func describeFeat(f domain.Feat) string { return f.Description }

func featMetadata(f domain.Feat) domain.Metadata {
	return domain.Metadata{
		"prerequisite":    f.Prerequisite,
		"hasPrerequisite": f.HasPrerequisite,
	}
}

func describeCondition(c domain.Condition) string { return c.Description }

func describeBackground(b domain.Background) string { return b.Description }

func describeSection(s domain.Section) string { return s.Description }

func sectionMetadata(s domain.Section) domain.Metadata {
	return domain.Metadata{"parent": s.Parent}
}

func describeSpellList(l domain.SpellList) string {
	if l.Description != "" {
		return l.Description
	}
	return "Spell list for " + l.Name
}

func spellListMetadata(l domain.SpellList) domain.Metadata {
	return domain.Metadata{
		"spellCount": len(l.Spells),
		"spells":     append([]string{}, l.Spells...),
	}
}
