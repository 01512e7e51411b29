package open5e

import (
	"strings"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// Wire shapes of the Open5e list endpoints. Only fields the domain records
// use are decoded.

type spellWire struct {
	Slug                  string   `json:"slug"`
	Name                  string   `json:"name"`
	Desc                  string   `json:"desc"`
	HigherLevel           string   `json:"higher_level"`
	Range                 string   `json:"range"`
	Components            string   `json:"components"`
	Material              string   `json:"material"`
	Duration              string   `json:"duration"`
	CastingTime           string   `json:"casting_time"`
	LevelInt              flexInt  `json:"level_int"`
	School                string   `json:"school"`
	DndClass              string   `json:"dnd_class"`
	SpellLists            []string `json:"spell_lists"`
	CanBeCastAsRitual     bool     `json:"can_be_cast_as_ritual"`
	RequiresConcentration bool     `json:"requires_concentration"`
}

func convertSpell(c *Client, w spellWire) domain.Spell {
	desc := w.Desc
	if w.HigherLevel != "" {
		desc += "\n\nAt Higher Levels: " + w.HigherLevel
	}
	return domain.Spell{
		Name:          w.Name,
		Slug:          w.Slug,
		Level:         int(w.LevelInt),
		School:        w.School,
		CastingTime:   w.CastingTime,
		Range:         w.Range,
		Components:    w.Components,
		Duration:      w.Duration,
		Description:   desc,
		Classes:       spellClasses(w.DndClass, w.SpellLists),
		Ritual:        w.CanBeCastAsRitual,
		Concentration: w.RequiresConcentration,
		HigherLevel:   w.HigherLevel,
		Material:      w.Material,
		URL:           c.recordURL("/v1/spells/", w.Slug),
	}
}

// spellClasses merges the comma separated dnd_class field with the
// spell_lists slugs, keeping first-seen order.
func spellClasses(dndClass string, lists []string) []string {
	classes := make([]string, 0, len(lists))
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || seen[strings.ToLower(name)] {
			return
		}
		seen[strings.ToLower(name)] = true
		classes = append(classes, name)
	}

	for _, part := range strings.Split(dndClass, ",") {
		add(strings.TrimSpace(part))
	}
	for _, slug := range lists {
		add(capitalize(slug))
	}
	return classes
}

type monsterWire struct {
	Slug            string     `json:"slug"`
	Name            string     `json:"name"`
	Desc            string     `json:"desc"`
	Size            string     `json:"size"`
	Type            string     `json:"type"`
	Alignment       string     `json:"alignment"`
	ArmorClass      flexInt    `json:"armor_class"`
	HitPoints       flexInt    `json:"hit_points"`
	HitDice         string     `json:"hit_dice"`
	ChallengeRating flexString `json:"challenge_rating"`
	Languages       string     `json:"languages"`
	Senses          string     `json:"senses"`
	URL             string     `json:"url"`
}

func convertMonster(c *Client, w monsterWire) domain.Monster {
	return domain.Monster{
		Name:            w.Name,
		Size:            w.Size,
		Type:            w.Type,
		Alignment:       w.Alignment,
		ArmorClass:      int(w.ArmorClass),
		HitPoints:       int(w.HitPoints),
		HitDice:         w.HitDice,
		ChallengeRating: w.ChallengeRating.String(),
		Languages:       w.Languages,
		Senses:          w.Senses,
		Description:     w.Desc,
		URL:             firstNonEmpty(w.URL, c.recordURL("/v1/monsters/", w.Slug)),
	}
}

type traitWire struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

type raceWire struct {
	Key       string      `json:"key"`
	Name      string      `json:"name"`
	Desc      string      `json:"desc"`
	IsSubrace bool        `json:"is_subrace"`
	SubraceOf flexString  `json:"subrace_of"`
	Traits    []traitWire `json:"traits"`
	URL       string      `json:"url"`
}

func convertRace(_ *Client, w raceWire) domain.Race {
	traits := make([]domain.Trait, 0, len(w.Traits))
	for _, t := range w.Traits {
		traits = append(traits, domain.Trait{Name: t.Name, Description: t.Desc})
	}
	return domain.Race{
		Name:                 w.Name,
		Size:                 traitValue(w.Traits, "size", "Medium"),
		Speed:                traitValue(w.Traits, "speed", "30 feet"),
		AbilityScoreIncrease: traitValue(w.Traits, "ability score", ""),
		Traits:               traits,
		IsSubrace:            w.IsSubrace,
		SubraceOf:            w.SubraceOf.String(),
		Description:          w.Desc,
		URL:                  w.URL,
	}
}

// traitValue returns the description of the first trait whose name or
// description mentions name.
func traitValue(traits []traitWire, name, fallback string) string {
	for _, t := range traits {
		if strings.Contains(strings.ToLower(t.Name), name) || strings.Contains(strings.ToLower(t.Desc), name) {
			return t.Desc
		}
	}
	return fallback
}

type archetypeWire struct {
	Name string `json:"name"`
}

type classWire struct {
	Slug                string          `json:"slug"`
	Name                string          `json:"name"`
	Desc                string          `json:"desc"`
	HitDice             string          `json:"hit_dice"`
	ProfSavingThrows    string          `json:"prof_saving_throws"`
	SpellcastingAbility string          `json:"spellcasting_ability"`
	Archetypes          []archetypeWire `json:"archetypes"`
	URL                 string          `json:"url"`
}

func convertClass(c *Client, w classWire) domain.Class {
	saves := splitList(w.ProfSavingThrows)
	subclasses := make([]string, 0, len(w.Archetypes))
	for _, a := range w.Archetypes {
		subclasses = append(subclasses, a.Name)
	}
	return domain.Class{
		Name:                w.Name,
		HitDie:              w.HitDice,
		PrimaryAbility:      append([]string{}, saves...),
		SavingThrows:        saves,
		SpellcastingAbility: w.SpellcastingAbility,
		Subclasses:          subclasses,
		Description:         w.Desc,
		URL:                 firstNonEmpty(w.URL, c.recordURL("/v1/classes/", w.Slug)),
	}
}

type weaponWire struct {
	Name        string     `json:"name"`
	DamageDice  string     `json:"damage_dice"`
	DamageType  flexString `json:"damage_type"`
	Range       flexString `json:"range"`
	IsMartial   bool       `json:"is_martial"`
	IsMelee     bool       `json:"is_melee"`
	IsRanged    bool       `json:"is_ranged"`
	IsFinesse   bool       `json:"is_finesse"`
	IsLight     bool       `json:"is_light"`
	IsHeavy     bool       `json:"is_heavy"`
	IsTwoHanded bool       `json:"is_two_handed"`
	IsVersatile bool       `json:"is_versatile"`
	URL         string     `json:"url"`
}

func convertWeapon(_ *Client, w weaponWire) domain.Weapon {
	return domain.Weapon{
		Name:       w.Name,
		DamageDice: w.DamageDice,
		DamageType: w.DamageType.String(),
		Range:      w.Range.String(),
		Properties: domain.WeaponProperties{
			Martial:   w.IsMartial,
			Melee:     w.IsMelee,
			Ranged:    w.IsRanged,
			Finesse:   w.IsFinesse,
			Light:     w.IsLight,
			Heavy:     w.IsHeavy,
			TwoHanded: w.IsTwoHanded,
			Versatile: w.IsVersatile,
		},
		URL: w.URL,
	}
}

type armorWire struct {
	Name                      string     `json:"name"`
	Category                  string     `json:"category"`
	ACDisplay                 flexString `json:"ac_display"`
	ACBase                    flexInt    `json:"ac_base"`
	ACAddDexMod               bool       `json:"ac_add_dexmod"`
	GrantsStealthDisadvantage bool       `json:"grants_stealth_disadvantage"`
	StrengthScoreRequired     flexInt    `json:"strength_score_required"`
	Document                  flexString `json:"document"`
	URL                       string     `json:"url"`
}

func convertArmor(_ *Client, w armorWire) domain.Armor {
	return domain.Armor{
		Name:                      w.Name,
		Category:                  w.Category,
		ACDisplay:                 w.ACDisplay.String(),
		ACBase:                    int(w.ACBase),
		ACAddDexMod:               w.ACAddDexMod,
		GrantsStealthDisadvantage: w.GrantsStealthDisadvantage,
		StrengthScoreRequired:     int(w.StrengthScoreRequired),
		Document:                  w.Document.String(),
		URL:                       w.URL,
	}
}

type magicItemWire struct {
	Slug               string     `json:"slug"`
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	Desc               string     `json:"desc"`
	Rarity             string     `json:"rarity"`
	RequiresAttunement flexString `json:"requires_attunement"`
	DocumentSlug       string     `json:"document__slug"`
	DocumentTitle      string     `json:"document__title"`
	DocumentURL        string     `json:"document__url"`
}

// keepMagicItem drops records without a usable name.
func keepMagicItem(w magicItemWire) bool {
	return strings.TrimSpace(w.Name) != ""
}

func convertMagicItem(c *Client, w magicItemWire) domain.MagicItem {
	url := ""
	if w.Slug != "" {
		url = c.recordURL("/v1/magicitems/", w.Slug)
	}
	return domain.MagicItem{
		Name:               w.Name,
		Type:               firstNonEmpty(w.Type, "Unknown Type"),
		Rarity:             firstNonEmpty(w.Rarity, "unknown"),
		RequiresAttunement: w.RequiresAttunement.String(),
		Description:        firstNonEmpty(w.Desc, "No description available"),
		Document:           sourceDocument(w.DocumentSlug, w.DocumentTitle, w.DocumentURL),
		URL:                url,
	}
}

type benefitWire struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Desc string `json:"desc"`
}

type featWire struct {
	Name            string        `json:"name"`
	Desc            string        `json:"desc"`
	Prerequisite    string        `json:"prerequisite"`
	HasPrerequisite bool          `json:"has_prerequisite"`
	Benefits        []benefitWire `json:"benefits"`
	Document        flexString    `json:"document"`
	URL             string        `json:"url"`
}

func convertFeat(_ *Client, w featWire) domain.Feat {
	benefits := make([]string, 0, len(w.Benefits))
	for _, b := range w.Benefits {
		if b.Desc != "" {
			benefits = append(benefits, b.Desc)
		}
	}
	return domain.Feat{
		Name:            w.Name,
		Prerequisite:    w.Prerequisite,
		HasPrerequisite: w.HasPrerequisite,
		Benefits:        benefits,
		Description:     w.Desc,
		Document:        w.Document.String(),
		URL:             w.URL,
	}
}

type conditionWire struct {
	Name     string     `json:"name"`
	Desc     string     `json:"desc"`
	Document flexString `json:"document"`
	URL      string     `json:"url"`
}

func convertCondition(_ *Client, w conditionWire) domain.Condition {
	return domain.Condition{
		Name:        w.Name,
		Description: w.Desc,
		Document:    w.Document.String(),
		URL:         w.URL,
	}
}

type backgroundWire struct {
	Key      string        `json:"key"`
	Name     string        `json:"name"`
	Desc     string        `json:"desc"`
	Benefits []benefitWire `json:"benefits"`
	Document flexString    `json:"document"`
	URL      string        `json:"url"`
}

func convertBackground(_ *Client, w backgroundWire) domain.Background {
	benefits := make([]domain.Benefit, 0, len(w.Benefits))
	for _, b := range w.Benefits {
		benefits = append(benefits, domain.Benefit{Name: b.Name, Type: b.Type, Description: b.Desc})
	}
	return domain.Background{
		Name:        w.Name,
		Key:         w.Key,
		Benefits:    benefits,
		Description: firstNonEmpty(w.Desc, "No description available"),
		Document:    w.Document.String(),
		URL:         w.URL,
	}
}

type sectionWire struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Desc          string `json:"desc"`
	Parent        string `json:"parent"`
	DocumentSlug  string `json:"document__slug"`
	DocumentTitle string `json:"document__title"`
}

func convertSection(c *Client, w sectionWire) domain.Section {
	return domain.Section{
		Slug:        w.Slug,
		Name:        w.Name,
		Parent:      w.Parent,
		Description: firstNonEmpty(w.Desc, "No description available"),
		Document:    firstNonEmpty(w.DocumentTitle, w.DocumentSlug),
		URL:         c.recordURL("/v1/sections/", w.Slug),
	}
}

type spellListWire struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Desc          string   `json:"desc"`
	Spells        []string `json:"spells"`
	DocumentSlug  string   `json:"document__slug"`
	DocumentTitle string   `json:"document__title"`
	DocumentURL   string   `json:"document__url"`
}

func convertSpellList(c *Client, w spellListWire) domain.SpellList {
	spells := w.Spells
	if spells == nil {
		spells = []string{}
	}
	return domain.SpellList{
		Slug:        w.Slug,
		Name:        firstNonEmpty(w.Name, capitalize(w.Slug)),
		Spells:      spells,
		Description: w.Desc,
		Document:    sourceDocument(w.DocumentSlug, w.DocumentTitle, w.DocumentURL),
		URL:         c.recordURL("/v1/spelllist/", w.Slug),
	}
}

func sourceDocument(slug, title, url string) domain.SourceDocument {
	return domain.SourceDocument{
		Slug:  slug,
		Title: firstNonEmpty(title, "Unknown Source"),
		URL:   url,
	}
}

// recordURL returns the detail URL of a v1 record, or "" without a slug.
func (c *Client) recordURL(path, slug string) string {
	if slug == "" {
		return ""
	}
	return c.baseURL + path + slug + "/"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
