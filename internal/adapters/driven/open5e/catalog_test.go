package open5e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

const spellsBody = `{
  "count": 3,
  "next": "https://api.open5e.com/v1/spells/?page=2&search=fire",
  "results": [{
    "slug": "fireball",
    "name": "Fireball",
    "desc": "A bright streak flashes from your pointing finger.",
    "higher_level": "The damage increases by 1d6 for each slot level above 3rd.",
    "range": "150 feet",
    "components": "V, S, M",
    "material": "A tiny ball of bat guano and sulfur.",
    "duration": "Instantaneous",
    "casting_time": "1 action",
    "level_int": 3,
    "school": "Evocation",
    "dnd_class": "Sorcerer, Wizard",
    "spell_lists": ["sorcerer", "wizard", "warlock"],
    "can_be_cast_as_ritual": false,
    "requires_concentration": false
  }]
}`

func TestCatalog_Spells(t *testing.T) {
	_, srv := newFakeAPI(t, map[string]string{"/v1/spells/": spellsBody})
	catalog := NewCatalog(newTestClient(srv.URL))

	page, err := catalog.Spells().Search(context.Background(), "fire", domain.DomainQuery{Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, 3, page.Count)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 1)

	spell := page.Items[0]
	assert.Equal(t, "Fireball", spell.Name)
	assert.Equal(t, 3, spell.Level)
	assert.Equal(t, []string{"Sorcerer", "Wizard", "Warlock"}, spell.Classes)
	assert.Equal(t, srv.URL+"/v1/spells/fireball/", spell.URL)
	assert.Contains(t, spell.Description, "\n\nAt Higher Levels: The damage increases")
	assert.Equal(t, "A tiny ball of bat guano and sulfur.", spell.Material)
}

func TestCatalog_Monsters(t *testing.T) {
	body := `{"count":1,"next":null,"results":[{
		"slug":"adult-red-dragon","name":"Adult Red Dragon","size":"Huge","type":"dragon",
		"alignment":"chaotic evil","armor_class":19,"hit_points":256,"hit_dice":"19d12+133",
		"challenge_rating":"17","languages":"Common, Draconic","senses":"blindsight 60 ft.","desc":""}]}`
	_, srv := newFakeAPI(t, map[string]string{"/v1/monsters/": body})
	catalog := NewCatalog(newTestClient(srv.URL))

	page, err := catalog.Monsters().Search(context.Background(), "dragon", domain.DomainQuery{Limit: 5})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.False(t, page.HasMore)
	assert.Equal(t, domain.Monster{
		Name:            "Adult Red Dragon",
		Size:            "Huge",
		Type:            "dragon",
		Alignment:       "chaotic evil",
		ArmorClass:      19,
		HitPoints:       256,
		HitDice:         "19d12+133",
		ChallengeRating: "17",
		Languages:       "Common, Draconic",
		Senses:          "blindsight 60 ft.",
		URL:             srv.URL + "/v1/monsters/adult-red-dragon/",
	}, page.Items[0])
}

func TestCatalog_RacesUseFixedLimit(t *testing.T) {
	body := `{"count":1,"next":null,"results":[{
		"key":"dwarf","name":"Dwarf","desc":"Bold and hardy.","is_subrace":false,"subrace_of":null,
		"url":"https://api.open5e.com/v2/races/dwarf/",
		"traits":[
			{"name":"Ability Score Increase","desc":"Your Constitution score increases by 2."},
			{"name":"Speed","desc":"Your base walking speed is 25 feet."},
			{"name":"Darkvision","desc":"You can see in dim light within 60 feet."}
		]}]}`
	api, srv := newFakeAPI(t, map[string]string{"/v2/races/": body})
	catalog := NewCatalog(newTestClient(srv.URL))

	page, err := catalog.Races().Search(context.Background(), "dwarf", domain.DomainQuery{Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, "10", api.last().URL.Query().Get("limit"))
	require.Len(t, page.Items, 1)
	race := page.Items[0]
	assert.Equal(t, "Your base walking speed is 25 feet.", race.Speed)
	assert.Equal(t, "Your Constitution score increases by 2.", race.AbilityScoreIncrease)
	assert.Equal(t, "Medium", race.Size)
	assert.Equal(t, []string{"Ability Score Increase", "Speed", "Darkvision"}, race.TraitNames())
}

func TestCatalog_ClassesSendNoQuery(t *testing.T) {
	body := `{"count":2,"next":null,"results":[
		{"slug":"wizard","name":"Wizard","desc":"A scholarly magic-user.","hit_dice":"1d6",
		 "prof_saving_throws":"Intelligence, Wisdom","spellcasting_ability":"Intelligence",
		 "archetypes":[{"name":"School of Evocation"}]},
		{"slug":"fighter","name":"Fighter","hit_dice":"1d10","prof_saving_throws":"Strength, Constitution"}]}`
	api, srv := newFakeAPI(t, map[string]string{"/v1/classes/": body})
	catalog := NewCatalog(newTestClient(srv.URL))

	page, err := catalog.Classes().Search(context.Background(), "wizard", domain.DomainQuery{Limit: 5})
	require.NoError(t, err)

	assert.Empty(t, api.last().URL.RawQuery)
	require.Len(t, page.Items, 2)
	wizard := page.Items[0]
	assert.Equal(t, []string{"Intelligence", "Wisdom"}, wizard.SavingThrows)
	assert.Equal(t, []string{"School of Evocation"}, wizard.Subclasses)
	assert.Equal(t, srv.URL+"/v1/classes/wizard/", wizard.URL)
	assert.Equal(t, "1d10", page.Items[1].HitDie)
}

func TestCatalog_WeaponsAndArmor(t *testing.T) {
	_, srv := newFakeAPI(t, map[string]string{
		"/v2/weapons/": `{"count":1,"results":[{"name":"Longsword","damage_dice":"1d8",
			"damage_type":{"name":"Slashing","key":"slashing"},"range":0,
			"is_martial":true,"is_melee":true,"is_versatile":true,"url":"https://api.open5e.com/v2/weapons/srd_longsword/"}]}`,
		"/v2/armor/": `{"count":1,"results":[{"name":"Chain Mail","category":"heavy","ac_display":"16",
			"ac_base":16,"ac_add_dexmod":false,"grants_stealth_disadvantage":true,
			"strength_score_required":13,"document":{"name":"System Reference Document","key":"srd"},
			"url":"https://api.open5e.com/v2/armor/srd_chain-mail/"}]}`,
	})
	catalog := NewCatalog(newTestClient(srv.URL))

	weapons, err := catalog.Weapons().Search(context.Background(), "sword", domain.DomainQuery{})
	require.NoError(t, err)
	require.Len(t, weapons.Items, 1)
	assert.Equal(t, "Slashing", weapons.Items[0].DamageType)
	assert.Equal(t, "0", weapons.Items[0].Range)
	assert.Equal(t, domain.WeaponProperties{Martial: true, Melee: true, Versatile: true}, weapons.Items[0].Properties)

	armor, err := catalog.Armor().Search(context.Background(), "chain", domain.DomainQuery{})
	require.NoError(t, err)
	require.Len(t, armor.Items, 1)
	assert.Equal(t, 16, armor.Items[0].ACBase)
	assert.Equal(t, 13, armor.Items[0].StrengthScoreRequired)
	assert.True(t, armor.Items[0].GrantsStealthDisadvantage)
	assert.Equal(t, "System Reference Document", armor.Items[0].Document)
}

func TestCatalog_MagicItemsSkipNameless(t *testing.T) {
	body := `{"count":3,"results":[
		{"slug":"bag-of-holding","name":"Bag of Holding","type":"Wondrous item","rarity":"uncommon",
		 "desc":"Roomy.","requires_attunement":"","document__slug":"wotc-srd","document__title":"5e Core Rules"},
		{"slug":"broken","name":"  "},
		{"name":"Mystery Orb"}]}`
	_, srv := newFakeAPI(t, map[string]string{"/v1/magicitems/": body})
	catalog := NewCatalog(newTestClient(srv.URL))

	page, err := catalog.MagicItems().Search(context.Background(), "", domain.DomainQuery{})
	require.NoError(t, err)

	assert.Equal(t, 3, page.Count)
	require.Len(t, page.Items, 2)
	assert.Equal(t, domain.SourceDocument{Slug: "wotc-srd", Title: "5e Core Rules"}, page.Items[0].Document)
	assert.Equal(t, srv.URL+"/v1/magicitems/bag-of-holding/", page.Items[0].URL)

	orb := page.Items[1]
	assert.Equal(t, "Unknown Type", orb.Type)
	assert.Equal(t, "unknown", orb.Rarity)
	assert.Equal(t, "No description available", orb.Description)
	assert.Equal(t, "Unknown Source", orb.Document.Title)
	assert.Empty(t, orb.URL)
}

func TestCatalog_FeatsConditionsBackgrounds(t *testing.T) {
	_, srv := newFakeAPI(t, map[string]string{
		"/v2/feats/": `{"count":1,"results":[{"name":"Grappler","desc":"You've developed the skills.",
			"prerequisite":"Strength 13 or higher","has_prerequisite":true,
			"benefits":[{"desc":"You have advantage on attack rolls."},{"desc":""}],
			"document":"https://api.open5e.com/v2/documents/srd/"}]}`,
		"/v2/conditions/":  `{"count":1,"results":[{"name":"Blinded","desc":"A blinded creature can't see.","document":{"name":"SRD"}}]}`,
		"/v2/backgrounds/": `{"count":1,"results":[{"key":"srd_acolyte","name":"Acolyte","benefits":[{"name":"Shelter","type":"feature","desc":"You command respect."}]}]}`,
	})
	catalog := NewCatalog(newTestClient(srv.URL))
	ctx := context.Background()

	feats, err := catalog.Feats().Search(ctx, "grap", domain.DomainQuery{})
	require.NoError(t, err)
	require.Len(t, feats.Items, 1)
	assert.Equal(t, []string{"You have advantage on attack rolls."}, feats.Items[0].Benefits)
	assert.True(t, feats.Items[0].HasPrerequisite)
	assert.Equal(t, "https://api.open5e.com/v2/documents/srd/", feats.Items[0].Document)

	conditions, err := catalog.Conditions().Search(ctx, "blind", domain.DomainQuery{})
	require.NoError(t, err)
	require.Len(t, conditions.Items, 1)
	assert.Equal(t, "SRD", conditions.Items[0].Document)

	backgrounds, err := catalog.Backgrounds().Search(ctx, "acolyte", domain.DomainQuery{})
	require.NoError(t, err)
	require.Len(t, backgrounds.Items, 1)
	bg := backgrounds.Items[0]
	assert.Equal(t, "srd_acolyte", bg.Key)
	assert.Equal(t, "No description available", bg.Description)
	assert.Equal(t, "You command respect.", bg.Benefit("feature"))
}

func TestCatalog_SectionsAndSpellLists(t *testing.T) {
	_, srv := newFakeAPI(t, map[string]string{
		"/v1/sections/":  `{"count":1,"results":[{"slug":"combat","name":"Combat","parent":"Rules","document__slug":"wotc-srd"}]}`,
		"/v1/spelllist/": `{"count":1,"results":[{"slug":"wizard","spells":["fire-bolt","fireball"]},{"slug":"bard","name":"Bard"}]}`,
	})
	catalog := NewCatalog(newTestClient(srv.URL))
	ctx := context.Background()

	sections, err := catalog.Sections().Search(ctx, "combat", domain.DomainQuery{})
	require.NoError(t, err)
	require.Len(t, sections.Items, 1)
	assert.Equal(t, "Rules", sections.Items[0].Parent)
	assert.Equal(t, "wotc-srd", sections.Items[0].Document)
	assert.Equal(t, srv.URL+"/v1/sections/combat/", sections.Items[0].URL)

	lists, err := catalog.SpellLists().Search(ctx, "", domain.DomainQuery{})
	require.NoError(t, err)
	require.Len(t, lists.Items, 2)
	assert.Equal(t, "Wizard", lists.Items[0].Name)
	assert.Equal(t, []string{"fire-bolt", "fireball"}, lists.Items[0].Spells)
	assert.Equal(t, []string{}, lists.Items[1].Spells)
}

func TestSpellClasses(t *testing.T) {
	assert.Equal(t, []string{"Bard", "Cleric"}, spellClasses(" Bard,Cleric ,", []string{"bard", "cleric"}))
	assert.Equal(t, []string{"Druid"}, spellClasses("", []string{"druid"}))
	assert.Empty(t, spellClasses("", nil))
}
