package open5e

import (
	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.ReferenceCatalog = (*Catalog)(nil)

// raceLimit is the fixed page size for races; larger pages time out upstream.
const raceLimit = 10

// Catalog exposes one searcher per Open5e endpoint.
type Catalog struct {
	spells      *endpoint[spellWire, domain.Spell]
	monsters    *endpoint[monsterWire, domain.Monster]
	races       *endpoint[raceWire, domain.Race]
	classes     *endpoint[classWire, domain.Class]
	weapons     *endpoint[weaponWire, domain.Weapon]
	armor       *endpoint[armorWire, domain.Armor]
	magicItems  *endpoint[magicItemWire, domain.MagicItem]
	feats       *endpoint[featWire, domain.Feat]
	conditions  *endpoint[conditionWire, domain.Condition]
	backgrounds *endpoint[backgroundWire, domain.Background]
	sections    *endpoint[sectionWire, domain.Section]
	spellLists  *endpoint[spellListWire, domain.SpellList]
}

// NewCatalog creates a catalog backed by client.
func NewCatalog(client *Client) *Catalog {
	magicItems := newEndpoint(client, "/v1/magicitems/", searchParams, convertMagicItem)
	magicItems.keep = keepMagicItem

	return &Catalog{
		spells:   newEndpoint(client, "/v1/spells/", searchParams, convertSpell),
		monsters: newEndpoint(client, "/v1/monsters/", searchParams, convertMonster),
		races:    newEndpoint(client, "/v2/races/", fixedLimitParams(raceLimit), convertRace),
		// The classes endpoint has no search; every class comes back.
		classes:     newEndpoint(client, "/v1/classes/", nil, convertClass),
		weapons:     newEndpoint(client, "/v2/weapons/", searchParams, convertWeapon),
		armor:       newEndpoint(client, "/v2/armor/", searchParams, convertArmor),
		magicItems:  magicItems,
		feats:       newEndpoint(client, "/v2/feats/", searchParams, convertFeat),
		conditions:  newEndpoint(client, "/v2/conditions/", searchParams, convertCondition),
		backgrounds: newEndpoint(client, "/v2/backgrounds/", searchParams, convertBackground),
		sections:    newEndpoint(client, "/v1/sections/", searchParams, convertSection),
		spellLists:  newEndpoint(client, "/v1/spelllist/", searchParams, convertSpellList),
	}
}

// Spells implements driven.ReferenceCatalog.
func (c *Catalog) Spells() driven.ReferenceSearcher[domain.Spell] { return c.spells }

// Monsters implements driven.ReferenceCatalog.
func (c *Catalog) Monsters() driven.ReferenceSearcher[domain.Monster] { return c.monsters }

// Races implements driven.ReferenceCatalog.
func (c *Catalog) Races() driven.ReferenceSearcher[domain.Race] { return c.races }

// Classes implements driven.ReferenceCatalog.
func (c *Catalog) Classes() driven.ReferenceSearcher[domain.Class] { return c.classes }

// Weapons implements driven.ReferenceCatalog.
func (c *Catalog) Weapons() driven.ReferenceSearcher[domain.Weapon] { return c.weapons }

// Armor implements driven.ReferenceCatalog.
func (c *Catalog) Armor() driven.ReferenceSearcher[domain.Armor] { return c.armor }

// MagicItems implements driven.ReferenceCatalog.
func (c *Catalog) MagicItems() driven.ReferenceSearcher[domain.MagicItem] { return c.magicItems }

// Feats implements driven.ReferenceCatalog.
func (c *Catalog) Feats() driven.ReferenceSearcher[domain.Feat] { return c.feats }

// Conditions implements driven.ReferenceCatalog.
func (c *Catalog) Conditions() driven.ReferenceSearcher[domain.Condition] { return c.conditions }

// Backgrounds implements driven.ReferenceCatalog.
func (c *Catalog) Backgrounds() driven.ReferenceSearcher[domain.Background] { return c.backgrounds }

// Sections implements driven.ReferenceCatalog.
func (c *Catalog) Sections() driven.ReferenceSearcher[domain.Section] { return c.sections }

// SpellLists implements driven.ReferenceCatalog.
func (c *Catalog) SpellLists() driven.ReferenceSearcher[domain.SpellList] { return c.spellLists }
