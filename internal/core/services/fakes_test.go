package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
)

// fakeSearcher is a ReferenceSearcher with call counting and fault injection.
// By default it returns records whose name contains the query.
type fakeSearcher[T domain.Record] struct {
	mu       sync.Mutex
	records  []T
	count    int
	hasMore  bool
	matchAll bool
	err      error
	panicMsg string
	calls    int
	queries  []domain.DomainQuery
}

func newFakeSearcher[T domain.Record](records ...T) *fakeSearcher[T] {
	return &fakeSearcher[T]{records: records}
}

func (f *fakeSearcher[T]) Search(_ context.Context, query string, q domain.DomainQuery) (domain.Page[T], error) {
	f.mu.Lock()
	f.calls++
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.err != nil {
		return domain.Page[T]{}, f.err
	}

	items := make([]T, 0, len(f.records))
	for _, r := range f.records {
		if f.matchAll || strings.Contains(strings.ToLower(r.RecordName()), strings.ToLower(query)) {
			items = append(items, r)
		}
	}
	if q.Limit > 0 && len(items) > q.Limit {
		items = items[:q.Limit]
	}
	return domain.Page[T]{Count: f.count, Items: items, HasMore: f.hasMore}, nil
}

func (f *fakeSearcher[T]) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeCatalog serves fixture data for every domain.
type fakeCatalog struct {
	spells      *fakeSearcher[domain.Spell]
	monsters    *fakeSearcher[domain.Monster]
	races       *fakeSearcher[domain.Race]
	classes     *fakeSearcher[domain.Class]
	weapons     *fakeSearcher[domain.Weapon]
	armor       *fakeSearcher[domain.Armor]
	magicItems  *fakeSearcher[domain.MagicItem]
	feats       *fakeSearcher[domain.Feat]
	conditions  *fakeSearcher[domain.Condition]
	backgrounds *fakeSearcher[domain.Background]
	sections    *fakeSearcher[domain.Section]
	spellLists  *fakeSearcher[domain.SpellList]
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		spells: newFakeSearcher(
			domain.Spell{Name: "Fire Bolt", Level: 0, School: "Evocation", Classes: []string{"Sorcerer", "Wizard"},
				Description: "You hurl a mote of fire at a creature or object within range."},
			domain.Spell{Name: "Fireball", Level: 3, School: "Evocation", Classes: []string{"Sorcerer", "Wizard"},
				Description: "A bright streak flashes from your pointing finger to a point you choose and then blossoms into an explosion of flame."},
			domain.Spell{Name: "Delayed Blast Fireball", Level: 7, School: "Evocation", Classes: []string{"Sorcerer", "Wizard"},
				Description: "A beam of yellow light flashes from your pointing finger."},
			domain.Spell{Name: "Cure Wounds", Level: 1, School: "Evocation", Classes: []string{"Bard", "Cleric"},
				Description: "A creature you touch regains hit points."},
		),
		monsters: newFakeSearcher(
			domain.Monster{Name: "Adult Red Dragon", Type: "dragon", Size: "Huge", ChallengeRating: "17",
				Description: "The most covetous of the true dragons."},
			domain.Monster{Name: "Fire Elemental", Type: "elemental", Size: "Large", ChallengeRating: "5"},
		),
		races: newFakeSearcher(
			domain.Race{Name: "Dwarf", Size: "Medium", Speed: "25", Traits: []domain.Trait{{Name: "Darkvision"}}},
		),
		classes: newFakeSearcher(
			domain.Class{Name: "Wizard", HitDie: "1d6", Description: "A scholarly magic-user."},
			domain.Class{Name: "Fighter", HitDie: "1d10", Description: "A master of martial combat."},
		),
		weapons: newFakeSearcher(
			domain.Weapon{Name: "Longsword", DamageDice: "1d8", DamageType: "slashing",
				Properties: domain.WeaponProperties{Martial: true, Melee: true, Versatile: true}},
			domain.Weapon{Name: "Shortsword", DamageDice: "1d6", DamageType: "piercing",
				Properties: domain.WeaponProperties{Martial: true, Melee: true, Finesse: true, Light: true}},
			domain.Weapon{Name: "Quarterstaff", DamageDice: "1d6", DamageType: "bludgeoning",
				Properties: domain.WeaponProperties{Melee: true, Versatile: true}},
		),
		armor: newFakeSearcher(
			domain.Armor{Name: "Chain Mail", Category: "heavy", ACDisplay: "16", ACBase: 16},
		),
		magicItems: newFakeSearcher(
			domain.MagicItem{Name: "Sword of Sharpness", Type: "Weapon (any sword that deals slashing damage)",
				Rarity: "very rare", RequiresAttunement: "requires attunement",
				Description: "When you attack an object with this magic sword and hit, maximize your weapon damage dice."},
			domain.MagicItem{Name: "Bag of Holding", Type: "Wondrous item", Rarity: "uncommon",
				Description: "This bag has an interior space considerably larger than its outside dimensions."},
		),
		feats: newFakeSearcher(
			domain.Feat{Name: "Great Weapon Master", Description: "You've learned to put the weight of a weapon to your advantage."},
		),
		conditions: newFakeSearcher(
			domain.Condition{Name: "Blinded", Description: "A blinded creature can't see."},
		),
		backgrounds: newFakeSearcher(
			domain.Background{Name: "Sage", Description: "You spent years learning the lore of the multiverse."},
		),
		sections: newFakeSearcher(
			domain.Section{Name: "Fire Damage", Parent: "Combat", Description: "Fire damage burns."},
		),
		spellLists: newFakeSearcher(
			domain.SpellList{Name: "Wizard", Slug: "wizard", Spells: []string{"fire-bolt", "fireball"}},
		),
	}
}

func (c *fakeCatalog) Spells() driven.ReferenceSearcher[domain.Spell] { return c.spells }
func (c *fakeCatalog) Monsters() driven.ReferenceSearcher[domain.Monster] { return c.monsters }
func (c *fakeCatalog) Races() driven.ReferenceSearcher[domain.Race] { return c.races }
func (c *fakeCatalog) Classes() driven.ReferenceSearcher[domain.Class] { return c.classes }
func (c *fakeCatalog) Weapons() driven.ReferenceSearcher[domain.Weapon] { return c.weapons }
func (c *fakeCatalog) Armor() driven.ReferenceSearcher[domain.Armor] { return c.armor }
func (c *fakeCatalog) MagicItems() driven.ReferenceSearcher[domain.MagicItem] { return c.magicItems }
func (c *fakeCatalog) Feats() driven.ReferenceSearcher[domain.Feat] { return c.feats }
func (c *fakeCatalog) Conditions() driven.ReferenceSearcher[domain.Condition] { return c.conditions }
func (c *fakeCatalog) Backgrounds() driven.ReferenceSearcher[domain.Background] { return c.backgrounds }
func (c *fakeCatalog) Sections() driven.ReferenceSearcher[domain.Section] { return c.sections }
func (c *fakeCatalog) SpellLists() driven.ReferenceSearcher[domain.SpellList] { return c.spellLists }

// totalCalls sums the calls made to every searcher.
func (c *fakeCatalog) totalCalls() int {
	return c.spells.Calls() + c.monsters.Calls() + c.races.Calls() + c.classes.Calls() +
		c.weapons.Calls() + c.armor.Calls() + c.magicItems.Calls() + c.feats.Calls() +
		c.conditions.Calls() + c.backgrounds.Calls() + c.sections.Calls() + c.spellLists.Calls()
}

// fakeCache is a map-backed ResultCache that copies on write and read.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]*domain.UnifiedSearchResult
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	hits    int64
	misses  int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string]*domain.UnifiedSearchResult),
		ttls:    make(map[string]time.Duration),
	}
}

func (c *fakeCache) Get(_ context.Context, key string) (*domain.UnifiedSearchResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	r, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false, nil
	}
	c.hits++
	return r.Clone(), true, nil
}

func (c *fakeCache) Set(_ context.Context, key string, r *domain.UnifiedSearchResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = r.Clone()
	c.ttls[key] = ttl
	return nil
}

func (c *fakeCache) Flush(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries = make(map[string]*domain.UnifiedSearchResult)
	return nil
}

func (c *fakeCache) Stats(context.Context) (domain.CacheStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return domain.CacheStats{}, c.getErr
	}
	return domain.CacheStats{Backend: "fake", Hits: c.hits, Misses: c.misses, Keys: len(c.entries)}, nil
}

// recordingObserver records every event.
type recordingObserver struct {
	mu       sync.Mutex
	domains  map[domain.ContentType]int
	failures map[domain.ContentType]int
	lookups  []bool
	searches int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		domains:  make(map[domain.ContentType]int),
		failures: make(map[domain.ContentType]int),
	}
}

func (o *recordingObserver) DomainSearched(ct domain.ContentType, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.domains[ct]++
	if err != nil {
		o.failures[ct]++
	}
}

func (o *recordingObserver) CacheLookup(hit bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lookups = append(o.lookups, hit)
}

func (o *recordingObserver) UnifiedSearched(time.Duration, int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.searches++
}

var errBackendDown = errors.New("backend down")

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool { return &v }
