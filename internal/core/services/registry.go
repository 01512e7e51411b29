package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
)

// Entry is one registry row: the searcher of a content type and the
// extractors that turn its native records into canonical fields.
type Entry[T domain.Record] struct {
	Type     domain.ContentType
	Searcher driven.ReferenceSearcher[T]

	// Describe returns the description text of a record.
	Describe func(T) string

	// Metadata returns the domain-specific properties of a record.
	// Nil means no metadata.
	Metadata func(T) domain.Metadata

	// Filters are passed to the searcher on every call.
	Filters map[string]string
}

// rawRecord is a native record after extraction, before normalization.
type rawRecord struct {
	Name        string
	URL         string
	Description string
	Metadata    domain.Metadata
}

// rawPage is a collaborator response with records extracted.
type rawPage struct {
	Count   int
	HasMore bool
	Records []rawRecord
}

// registryEntry is an Entry with its record type erased.
type registryEntry struct {
	contentType domain.ContentType
	filters     map[string]string
	search      func(ctx context.Context, query string, q domain.DomainQuery) (rawPage, error)
}

func (e Entry[T]) erase() registryEntry {
	return registryEntry{
		contentType: e.Type,
		filters:     copyFilters(e.Filters),
		search: func(ctx context.Context, query string, q domain.DomainQuery) (rawPage, error) {
			page, err := e.Searcher.Search(ctx, query, q)
			if err != nil {
				return rawPage{}, err
			}

			records := make([]rawRecord, 0, len(page.Items))
			for _, item := range page.Items {
				rec := rawRecord{Name: item.RecordName(), URL: item.RecordURL()}
				if e.Describe != nil {
					rec.Description = e.Describe(item)
				}
				if e.Metadata != nil {
					rec.Metadata = e.Metadata(item)
				}
				records = append(records, rec)
			}
			return rawPage{Count: page.Count, HasMore: page.HasMore, Records: records}, nil
		},
	}
}

// DomainRegistry maps content-type tags to their registry rows.
// Adding a domain means registering one Entry.
type DomainRegistry struct {
	mu      sync.RWMutex
	entries map[domain.ContentType]registryEntry
	order   []domain.ContentType
}

// NewDomainRegistry creates a registry with one row per supported content
// type, served by catalog. A nil catalog yields an empty registry.
func NewDomainRegistry(catalog driven.ReferenceCatalog) *DomainRegistry {
	r := &DomainRegistry{entries: make(map[domain.ContentType]registryEntry)}
	if catalog == nil {
		return r
	}

	Register(r, Entry[domain.Spell]{Type: domain.ContentSpells, Searcher: catalog.Spells(), Describe: describeSpell, Metadata: spellMetadata})
	Register(r, Entry[domain.Monster]{Type: domain.ContentMonsters, Searcher: catalog.Monsters(), Describe: describeMonster, Metadata: monsterMetadata})
	Register(r, Entry[domain.Race]{Type: domain.ContentRaces, Searcher: catalog.Races(), Describe: describeRace, Metadata: raceMetadata})
	Register(r, Entry[domain.Class]{Type: domain.ContentClasses, Searcher: catalog.Classes(), Describe: describeClass, Metadata: classMetadata})
	Register(r, Entry[domain.Weapon]{Type: domain.ContentWeapons, Searcher: catalog.Weapons(), Describe: describeWeapon, Metadata: weaponMetadata})
	Register(r, Entry[domain.Armor]{Type: domain.ContentArmor, Searcher: catalog.Armor(), Describe: describeArmor, Metadata: armorMetadata})
	Register(r, Entry[domain.MagicItem]{Type: domain.ContentMagicItems, Searcher: catalog.MagicItems(), Describe: describeMagicItem, Metadata: magicItemMetadata})
	Register(r, Entry[domain.Feat]{Type: domain.ContentFeats, Searcher: catalog.Feats(), Describe: describeFeat, Metadata: featMetadata})
	Register(r, Entry[domain.Condition]{Type: domain.ContentConditions, Searcher: catalog.Conditions(), Describe: describeCondition})
	Register(r, Entry[domain.Background]{Type: domain.ContentBackgrounds, Searcher: catalog.Backgrounds(), Describe: describeBackground})
	Register(r, Entry[domain.Section]{Type: domain.ContentSections, Searcher: catalog.Sections(), Describe: describeSection, Metadata: sectionMetadata})
	Register(r, Entry[domain.SpellList]{Type: domain.ContentSpellLists, Searcher: catalog.SpellLists(), Describe: describeSpellList, Metadata: spellListMetadata})

	return r
}

// Register adds a row to the registry, replacing any row of the same type.
func Register[T domain.Record](r *DomainRegistry, e Entry[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[e.Type]; !exists {
		r.order = append(r.order, e.Type)
	}
	r.entries[e.Type] = e.erase()
}

// Types returns the registered content types in registration order.
func (r *DomainRegistry) Types() []domain.ContentType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ContentType, len(r.order))
	copy(out, r.order)
	return out
}

func (r *DomainRegistry) lookup(ct domain.ContentType) (registryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[ct]
	return e, ok
}

func copyFilters(filters map[string]string) map[string]string {
	if len(filters) == 0 {
		return nil
	}
	out := make(map[string]string, len(filters))
	for k, v := range filters {
		out[k] = v
	}
	return out
}
