package driven

import (
	"context"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// ReferenceSearcher searches a single reference-data domain.
// Implementations return an empty page when nothing matches and an error
// only for transport or decoding failures.
type ReferenceSearcher[T domain.Record] interface {
	Search(ctx context.Context, query string, q domain.DomainQuery) (domain.Page[T], error)
}

// ReferenceCatalog exposes the searcher of every supported domain.
type ReferenceCatalog interface {
	Spells() ReferenceSearcher[domain.Spell]
	Monsters() ReferenceSearcher[domain.Monster]
	Races() ReferenceSearcher[domain.Race]
	Classes() ReferenceSearcher[domain.Class]
	Weapons() ReferenceSearcher[domain.Weapon]
	Armor() ReferenceSearcher[domain.Armor]
	MagicItems() ReferenceSearcher[domain.MagicItem]
	Feats() ReferenceSearcher[domain.Feat]
	Conditions() ReferenceSearcher[domain.Condition]
	Backgrounds() ReferenceSearcher[domain.Background]
	Sections() ReferenceSearcher[domain.Section]
	SpellLists() ReferenceSearcher[domain.SpellList]
}

// SearcherFunc adapts a function to the ReferenceSearcher interface.
type SearcherFunc[T domain.Record] func(ctx context.Context, query string, q domain.DomainQuery) (domain.Page[T], error)

// Search calls f.
func (f SearcherFunc[T]) Search(ctx context.Context, query string, q domain.DomainQuery) (domain.Page[T], error) {
	return f(ctx, query, q)
}
