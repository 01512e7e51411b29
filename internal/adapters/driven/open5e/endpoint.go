package open5e

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
)

// listResponse is the paginated envelope shared by every list endpoint.
type listResponse[W any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results *[]W    `json:"results"`
}

// endpoint searches one Open5e list endpoint and converts its wire records
// of type W into domain records of type T.
type endpoint[W any, T domain.Record] struct {
	client *Client
	path   string
	// params builds the request parameters; nil sends only filters.
	params  func(query string, q domain.DomainQuery) map[string]any
	keep    func(W) bool
	convert func(*Client, W) T
}

func newEndpoint[W any, T domain.Record](
	client *Client,
	path string,
	params func(string, domain.DomainQuery) map[string]any,
	convert func(*Client, W) T,
) *endpoint[W, T] {
	return &endpoint[W, T]{client: client, path: path, params: params, convert: convert}
}

// Search implements driven.ReferenceSearcher.
func (e *endpoint[W, T]) Search(ctx context.Context, query string, q domain.DomainQuery) (domain.Page[T], error) {
	params := make(map[string]any, len(q.Filters)+2)
	for k, v := range q.Filters {
		params[k] = v
	}
	if e.params != nil {
		for k, v := range e.params(query, q) {
			params[k] = v
		}
	}

	body, err := e.client.get(ctx, e.path, params)
	if err != nil {
		return domain.Page[T]{}, err
	}

	var resp listResponse[W]
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Page[T]{}, fmt.Errorf("%w: %s: %v", ErrInvalidResponse, e.path, err)
	}
	if resp.Results == nil {
		return domain.Page[T]{}, fmt.Errorf("%w: %s: missing results", ErrInvalidResponse, e.path)
	}

	items := make([]T, 0, len(*resp.Results))
	for _, w := range *resp.Results {
		if e.keep != nil && !e.keep(w) {
			continue
		}
		items = append(items, e.convert(e.client, w))
	}

	return domain.Page[T]{
		Count:   resp.Count,
		Items:   items,
		HasMore: resp.Next != nil,
	}, nil
}

// searchParams sends the query as search and the requested limit.
func searchParams(query string, q domain.DomainQuery) map[string]any {
	params := map[string]any{"search": query}
	if q.Limit > 0 {
		params["limit"] = q.Limit
	}
	return params
}

// fixedLimitParams sends the query with a fixed page size.
func fixedLimitParams(limit int) func(string, domain.DomainQuery) map[string]any {
	return func(query string, _ domain.DomainQuery) map[string]any {
		return map[string]any{"search": query, "limit": limit}
	}
}

var _ driven.ReferenceSearcher[domain.Spell] = (*endpoint[spellWire, domain.Spell])(nil)
