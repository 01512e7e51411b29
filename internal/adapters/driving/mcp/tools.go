package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// UnifiedSearchInput is the input schema for the unified_search tool.
type UnifiedSearchInput struct {
	Query          string   `json:"query" jsonschema:"text to search for across D&D 5e content"`
	ContentTypes   []string `json:"content_types,omitempty" jsonschema:"content types to search (spells, monsters, races, classes, weapons, armor, magic-items, feats, conditions, backgrounds, sections, spell-lists); all when omitted"`
	Limit          *int     `json:"limit,omitempty" jsonschema:"maximum results per content type, 1 to 20 (default 5)"`
	IncludeDetails *bool    `json:"include_details,omitempty" jsonschema:"return full descriptions instead of previews (default false)"`
	FuzzyThreshold *float64 `json:"fuzzy_threshold,omitempty" jsonschema:"maximum fuzzy distance, 0 to 1; 1 disables fuzzy matching (default 0.3)"`
	SortBy         string   `json:"sort_by,omitempty" jsonschema:"ordering within each type: relevance, name or type (default relevance)"`
}

// UnifiedSearchOutput is the output schema for the unified_search tool.
type UnifiedSearchOutput struct {
	Query          string                               `json:"query"`
	TotalResults   int                                  `json:"totalResults"`
	ExecutionTime  string                               `json:"executionTime"`
	Results        map[string]domain.ContentTypeResults `json:"results"`
	Suggestions    []string                             `json:"suggestions"`
	RelatedContent []domain.RelatedContentItem          `json:"relatedContent"`
}

// ClearCacheInput is the input schema for the clear_search_cache tool.
type ClearCacheInput struct{}

// ClearCacheOutput is the output schema for the clear_search_cache tool.
type ClearCacheOutput struct {
	Cleared bool   `json:"cleared"`
	Backend string `json:"backend"`
	Evicted int    `json:"evicted"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "unified_search",
		Description: "Search every D&D 5e content type at once with fuzzy matching, " +
			"relevance ranking, suggestions and cross-type relationships",
	}, s.handleUnifiedSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_search_cache",
		Description: "Drop every cached unified search result",
	}, s.handleClearCache)
}

// handleUnifiedSearch handles the unified_search tool invocation.
func (s *Server) handleUnifiedSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UnifiedSearchInput,
) (*mcp.CallToolResult, UnifiedSearchOutput, error) {
	result, err := s.ports.Search.UnifiedSearch(ctx, domain.SearchRequest{
		Query:          input.Query,
		ContentTypes:   input.ContentTypes,
		Limit:          input.Limit,
		IncludeDetails: input.IncludeDetails,
		FuzzyThreshold: input.FuzzyThreshold,
		SortBy:         input.SortBy,
	})
	if err != nil {
		return nil, UnifiedSearchOutput{}, err
	}

	return nil, toOutput(result), nil
}

// handleClearCache handles the clear_search_cache tool invocation.
func (s *Server) handleClearCache(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ClearCacheInput,
) (*mcp.CallToolResult, ClearCacheOutput, error) {
	before, err := s.ports.Search.CacheStats(ctx)
	if err != nil {
		return nil, ClearCacheOutput{}, err
	}
	if err := s.ports.Search.ClearCache(ctx); err != nil {
		return nil, ClearCacheOutput{}, err
	}
	return nil, ClearCacheOutput{Cleared: true, Backend: before.Backend, Evicted: before.Keys}, nil
}

func toOutput(r *domain.UnifiedSearchResult) UnifiedSearchOutput {
	out := UnifiedSearchOutput{
		Query:          r.Query,
		TotalResults:   r.TotalResults,
		ExecutionTime:  domain.FormatExecutionTime(r.ExecutionTime),
		Results:        make(map[string]domain.ContentTypeResults, len(r.Results)),
		Suggestions:    r.Suggestions,
		RelatedContent: r.RelatedContent,
	}
	for ct, group := range r.Results {
		out.Results[ct.String()] = group
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	if out.RelatedContent == nil {
		out.RelatedContent = []domain.RelatedContentItem{}
	}
	return out
}
