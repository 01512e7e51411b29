// Package mcp provides an MCP (Model Context Protocol) server adapter for lorequery.
// It lets AI assistants run unified searches over D&D 5e reference data.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
