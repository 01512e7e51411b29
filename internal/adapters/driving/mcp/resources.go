package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for lorequery resources.
	uriScheme = "lorequery://"

	contentTypesURI = uriScheme + "content-types"
)

// contentTypeInfo describes one searchable content type.
type contentTypeInfo struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         contentTypesURI,
		Name:        "content-types",
		Description: "Content types accepted by unified_search, with ranking weights",
		MIMEType:    "application/json",
	}, s.handleContentTypesResource)
}

// handleContentTypesResource lists the registered content types.
func (s *Server) handleContentTypesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	types := s.ports.Search.ContentTypes()

	infos := make([]contentTypeInfo, len(types))
	for i, ct := range types {
		infos[i] = contentTypeInfo{
			Type:        ct.String(),
			Description: ct.Description(),
			Weight:      ct.Weight(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling content types: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
