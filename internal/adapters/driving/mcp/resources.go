package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
)

const (
	// URIQuerySyntax is the boolean query syntax reference resource.
	URIQuerySyntax = "knowledge://query-syntax"

	// URIWorkflow is the recommended search workflow guide resource.
	URIWorkflow = "guide://workflow"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         URIQuerySyntax,
		Name:        "query-syntax",
		Description: "Boolean query syntax reference for news search (operators, phrases, wildcards)",
		MIMEType:    "text/markdown",
	}, s.guideResourceHandler(driven.GuideQuerySyntax))

	s.server.AddResource(&mcp.Resource{
		URI:         URIWorkflow,
		Name:        "workflow",
		Description: "Recommended workflow for combining prompts and tools into effective searches",
		MIMEType:    "text/markdown",
	}, s.guideResourceHandler(driven.GuideWorkflow))
}

// guideResourceHandler serves one named guide from the guide store.
func (s *Server) guideResourceHandler(name string) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if s.ports.Guides == nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}

		text, err := s.ports.Guides.Load(name)
		if err != nil {
			return nil, fmt.Errorf("loading guide %q: %w", name, err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     text,
			}},
		}, nil
	}
}
