package mcp

import (
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// News provides search, headlines, and intelligent search.
	News driving.NewsService

	// Guides serves reference guide texts as resources. Optional;
	// without it the guide resources are unavailable and prompts omit
	// the embedded syntax reference.
	Guides driven.GuideStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.News == nil {
		return ErrMissingNewsService
	}
	return nil
}
