// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the localnews CLI. It exposes local news search to AI assistants as
// callable tools, reference resources, and prompt templates.
package mcp

import "errors"

// ErrMissingNewsService is returned when the news service is not provided.
var ErrMissingNewsService = errors.New("mcp: news service is required")
