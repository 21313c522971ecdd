package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driving"
	"github.com/localnews-labs/localnews-cli/internal/logger"
)

// SearchNewsInput is the input schema for the search_news tool.
type SearchNewsInput struct {
	Query            string   `json:"query" jsonschema:"search query, supports boolean operators (AND, OR, NOT), quoted phrases and wildcards"`
	Locations        []string `json:"locations,omitempty" jsonschema:"locations to filter by, in 'City, State' or 'State' form"`
	Theme            string   `json:"theme,omitempty" jsonschema:"theme filter such as Business, Tech, Politics or Health"`
	From             string   `json:"from,omitempty" jsonschema:"start date, relative ('7 days ago') or absolute ('2024-01-01'); 30 day maximum lookback"`
	DetectionMethods []string `json:"detection_methods,omitempty" jsonschema:"location detection methods to require (dedicated_source, standard_format, proximity_mention, ai_extracted)"`
	PageSize         int      `json:"page_size,omitempty" jsonschema:"articles per page, 1-1000 (default 10)"`
}

// LatestHeadlinesInput is the input schema for the get_latest_headlines tool.
type LatestHeadlinesInput struct {
	Locations []string `json:"locations,omitempty" jsonschema:"locations to get headlines for, in 'City, State' or 'State' form"`
	When      string   `json:"when,omitempty" jsonschema:"lookback window such as '7d' or '24h' (default '7d')"`
	Theme     string   `json:"theme,omitempty" jsonschema:"theme filter such as Business, Tech, Politics or Health"`
	PageSize  int      `json:"page_size,omitempty" jsonschema:"articles per page, 1-1000 (default 10)"`
}

// IntelligentSearchInput is the input schema for the intelligent_search tool.
type IntelligentSearchInput struct {
	Query             string   `json:"query" jsonschema:"search query, ideally pre-enhanced via the enhance-query prompt"`
	Locations         []string `json:"locations,omitempty" jsonschema:"locations to filter by, in 'City, State' or 'State' form"`
	Theme             string   `json:"theme,omitempty" jsonschema:"theme filter such as Business, Tech, Politics or Health"`
	From              string   `json:"from,omitempty" jsonschema:"start date, relative ('7 days ago') or absolute ('2024-01-01')"`
	DetectionMethods  []string `json:"detection_methods,omitempty" jsonschema:"location detection methods to require"`
	PageSize          int      `json:"page_size,omitempty" jsonschema:"articles per page (default 100 when clustering, 10 otherwise)"`
	MaxClusters       int      `json:"max_clusters,omitempty" jsonschema:"maximum cluster representatives to return (default 10)"`
	MaxPages          int      `json:"max_pages,omitempty" jsonschema:"maximum pages to aggregate when clustering (default 3)"`
	Clustering        *bool    `json:"clustering,omitempty" jsonschema:"force clustering on or off; omit to let the query heuristic decide"`
	OriginalInput     string   `json:"original_input,omitempty" jsonschema:"the raw user input before enhancement, shown for transparency"`
	EnhancedRationale string   `json:"enhancement_rationale,omitempty" jsonschema:"why the query was enhanced this way, shown for transparency"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_news",
		Description: "Search local news articles with boolean query syntax, location and theme filters",
	}, s.handleSearchNews)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_latest_headlines",
		Description: "Get the most recent local news headlines for given locations",
	}, s.handleLatestHeadlines)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "intelligent_search",
		Description: "Enhanced search that clusters same-story coverage and returns one representative article per story",
	}, s.handleIntelligentSearch)
}

// textResult wraps a formatted string as a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult renders a service error as a readable text block. Tool calls
// never surface protocol faults; failures come back as formatted text.
func errorResult(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, domain.ErrNoResults):
		return textResult(noResultsMessage)
	case errors.Is(err, domain.ErrInvalidInput):
		return textResult(formatError("Invalid Input", err.Error(), []string{
			"Provide a non-empty query or at least one location",
			"Check the knowledge://query-syntax resource for query syntax",
		}))
	default:
		return textResult(formatError("Search Failed", err.Error(), []string{
			"Verify LOCAL_NEWS_API_KEY is set",
			"Retry with a simpler query",
		}))
	}
}

// handleSearchNews handles the search_news tool invocation.
func (s *Server) handleSearchNews(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchNewsInput,
) (result *mcp.CallToolResult, _ any, retErr error) {
	defer recoverToolPanic("search_news", &result, &retErr)

	req := domain.SearchRequest{
		Q:                input.Query,
		Locations:        input.Locations,
		Theme:            input.Theme,
		From:             input.From,
		DetectionMethods: input.DetectionMethods,
		PageSize:         input.PageSize,
	}

	resp, err := s.ports.News.SearchNews(ctx, req)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return textResult(formatSearchResults(resp, nil)), nil, nil
}

// handleLatestHeadlines handles the get_latest_headlines tool invocation.
func (s *Server) handleLatestHeadlines(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LatestHeadlinesInput,
) (result *mcp.CallToolResult, _ any, retErr error) {
	defer recoverToolPanic("get_latest_headlines", &result, &retErr)

	req := domain.SearchRequest{
		Locations: input.Locations,
		When:      input.When,
		Theme:     input.Theme,
		PageSize:  input.PageSize,
	}

	resp, err := s.ports.News.LatestHeadlines(ctx, req)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return textResult(formatSearchResults(resp, nil)), nil, nil
}

// handleIntelligentSearch handles the intelligent_search tool invocation.
func (s *Server) handleIntelligentSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IntelligentSearchInput,
) (result *mcp.CallToolResult, _ any, retErr error) {
	defer recoverToolPanic("intelligent_search", &result, &retErr)

	req := driving.IntelligentSearchRequest{
		Query:            input.Query,
		Locations:        input.Locations,
		Theme:            input.Theme,
		From:             input.From,
		DetectionMethods: input.DetectionMethods,
		PageSize:         input.PageSize,
		MaxClusters:      input.MaxClusters,
		MaxPages:         input.MaxPages,
		Clustering:       input.Clustering,
	}

	if input.OriginalInput != "" || input.EnhancedRationale != "" {
		req.Enhancement = &driving.EnhancementInfo{
			Original:  input.OriginalInput,
			Enhanced:  input.Query,
			Rationale: input.EnhancedRationale,
		}
	}

	res, err := s.ports.News.IntelligentSearch(ctx, req)
	if err != nil {
		return errorResult(err), nil, nil
	}

	if res.Clustered != nil {
		return textResult(formatClusteredResults(res.Clustered, res.Enhancement)), nil, nil
	}
	return textResult(formatSearchResults(res.Flat, res.Enhancement)), nil, nil
}

// recoverToolPanic converts a handler panic into a formatted error block so
// a single bad call cannot take down the server session.
func recoverToolPanic(tool string, result **mcp.CallToolResult, retErr *error) {
	if r := recover(); r != nil {
		logger.Warn("panic in %s tool: %v", tool, r)
		*result = textResult(formatError("Internal Error", fmt.Sprintf("%v", r), nil))
		*retErr = nil
	}
}
