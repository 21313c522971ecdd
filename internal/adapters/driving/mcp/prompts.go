package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
)

// registerPrompts registers all prompt handlers with the MCP server.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "enhance-query",
		Description: "Transform simple user input into a sophisticated boolean search query",
		Arguments: []*mcp.PromptArgument{
			{Name: "user_input", Description: "The raw search input to enhance", Required: true},
			{Name: "domain_context", Description: "Optional domain hint (business, tech, healthcare, real estate)"},
			{Name: "location_focus", Description: "Optional location focus hint"},
		},
	}, s.handleEnhanceQueryPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "analyze-search-intent",
		Description: "Analyze user input to understand search intent, entities and scope",
		Arguments: []*mcp.PromptArgument{
			{Name: "user_input", Description: "The search input to analyze", Required: true},
		},
	}, s.handleAnalyzeIntentPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "search-workflow",
		Description: "Recommend the optimal tool and prompt workflow for a search",
		Arguments: []*mcp.PromptArgument{
			{Name: "complexity", Description: "Query complexity: simple, standard or complex (default standard)"},
		},
	}, s.handleWorkflowPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "refine-query",
		Description: "Refine a query based on the results it returned",
		Arguments: []*mcp.PromptArgument{
			{Name: "original_query", Description: "The query that was searched", Required: true},
			{Name: "refinement_goal", Description: "What should improve (fewer results, more relevant, different locations)", Required: true},
			{Name: "total_hits", Description: "Total hits the query returned"},
			{Name: "articles_count", Description: "Number of articles actually shown"},
		},
	}, s.handleRefineQueryPrompt)
}

const enhancementSystemText = `You are an expert news search query optimizer specializing in local news discovery. Transform simple user input into precise boolean search queries.

QUERY SYNTAX REFERENCE:
%s

ENHANCEMENT PRINCIPLES:
1. Domain expansion: identify the primary domain and expand with relevant terminology.
2. Synonym integration: use OR to capture concept variations, e.g. layoffs OR "job cuts" OR downsizing.
3. Contextual specificity: add industry context with AND, e.g. startup AND (funding OR investment).
4. Noise elimination: use NOT to exclude irrelevant content, e.g. NOT (sports OR entertainment).
5. Exact phrases: quote multi-word concepts, e.g. "supply chain", "venture capital".
6. Wildcards: use asterisks for term variations, e.g. regulat* captures regulation and regulatory.
7. Geographic intelligence: expand regional aliases (Bay Area into its cities), include state context.
8. Group with parentheses and put the most important terms first.

OUTPUT REQUIREMENTS:
- Enhanced Query: the boolean query, with quotes escaped for JSON
- Suggested Locations: specific "City, State" locations if relevant
- Suggested Theme: one of Business, Tech, Politics, Health, Sports, Finance, Crime
- Detection Methods: recommended detection methods
- Rationale: brief explanation of the enhancements made

The enhanced query must be noticeably more precise than the input while keeping good recall.`

// handleEnhanceQueryPrompt builds the query enhancement prompt, embedding the
// query syntax guide when the guide store is available.
func (s *Server) handleEnhanceQueryPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	userInput := req.Params.Arguments["user_input"]
	if strings.TrimSpace(userInput) == "" {
		return nil, fmt.Errorf("enhance-query: user_input argument is required")
	}

	domainContext := req.Params.Arguments["domain_context"]
	if domainContext == "" {
		domainContext = "Auto-detect from input"
	}
	locationFocus := req.Params.Arguments["location_focus"]
	if locationFocus == "" {
		locationFocus = "Auto-detect or suggest relevant locations"
	}

	syntaxGuide := "(query syntax guide unavailable)"
	if s.ports.Guides != nil {
		if text, err := s.ports.Guides.Load(driven.GuideQuerySyntax); err == nil {
			syntaxGuide = text
		}
	}

	userText := fmt.Sprintf(`Transform this search input into an advanced local news query:

USER INPUT: %q
DOMAIN CONTEXT: %s
LOCATION FOCUS: %s

Consider what domain expertise is needed, which synonyms and related terms to include, what noise to exclude, which locations are most relevant, and how boolean logic can improve precision. Escape quotes for JSON in the enhanced query.

Provide your enhancement following the structured output format.`, userInput, domainContext, locationFocus)

	return &mcp.GetPromptResult{
		Description: "Query enhancement for: " + userInput,
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: fmt.Sprintf(enhancementSystemText, syntaxGuide)}},
			{Role: "user", Content: &mcp.TextContent{Text: userText}},
		},
	}, nil
}

const intentSystemText = `You are a search intent analysis expert specializing in news discovery. Analyze the input across these dimensions:

1. Domain classification: primary industry or sector, plus secondary domains.
2. Entity extraction: companies, people, locations, events, products.
3. Intent category: information seeking, monitoring, analysis, crisis, or research.
4. Temporal sensitivity: breaking, recent, trending, or historical.
5. Geographic scope: hyperlocal, local, regional, national, or international.
6. Information depth: headlines, summary, detailed, or comprehensive.

OUTPUT FORMAT:
- Primary Domain
- Key Entities
- Intent Type
- Time Sensitivity
- Geographic Focus
- Information Depth
- Search Complexity: simple, moderate or complex
- Recommended Approach: which tools and prompts to use`

// handleAnalyzeIntentPrompt builds the search intent analysis prompt.
func (s *Server) handleAnalyzeIntentPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	userInput := req.Params.Arguments["user_input"]
	if strings.TrimSpace(userInput) == "" {
		return nil, fmt.Errorf("analyze-search-intent: user_input argument is required")
	}

	userText := fmt.Sprintf(`Analyze this search input comprehensively:

INPUT: %q

Consider what the user is really trying to discover, what context they might be missing, how time-sensitive the query is, and what level of detail they are likely seeking.`, userInput)

	return &mcp.GetPromptResult{
		Description: "Intent analysis for: " + userInput,
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: intentSystemText}},
			{Role: "user", Content: &mcp.TextContent{Text: userText}},
		},
	}, nil
}

var workflowGuidance = map[string]string{
	"simple": `For simple, direct searches:
1. Use the search_news tool directly with your query.
2. Add specific locations if you have them.
3. Use theme filters for broad categorization.
Good for quick lookups, known entities and simple topics.`,
	"standard": `For enhanced relevance (recommended):
1. Use the enhance-query prompt with your input.
2. Review the enhanced query and suggestions.
3. Use the intelligent_search tool with the enhanced parameters.
4. Iterate with refine-query if results need adjusting.
Good for most searches, domain research and location-specific needs.`,
	"complex": `For complex research and analysis:
1. Use the analyze-search-intent prompt to understand your needs.
2. Use the enhance-query prompt with domain context.
3. Execute multiple intelligent_search calls with variations.
4. Consider different time ranges and location scopes.
5. Use get_latest_headlines for breaking developments.
Good for market research, competitive analysis and trend tracking.`,
}

// handleWorkflowPrompt builds the workflow guidance prompt.
func (s *Server) handleWorkflowPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	complexity := req.Params.Arguments["complexity"]
	guidance, ok := workflowGuidance[complexity]
	if !ok {
		complexity = "standard"
		guidance = workflowGuidance["standard"]
	}

	systemText := "You are a local news search workflow advisor. Guide users on the most effective approach for their search needs based on query complexity and desired outcomes."

	userText := fmt.Sprintf(`Recommend the optimal workflow approach for %s queries.

Include the step-by-step process, when to use each tool and prompt, tips for better results, and common pitfalls to avoid.

%s`, complexity, guidance)

	return &mcp.GetPromptResult{
		Description: "Workflow guidance for " + complexity + " queries",
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: systemText}},
			{Role: "user", Content: &mcp.TextContent{Text: userText}},
		},
	}, nil
}

// handleRefineQueryPrompt builds the result-driven query refinement prompt.
func (s *Server) handleRefineQueryPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	originalQuery := req.Params.Arguments["original_query"]
	refinementGoal := req.Params.Arguments["refinement_goal"]
	if strings.TrimSpace(originalQuery) == "" || strings.TrimSpace(refinementGoal) == "" {
		return nil, fmt.Errorf("refine-query: original_query and refinement_goal arguments are required")
	}

	totalHits := req.Params.Arguments["total_hits"]
	if totalHits == "" {
		totalHits = "unknown"
	}
	articlesCount := req.Params.Arguments["articles_count"]
	if articlesCount == "" {
		articlesCount = "unknown"
	}

	systemText := "You are a query refinement specialist. Analyze search results and improve queries for better targeting based on the stated refinement goal and result quality."

	userText := fmt.Sprintf(`Refine this query based on the results it returned:

ORIGINAL QUERY: %q
REFINEMENT GOAL: %s
RESULTS SUMMARY: %s articles returned, %s total hits available

GUIDELINES:
- Too many results (over 1000 hits): add more specific terms, exclusions or exact phrases.
- Too few results (under 10 hits): broaden with synonyms, remove restrictions, use wildcards.
- Off-topic results: add NOT operators, refine domain terms, use exact phrases.
- Missing aspects: add related concepts with OR.
- Wrong locations: adjust the geographic scope or location filters.

Provide the refined query, the changes made with reasoning, the expected improvement, and alternative approaches if this does not work.`, originalQuery, refinementGoal, articlesCount, totalHits)

	return &mcp.GetPromptResult{
		Description: "Query refinement for: " + originalQuery,
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: systemText}},
			{Role: "user", Content: &mcp.TextContent{Text: userText}},
		},
	}, nil
}
