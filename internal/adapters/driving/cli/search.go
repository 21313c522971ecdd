package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
)

var (
	searchLocations []string
	searchTheme     string
	searchFrom      string
	searchMethods   []string
	searchPageSize  int
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search local news articles",
	Long: `Searches local news articles with boolean query syntax.

Queries support AND, OR, NOT operators, quoted phrases and trailing
wildcards, e.g.:

  localnews search '"city council" AND (budget OR funding)'
  localnews search 'layoffs OR "job cuts"' --locations "Austin, Texas"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchLocations, "locations", "l", nil, `locations to filter by ("City, State" or "State")`)
	searchCmd.Flags().StringVarP(&searchTheme, "theme", "t", "", "theme filter (Business, Tech, Politics, ...)")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", `start date ("7 days ago" or "2024-01-01")`)
	searchCmd.Flags().StringSliceVar(&searchMethods, "detection-methods", nil, "required location detection methods")
	searchCmd.Flags().IntVarP(&searchPageSize, "page-size", "n", 0, "articles per page (default 10)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if newsService == nil {
		return errors.New("news service not configured")
	}

	pageSize := searchPageSize
	if pageSize == 0 && configStore != nil {
		pageSize = configStore.GetInt(driven.ConfigDefaultPageSize)
	}

	req := domain.SearchRequest{
		Q:                args[0],
		Locations:        searchLocations,
		Theme:            searchTheme,
		From:             searchFrom,
		DetectionMethods: searchMethods,
		PageSize:         pageSize,
	}

	resp, err := newsService.SearchNews(cmd.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			cmd.Println("No articles found matching the search criteria.")
			return nil
		}
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputArticlesJSON(cmd, resp)
	}

	outputArticles(cmd, resp)
	return nil
}

func outputArticlesJSON(cmd *cobra.Command, resp *domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputArticles(cmd *cobra.Command, resp *domain.SearchResponse) {
	cmd.Printf("Found %d articles. Showing %d:\n\n", resp.TotalHits, len(resp.Articles))

	for i := range resp.Articles {
		a := &resp.Articles[i]

		title := a.Title
		if title == "" {
			title = "(untitled)"
		}

		cmd.Printf("  [%d] %s\n", i+1, title)
		if a.Domain != "" {
			cmd.Printf("      Source: %s (%s)\n", a.Domain, a.PublishedDate)
		}
		if summary := a.Summary(); summary != "" {
			cmd.Printf("      %s\n", summary)
		}
		if a.Link != "" {
			cmd.Printf("      %s\n", a.Link)
		}
		cmd.Println()
	}
}
