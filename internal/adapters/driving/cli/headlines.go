package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
)

var (
	headlinesLocations []string
	headlinesWhen      string
	headlinesTheme     string
	headlinesPageSize  int
	headlinesJSON      bool
)

var headlinesCmd = &cobra.Command{
	Use:   "headlines",
	Short: "Get the latest local headlines",
	Long: `Fetches the most recent headlines for the given locations.

  localnews headlines --locations "Denver, Colorado" --when 24h`,
	RunE: runHeadlines,
}

func init() {
	headlinesCmd.Flags().StringSliceVarP(&headlinesLocations, "locations", "l", nil, `locations to get headlines for ("City, State" or "State")`)
	headlinesCmd.Flags().StringVarP(&headlinesWhen, "when", "w", "", `lookback window, e.g. "7d" or "24h" (default "7d")`)
	headlinesCmd.Flags().StringVarP(&headlinesTheme, "theme", "t", "", "theme filter (Business, Tech, Politics, ...)")
	headlinesCmd.Flags().IntVarP(&headlinesPageSize, "page-size", "n", 0, "articles per page (default 10)")
	headlinesCmd.Flags().BoolVar(&headlinesJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(headlinesCmd)
}

func runHeadlines(cmd *cobra.Command, _ []string) error {
	if newsService == nil {
		return errors.New("news service not configured")
	}

	req := domain.SearchRequest{
		Locations: headlinesLocations,
		When:      headlinesWhen,
		Theme:     headlinesTheme,
		PageSize:  headlinesPageSize,
	}

	resp, err := newsService.LatestHeadlines(cmd.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			cmd.Println("No headlines found for the given locations.")
			return nil
		}
		return fmt.Errorf("headlines failed: %w", err)
	}

	if headlinesJSON {
		return outputArticlesJSON(cmd, resp)
	}

	outputArticles(cmd, resp)
	return nil
}
