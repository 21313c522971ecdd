package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driving"
)

var (
	intelligentLocations   []string
	intelligentTheme       string
	intelligentFrom        string
	intelligentPageSize    int
	intelligentMaxClusters int
	intelligentMaxPages    int
	intelligentCluster     bool
	intelligentNoCluster   bool
)

var intelligentCmd = &cobra.Command{
	Use:   "intelligent [query]",
	Short: "Clustered search with story deduplication",
	Long: `Runs the enhanced search flow: decides whether to cluster based on
the query shape, aggregates clustered results across pages, and prints
one representative article per story.

Broad queries cluster automatically; narrow ones fall back to a plain
search. Use --cluster or --no-cluster to override the heuristic.`,
	Args: cobra.ExactArgs(1),
	RunE: runIntelligent,
}

func init() {
	intelligentCmd.Flags().StringSliceVarP(&intelligentLocations, "locations", "l", nil, `locations to filter by ("City, State" or "State")`)
	intelligentCmd.Flags().StringVarP(&intelligentTheme, "theme", "t", "", "theme filter (Business, Tech, Politics, ...)")
	intelligentCmd.Flags().StringVar(&intelligentFrom, "from", "", `start date ("7 days ago" or "2024-01-01")`)
	intelligentCmd.Flags().IntVarP(&intelligentPageSize, "page-size", "n", 0, "articles per page (default 100 when clustering)")
	intelligentCmd.Flags().IntVar(&intelligentMaxClusters, "max-clusters", 0, "maximum story representatives to show (default 10)")
	intelligentCmd.Flags().IntVar(&intelligentMaxPages, "max-pages", 0, "maximum pages to aggregate (default 3)")
	intelligentCmd.Flags().BoolVar(&intelligentCluster, "cluster", false, "force clustering on")
	intelligentCmd.Flags().BoolVar(&intelligentNoCluster, "no-cluster", false, "force clustering off")
	intelligentCmd.MarkFlagsMutuallyExclusive("cluster", "no-cluster")
	rootCmd.AddCommand(intelligentCmd)
}

func runIntelligent(cmd *cobra.Command, args []string) error {
	if newsService == nil {
		return errors.New("news service not configured")
	}

	maxPages := intelligentMaxPages
	if maxPages == 0 && configStore != nil {
		maxPages = configStore.GetInt(driven.ConfigMaxPages)
	}

	req := driving.IntelligentSearchRequest{
		Query:       args[0],
		Locations:   intelligentLocations,
		Theme:       intelligentTheme,
		From:        intelligentFrom,
		PageSize:    intelligentPageSize,
		MaxClusters: intelligentMaxClusters,
		MaxPages:    maxPages,
	}

	if intelligentCluster {
		on := true
		req.Clustering = &on
	}
	if intelligentNoCluster {
		off := false
		req.Clustering = &off
	}

	res, err := newsService.IntelligentSearch(cmd.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			cmd.Println("No articles found matching the search criteria.")
			return nil
		}
		return fmt.Errorf("intelligent search failed: %w", err)
	}

	if res.Clustered != nil {
		outputClusters(cmd, res.Clustered)
		return nil
	}

	outputArticles(cmd, res.Flat)
	return nil
}

func outputClusters(cmd *cobra.Command, res *driving.ClusteredResult) {
	agg := res.Aggregated
	cmd.Printf("Found %d articles across %d clusters (%d pages fetched)\n\n",
		agg.TotalHits, agg.Pagination.UniqueClusters, agg.Pagination.PagesFetched)

	for i, rep := range res.Representatives {
		a := rep.Article

		title := a.Title
		if title == "" {
			title = "(untitled)"
		}

		cmd.Printf("  [%d] %s\n", i+1, title)
		cmd.Printf("      Cluster %s, %d articles, score %.2f\n", rep.ClusterID, rep.ClusterSize, rep.Score)
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
