package mcp

import (
	"fmt"
	"strings"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driving"
)

const noResultsMessage = "No articles found matching the search criteria."

const sentimentThreshold = 0.1

// sentimentLabel maps a score in [-1, 1] to a coarse label.
func sentimentLabel(score float64) string {
	switch {
	case score > sentimentThreshold:
		return "positive"
	case score < -sentimentThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// formatArticle renders a single article as a text block.
func formatArticle(a domain.Article) string {
	var b strings.Builder

	title := a.Title
	if title == "" {
		title = "No title"
	}
	source := a.Domain
	if source == "" {
		source = "Unknown source"
	}
	published := a.PublishedDate
	if published == "" {
		published = "Unknown date"
	}

	fmt.Fprintf(&b, "Title: %s\n", title)
	fmt.Fprintf(&b, "Source: %s\n", source)
	fmt.Fprintf(&b, "Published: %s\n", published)

	if len(a.Locations) > 0 {
		details := make([]string, 0, len(a.Locations))
		for _, loc := range a.Locations {
			name := loc.Name
			if name == "" {
				name = "Unknown"
			}
			if len(loc.DetectionMethods) > 0 {
				details = append(details, fmt.Sprintf("%s (%s)", name, strings.Join(loc.DetectionMethods, ", ")))
			} else {
				details = append(details, name)
			}
		}
		fmt.Fprintf(&b, "Locations: %s\n", strings.Join(details, "; "))
	}

	if a.NLP != nil && a.NLP.Sentiment != nil {
		fmt.Fprintf(&b, "Sentiment: %s title, %s content\n",
			sentimentLabel(a.NLP.Sentiment.Title),
			sentimentLabel(a.NLP.Sentiment.Content))
	}

	if a.NLP != nil && len(a.NLP.Themes) > 0 {
		fmt.Fprintf(&b, "Themes: %s\n", strings.Join(a.NLP.Themes, ", "))
	}

	if a.ClusterID != "" {
		rank := "unranked"
		if a.ClusterRank > 0 {
			rank = fmt.Sprintf("rank %d", a.ClusterRank)
		}
		fmt.Fprintf(&b, "Cluster: #%s (%s)\n", a.ClusterID, rank)
	}

	fmt.Fprintf(&b, "Summary: %s\n", a.Summary())

	link := a.Link
	if link == "" {
		link = "No link"
	}
	fmt.Fprintf(&b, "URL: %s", link)

	return b.String()
}

// formatEnhancement renders the query enhancement transparency section.
func formatEnhancement(info *driving.EnhancementInfo) string {
	if info == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("=== QUERY ENHANCEMENT ===\n")
	fmt.Fprintf(&b, "Original: %s\n", info.Original)
	fmt.Fprintf(&b, "Enhanced: %s\n", info.Enhanced)
	if info.Rationale != "" {
		fmt.Fprintf(&b, "Rationale: %s\n", info.Rationale)
	}
	b.WriteString("\n")
	return b.String()
}

// formatSearchResults renders a flat (non-clustered) search response.
func formatSearchResults(resp *domain.SearchResponse, enhancement *driving.EnhancementInfo) string {
	if resp == nil || len(resp.Articles) == 0 {
		return noResultsMessage
	}

	var b strings.Builder
	b.WriteString(formatEnhancement(enhancement))

	b.WriteString("=== SEARCH RESULTS ===\n")
	fmt.Fprintf(&b, "Found %d articles. Showing top %d:\n\n", resp.TotalHits, len(resp.Articles))

	blocks := make([]string, len(resp.Articles))
	for i, a := range resp.Articles {
		blocks[i] = formatArticle(a)
	}
	b.WriteString(strings.Join(blocks, "\n---\n"))

	return b.String()
}

// formatClusteredResults renders aggregated clusters with one representative
// article per cluster.
func formatClusteredResults(res *driving.ClusteredResult, enhancement *driving.EnhancementInfo) string {
	if res == nil || res.Aggregated == nil || len(res.Representatives) == 0 {
		return "No clustered articles found matching the search criteria."
	}

	agg := res.Aggregated
	reps := res.Representatives

	var b strings.Builder
	b.WriteString(formatEnhancement(enhancement))

	b.WriteString("=== CLUSTERED RESULTS ===\n")
	fmt.Fprintf(&b, "Found %d total articles across %d clusters\n", agg.TotalHits, agg.ClustersCount)
	fmt.Fprintf(&b, "Showing the top article from %d clusters (diverse stories)\n", len(reps))
	fmt.Fprintf(&b, "Pages fetched: %d, articles processed: %d, unique clusters: %d\n",
		agg.Pagination.PagesFetched,
		agg.Pagination.TotalArticlesProcessed,
		agg.Pagination.UniqueClusters)

	stats := agg.Stats()
	if stats.ClusterCount > 0 {
		fmt.Fprintf(&b, "Cluster sizes: avg %.1f, largest %d, smallest %d\n",
			stats.AverageSize, stats.LargestSize, stats.SmallestSize)
		if themes := domain.TopCounts(stats.ThemeCounts, 3); len(themes) > 0 {
			fmt.Fprintf(&b, "Leading themes: %s\n", strings.Join(themes, ", "))
		}
		if locs := domain.TopCounts(stats.LocationCounts, 3); len(locs) > 0 {
			fmt.Fprintf(&b, "Leading locations: %s\n", strings.Join(locs, ", "))
		}
	}
	b.WriteString("\n")

	blocks := make([]string, len(reps))
	for i, rep := range reps {
		header := fmt.Sprintf("[Cluster %d/%d] ID: %s | Size: %d articles",
			i+1, len(reps), rep.ClusterID, rep.ClusterSize)
		blocks[i] = header + "\n" + formatArticle(rep.Article)
	}
	b.WriteString(strings.Join(blocks, "\n\n"))

	b.WriteString("\n\nClustering enabled: each result represents a different story.")

	return b.String()
}

// formatError renders an error as a text block with recovery suggestions.
func formatError(errType, details string, suggestions []string) string {
	var b strings.Builder
	b.WriteString("=== ERROR ===\n")
	fmt.Fprintf(&b, "Error Type: %s\n", errType)
	fmt.Fprintf(&b, "Details: %s\n", details)

	if len(suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	b.WriteString("\nSee the guide://workflow resource for usage help.")
	return b.String()
}
