package domain

import "sort"

// ClusterStats summarises cluster size distribution for one aggregation.
type ClusterStats struct {
	TotalArticles  int
	ClusterCount   int
	AverageSize    float64
	LargestSize    int
	SmallestSize   int
	ThemeCounts    map[string]int
	LocationCounts map[string]int
}

// Stats computes size, theme, and location distributions across the merged
// clusters. Theme and location counts are taken from each cluster's top
// article, so a cluster contributes once per theme/location it leads with.
func (agg *AggregatedResult) Stats() ClusterStats {
	stats := ClusterStats{
		ThemeCounts:    make(map[string]int),
		LocationCounts: make(map[string]int),
	}
	if agg == nil {
		return stats
	}

	first := true
	for _, cluster := range agg.Clusters {
		top, ok := cluster.TopArticle()
		if !ok {
			continue
		}

		size := len(cluster.Articles)
		stats.TotalArticles += size
		stats.ClusterCount++
		if size > stats.LargestSize {
			stats.LargestSize = size
		}
		if first || size < stats.SmallestSize {
			stats.SmallestSize = size
		}
		first = false

		if top.NLP != nil {
			for _, theme := range top.NLP.Themes {
				stats.ThemeCounts[theme]++
			}
		}
		for _, loc := range top.Locations {
			name := loc.Name
			if name == "" {
				name = "Unknown"
			}
			stats.LocationCounts[name]++
		}
	}

	if stats.ClusterCount > 0 {
		stats.AverageSize = float64(stats.TotalArticles) / float64(stats.ClusterCount)
	}
	return stats
}

// TopCounts returns the n highest-count keys of a distribution, ties broken
// alphabetically for stable output.
func TopCounts(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
