package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatedResult_Stats(t *testing.T) {
	agg := &AggregatedResult{Clusters: map[string]Cluster{
		"c1": {Articles: []Article{
			{
				Link:  "a",
				Score: 0.9,
				NLP:   &ArticleNLP{Themes: []string{"Tech", "Business"}},
				Locations: []ArticleLocation{
					{Name: "Austin, Texas"},
				},
			},
			{Link: "b", Score: 0.2},
			{Link: "c", Score: 0.1},
		}},
		"c2": {Articles: []Article{
			{
				Link:      "d",
				Score:     0.5,
				NLP:       &ArticleNLP{Themes: []string{"Tech"}},
				Locations: []ArticleLocation{{Name: "Austin, Texas"}, {Name: ""}},
			},
		}},
		"empty": {},
	}}

	stats := agg.Stats()

	assert.Equal(t, 4, stats.TotalArticles)
	assert.Equal(t, 2, stats.ClusterCount)
	assert.Equal(t, 3, stats.LargestSize)
	assert.Equal(t, 1, stats.SmallestSize)
	assert.InDelta(t, 2.0, stats.AverageSize, 1e-9)

	// Theme and location counts come from each cluster's top article.
	assert.Equal(t, 2, stats.ThemeCounts["Tech"])
	assert.Equal(t, 1, stats.ThemeCounts["Business"])
	assert.Equal(t, 2, stats.LocationCounts["Austin, Texas"])
	assert.Equal(t, 1, stats.LocationCounts["Unknown"])
}

func TestTopCounts(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}

	assert.Equal(t, []string{"c", "a", "b"}, TopCounts(counts, 3))
	assert.Equal(t, []string{"c", "a", "b", "d"}, TopCounts(counts, 10))
}
