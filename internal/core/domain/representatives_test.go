package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusterOf(links ...string) Cluster {
	c := Cluster{}
	for _, link := range links {
		c.Articles = append(c.Articles, Article{Link: link})
	}
	return c
}

func TestClusterQualityScore(t *testing.T) {
	// 0.7*topScore + 0.3*ln(size+1)
	assert.InDelta(t, 0.7*0.9+0.3*math.Log(2), ClusterQualityScore(0.9, 1), 1e-9)
	assert.InDelta(t, 0.7*0.5+0.3*math.Log(11), ClusterQualityScore(0.5, 10), 1e-9)
}

func TestCluster_TopArticle(t *testing.T) {
	t.Run("empty cluster has no top article", func(t *testing.T) {
		_, ok := Cluster{}.TopArticle()
		assert.False(t, ok)
	})

	t.Run("picks the highest score", func(t *testing.T) {
		c := Cluster{Articles: []Article{
			{Link: "a", Score: 0.3},
			{Link: "b", Score: 0.8},
			{Link: "c", Score: 0.5},
		}}

		top, ok := c.TopArticle()
		require.True(t, ok)
		assert.Equal(t, "b", top.Link)
	})

	t.Run("ties break by stored order", func(t *testing.T) {
		c := Cluster{Articles: []Article{
			{Link: "first", Score: 0.8},
			{Link: "second", Score: 0.8},
		}}

		top, ok := c.TopArticle()
		require.True(t, ok)
		assert.Equal(t, "first", top.Link)
	})
}

func TestExtractClusterRepresentatives(t *testing.T) {
	t.Run("nil aggregation yields nothing", func(t *testing.T) {
		assert.Nil(t, ExtractClusterRepresentatives(nil, 5))
	})

	t.Run("empty clusters are skipped", func(t *testing.T) {
		agg := &AggregatedResult{Clusters: map[string]Cluster{
			"empty": {},
			"full":  {Articles: []Article{{Link: "a", Score: 0.4}}},
		}}

		reps := ExtractClusterRepresentatives(agg, 10)
		require.Len(t, reps, 1)
		assert.Equal(t, "full", reps[0].ClusterID)
	})

	t.Run("caps at maxRepresentatives", func(t *testing.T) {
		agg := &AggregatedResult{Clusters: map[string]Cluster{
			"c1": {Articles: []Article{{Link: "1", Score: 0.1}}},
			"c2": {Articles: []Article{{Link: "2", Score: 0.2}}},
			"c3": {Articles: []Article{{Link: "3", Score: 0.3}}},
			"c4": {Articles: []Article{{Link: "4", Score: 0.4}}},
		}}

		reps := ExtractClusterRepresentatives(agg, 2)
		assert.Len(t, reps, 2)

		// Fewer clusters than the cap returns them all.
		reps = ExtractClusterRepresentatives(agg, 10)
		assert.Len(t, reps, 4)
	})

	t.Run("ordered by non-increasing quality score with ranks attached", func(t *testing.T) {
		agg := &AggregatedResult{Clusters: map[string]Cluster{
			"small": {Articles: []Article{{Link: "s1", Score: 0.9}}},
			"big": clusterOf(
				"b1", "b2", "b3", "b4", "b5", "b6", "b7", "b8", "b9", "b10",
			),
		}}
		// Give the big cluster a 0.5 top article.
		big := agg.Clusters["big"]
		big.Articles[2].Score = 0.5
		agg.Clusters["big"] = big

		reps := ExtractClusterRepresentatives(agg, 10)
		require.Len(t, reps, 2)

		// Breadth beats peak relevance here:
		// 0.7*0.5 + 0.3*ln(11) = 1.069 vs 0.7*0.9 + 0.3*ln(2) = 0.838
		assert.Equal(t, "big", reps[0].ClusterID)
		assert.Equal(t, "small", reps[1].ClusterID)
		assert.InDelta(t, 1.069, reps[0].Score, 0.001)
		assert.InDelta(t, 0.838, reps[1].Score, 0.001)
		assert.GreaterOrEqual(t, reps[0].Score, reps[1].Score)

		assert.Equal(t, 10, reps[0].ClusterSize)
		assert.Equal(t, 1, reps[0].Article.ClusterRank)
		assert.Equal(t, "big", reps[0].Article.ClusterID)
		assert.Equal(t, 2, reps[1].Article.ClusterRank)
	})

	t.Run("equal scores rank deterministically", func(t *testing.T) {
		agg := &AggregatedResult{Clusters: map[string]Cluster{
			"zeta":  {Articles: []Article{{Link: "z", Score: 0.5}}},
			"alpha": {Articles: []Article{{Link: "a", Score: 0.5}}},
		}}

		for range 10 {
			reps := ExtractClusterRepresentatives(agg, 10)
			require.Len(t, reps, 2)
			assert.Equal(t, "alpha", reps[0].ClusterID)
			assert.Equal(t, "zeta", reps[1].ClusterID)
		}
	})
}
