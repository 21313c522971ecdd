package domain

import (
	"math"
	"sort"
)

// Quality score weighting. Article relevance is weighted more heavily than
// corroboration breadth; the logarithm keeps very large clusters from
// dominating purely on size.
const (
	scoreWeight = 0.7
	sizeWeight  = 0.3
)

// ClusterQualityScore blends the top article's relevance with the cluster's
// size: scoreWeight*topScore + sizeWeight*ln(size+1). Natural log is used
// consistently everywhere quality scores are compared.
func ClusterQualityScore(topScore float64, size int) float64 {
	return scoreWeight*topScore + sizeWeight*math.Log(float64(size)+1)
}

// TopArticle returns the article with the maximum relevance score, ties
// broken by first-encountered in the cluster's stored order. Returns false
// if the cluster is empty.
func (c Cluster) TopArticle() (Article, bool) {
	if len(c.Articles) == 0 {
		return Article{}, false
	}

	best := 0
	for i := 1; i < len(c.Articles); i++ {
		if c.Articles[i].Score > c.Articles[best].Score {
			best = i
		}
	}
	return c.Articles[best], true
}

// ExtractClusterRepresentatives ranks clusters by quality score and picks
// one representative article per cluster, truncated to maxRepresentatives.
// Empty clusters are skipped. Representatives are returned in non-increasing
// quality-score order, each annotated with its cluster id, 1-based rank, and
// cluster size.
func ExtractClusterRepresentatives(agg *AggregatedResult, maxRepresentatives int) []ClusterRepresentative {
	if agg == nil || len(agg.Clusters) == 0 || maxRepresentatives <= 0 {
		return nil
	}

	reps := make([]ClusterRepresentative, 0, len(agg.Clusters))
	for id, cluster := range agg.Clusters {
		top, ok := cluster.TopArticle()
		if !ok {
			continue
		}

		size := len(cluster.Articles)
		reps = append(reps, ClusterRepresentative{
			ClusterID:   id,
			Article:     top,
			ClusterSize: size,
			Score:       ClusterQualityScore(top.Score, size),
		})
	}

	// Map iteration order is random; sort by id first so equal-score
	// clusters rank deterministically.
	sort.Slice(reps, func(i, j int) bool {
		return reps[i].ClusterID < reps[j].ClusterID
	})
	sort.SliceStable(reps, func(i, j int) bool {
		return reps[i].Score > reps[j].Score
	})

	if len(reps) > maxRepresentatives {
		reps = reps[:maxRepresentatives]
	}

	for i := range reps {
		reps[i].Article.ClusterID = reps[i].ClusterID
		reps[i].Article.ClusterRank = i + 1
	}

	return reps
}
