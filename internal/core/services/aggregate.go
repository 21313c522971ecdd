package services

import (
	"context"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
	"github.com/localnews-labs/localnews-cli/internal/logger"
)

// fetchAllClusteredPages drives sequential clustered-search requests for
// pages 1..maxPages and merges the results into one accumulator.
//
// Clustering endpoints return overlapping cluster membership across pages:
// the same story's articles can be split across page boundaries, so naive
// concatenation would duplicate articles and inflate apparent cluster size.
// Merging deduplicates by article URL within each cluster id.
//
// The loop stops early when a page fails or comes back without clusters
// (natural end of results), and when the page number reaches the total page
// count reported on page 1. Page N+1 is requested only after page N has
// been processed; the stop conditions depend on the previous page.
//
// Returns nil when no page yielded data.
func (s *NewsService) fetchAllClusteredPages(
	ctx context.Context, base domain.SearchRequest, maxPages int,
) *domain.AggregatedResult {
	if maxPages < 1 {
		maxPages = 1
	}
	base.Clustering = true

	var agg *domain.AggregatedResult
	pagesFetched := 0
	totalArticles := 0

	for page := 1; page <= maxPages; page++ {
		resp, err := s.api.SearchClustered(ctx, base.WithPage(page))
		pagesFetched++

		if err != nil {
			// The client already logged the failure reason; a failed
			// page simply ends the pagination loop.
			logger.Debug("Clustered page %d unavailable: %v", page, err)
			break
		}
		if len(resp.Clusters) == 0 {
			logger.Debug("Clustered page %d has no clusters, stopping", page)
			break
		}

		pageArticles := countClusterArticles(resp.Clusters)
		totalArticles += pageArticles
		logger.Debug("Clustered page %d: %d clusters, %d articles",
			page, len(resp.Clusters), pageArticles)

		if agg == nil {
			agg = &domain.AggregatedResult{
				Status:     resp.Status,
				TotalHits:  resp.TotalHits,
				TotalPages: resp.TotalPages,
				PageSize:   resp.PageSize,
				Clusters:   make(map[string]domain.Cluster, len(resp.Clusters)),
			}

			// Common single-page case: nothing to merge, return the
			// first page's data unchanged.
			if resp.TotalPages <= 1 {
				agg.Clusters = resp.Clusters
				agg.ClustersCount = len(resp.Clusters)
				agg.Pagination = domain.PaginationInfo{
					PagesFetched:           pagesFetched,
					TotalArticlesProcessed: pageArticles,
					UniqueClusters:         len(resp.Clusters),
				}
				return agg
			}
		}

		mergeClusters(agg.Clusters, resp.Clusters)

		// The reported page count can be smaller than maxPages; stop
		// rather than issue requests that cannot return anything.
		if page >= agg.TotalPages {
			break
		}
	}

	if agg == nil {
		return nil
	}

	agg.ClustersCount = len(agg.Clusters)
	agg.Pagination = domain.PaginationInfo{
		PagesFetched:           pagesFetched,
		TotalArticlesProcessed: totalArticles,
		UniqueClusters:         len(agg.Clusters),
	}
	return agg
}

// mergeClusters folds src into dst. New cluster ids are inserted wholesale;
// for known ids only articles whose URL is not already present are appended,
// which makes the merge idempotent. Uniqueness is never forced across
// different cluster ids - the API may place one URL in two clusters.
func mergeClusters(dst, src map[string]domain.Cluster) {
	for id, incoming := range src {
		existing, ok := dst[id]
		if !ok {
			dst[id] = incoming
			continue
		}

		seen := make(map[string]bool, len(existing.Articles))
		for _, article := range existing.Articles {
			seen[article.Link] = true
		}
		for _, article := range incoming.Articles {
			if seen[article.Link] {
				continue
			}
			existing.Articles = append(existing.Articles, article)
			seen[article.Link] = true
		}
		dst[id] = existing
	}
}

func countClusterArticles(clusters map[string]domain.Cluster) int {
	n := 0
	for _, cluster := range clusters {
		n += len(cluster.Articles)
	}
	return n
}
