package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driving"
	"github.com/localnews-labs/localnews-cli/internal/logger"
)

// Ensure NewsService implements the interface.
var _ driving.NewsService = (*NewsService)(nil)

// Default request parameters.
const (
	// DefaultFrom is the lookback for ad-hoc searches when unspecified.
	DefaultFrom = "7 days ago"

	// DefaultWhen is the lookback for latest headlines when unspecified.
	DefaultWhen = "7d"

	// DefaultPageSize is the plain-search page size.
	DefaultPageSize = 10

	// DefaultClusteredPageSize is the page size for clustered fetches.
	// Larger pages give the merge more to deduplicate per request.
	DefaultClusteredPageSize = 100

	// DefaultMaxClusters caps representatives returned by default.
	DefaultMaxClusters = 10

	// DefaultMaxPages caps clustered page fetches by default.
	DefaultMaxPages = 3
)

// NewsService implements driving.NewsService on top of the remote news API.
// Every call builds its own accumulator; no state is shared across calls,
// so concurrent searches need no coordination.
type NewsService struct {
	api driven.NewsAPI
}

// NewNewsService creates a news service backed by the given API client.
func NewNewsService(api driven.NewsAPI) *NewsService {
	return &NewsService{api: api}
}

// validateFilters rejects theme and detection-method values outside the
// fixed vocabularies the remote API accepts. Empty values pass; they mean
// "no filter".
func validateFilters(theme string, methods []string) error {
	if theme != "" && !domain.Theme(theme).IsValid() {
		return fmt.Errorf("%w: unknown theme %q", domain.ErrInvalidInput, theme)
	}
	for _, m := range methods {
		if !domain.DetectionMethod(m).IsValid() {
			return fmt.Errorf("%w: unknown detection method %q", domain.ErrInvalidInput, m)
		}
	}
	return nil
}

// SearchNews performs an ad-hoc article search.
func (s *NewsService) SearchNews(
	ctx context.Context, req domain.SearchRequest,
) (*domain.SearchResponse, error) {
	if strings.TrimSpace(req.Q) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateFilters(req.Theme, req.DetectionMethods); err != nil {
		return nil, err
	}
	if req.From == "" {
		req.From = DefaultFrom
	}
	if req.PageSize <= 0 {
		req.PageSize = DefaultPageSize
	}

	logger.Section("Search")
	logger.Debug("Query: %q, locations: %v, theme: %q", req.Q, req.Locations, req.Theme)

	resp, err := s.api.Search(ctx, req)
	if err != nil {
		// Typed reason stays in the log; callers see a uniform
		// "nothing to show" outcome.
		logger.Warn("Search unavailable: %v", err)
		return nil, domain.ErrNoResults
	}
	if len(resp.Articles) == 0 {
		return nil, domain.ErrNoResults
	}

	logger.Info("Search: %d hits, %d articles returned", resp.TotalHits, len(resp.Articles))
	return resp, nil
}

// LatestHeadlines returns the most recent headlines for locations.
func (s *NewsService) LatestHeadlines(
	ctx context.Context, req domain.SearchRequest,
) (*domain.SearchResponse, error) {
	if err := validateFilters(req.Theme, req.DetectionMethods); err != nil {
		return nil, err
	}
	if req.When == "" {
		req.When = DefaultWhen
	}
	if req.PageSize <= 0 {
		req.PageSize = DefaultPageSize
	}

	logger.Section("Latest Headlines")
	logger.Debug("Locations: %v, when: %q, theme: %q", req.Locations, req.When, req.Theme)

	resp, err := s.api.LatestHeadlines(ctx, req)
	if err != nil {
		logger.Warn("Headlines unavailable: %v", err)
		return nil, domain.ErrNoResults
	}
	if len(resp.Articles) == 0 {
		return nil, domain.ErrNoResults
	}

	logger.Info("Headlines: %d hits, %d articles returned", resp.TotalHits, len(resp.Articles))
	return resp, nil
}

// IntelligentSearch runs the enhanced search flow. When the caller does not
// specify a clustering preference, the heuristic decides; clustered searches
// aggregate up to MaxPages pages and return ranked cluster representatives,
// plain searches fall back to a single request.
func (s *NewsService) IntelligentSearch(
	ctx context.Context, req driving.IntelligentSearchRequest,
) (*driving.IntelligentSearchResult, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateFilters(req.Theme, req.DetectionMethods); err != nil {
		return nil, err
	}

	maxClusters := req.MaxClusters
	if maxClusters <= 0 {
		maxClusters = DefaultMaxClusters
	}
	maxPages := req.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	useClustering := false
	if req.Clustering != nil {
		useClustering = *req.Clustering
	} else {
		heuristicSize := req.PageSize
		if heuristicSize <= 0 {
			heuristicSize = DefaultPageSize
		}
		useClustering = domain.ShouldUseClustering(req.Query, heuristicSize)
		logger.Debug("Clustering heuristic: %t", useClustering)
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		if useClustering {
			pageSize = DefaultClusteredPageSize
		} else {
			pageSize = DefaultPageSize
		}
	}

	from := req.From
	if from == "" {
		from = DefaultFrom
	}

	base := domain.SearchRequest{
		Q:                req.Query,
		Locations:        req.Locations,
		Theme:            req.Theme,
		DetectionMethods: req.DetectionMethods,
		From:             from,
		PageSize:         pageSize,
	}

	logger.Section("Intelligent Search")
	logger.Debug("Query: %q, clustering: %t, page size: %d, max pages: %d, max clusters: %d",
		req.Query, useClustering, pageSize, maxPages, maxClusters)

	if !useClustering {
		resp, err := s.api.Search(ctx, base)
		if err != nil {
			logger.Warn("Search unavailable: %v", err)
			return nil, domain.ErrNoResults
		}
		if len(resp.Articles) == 0 {
			return nil, domain.ErrNoResults
		}
		return &driving.IntelligentSearchResult{
			Flat:        resp,
			Enhancement: req.Enhancement,
		}, nil
	}

	agg := s.fetchAllClusteredPages(ctx, base, maxPages)
	if agg == nil || len(agg.Clusters) == 0 {
		return nil, domain.ErrNoResults
	}

	reps := domain.ExtractClusterRepresentatives(agg, maxClusters)
	logger.Info("Aggregated %d clusters over %d pages, returning %d representatives",
		agg.Pagination.UniqueClusters, agg.Pagination.PagesFetched, len(reps))

	return &driving.IntelligentSearchResult{
		Clustered: &driving.ClusteredResult{
			Aggregated:      agg,
			Representatives: reps,
		},
		Enhancement: req.Enhancement,
	}, nil
}
