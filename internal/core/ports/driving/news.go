package driving

import (
	"context"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
)

// NewsService provides news search capabilities to external actors.
//
// All three operations report "nothing matched" as domain.ErrNoResults;
// infrastructure failures surface the same way after being logged, so
// callers render a single uniform "no results" outcome.
type NewsService interface {
	// SearchNews performs an ad-hoc article search.
	SearchNews(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)

	// LatestHeadlines returns the most recent headlines for locations.
	LatestHeadlines(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)

	// IntelligentSearch runs the enhanced search flow: it decides whether
	// to cluster, aggregates clustered pages, and selects diverse cluster
	// representatives.
	IntelligentSearch(ctx context.Context, req IntelligentSearchRequest) (*IntelligentSearchResult, error)
}

// EnhancementInfo records how a query was enhanced before searching, for
// display transparency. All fields are optional.
type EnhancementInfo struct {
	Original  string
	Enhanced  string
	Rationale string
}

// IntelligentSearchRequest configures one intelligent search.
type IntelligentSearchRequest struct {
	// Query is the (possibly pre-enhanced) boolean search query.
	Query string

	// Locations, Theme, From and DetectionMethods filter the search.
	Locations        []string
	Theme            string
	From             string
	DetectionMethods []string

	// PageSize is the articles requested per page. Defaults to 100 when
	// clustering, 10 otherwise.
	PageSize int

	// MaxClusters caps the representatives returned (default 10).
	MaxClusters int

	// MaxPages caps the clustered page fetches (default 3).
	MaxPages int

	// Clustering overrides the heuristic when non-nil.
	Clustering *bool

	// Enhancement is optional transparency metadata rendered with results.
	Enhancement *EnhancementInfo
}

// IntelligentSearchResult is the outcome of an intelligent search. Exactly
// one of Clustered or Flat is populated.
type IntelligentSearchResult struct {
	// Clustered holds the aggregated clusters and chosen representatives
	// when clustering was used.
	Clustered *ClusteredResult

	// Flat holds the plain response when clustering was off.
	Flat *domain.SearchResponse

	// Enhancement echoes the request's enhancement metadata.
	Enhancement *EnhancementInfo
}

// ClusteredResult pairs the merged aggregation with its selected
// representatives.
type ClusteredResult struct {
	Aggregated      *domain.AggregatedResult
	Representatives []domain.ClusterRepresentative
}
