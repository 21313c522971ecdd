package driven

import (
	"context"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
)

// NewsAPI is the remote Local News search API. One call is one HTTP POST
// with a fixed timeout; no retries are performed at this layer.
//
// Implementations return typed errors (domain.ErrMissingCredential,
// domain.ErrRequestFailed, domain.ErrBadStatus, domain.ErrMalformedResponse)
// so the failure reason can be logged and asserted on. Callers above the
// service boundary collapse every failure to a uniform "no data" outcome.
type NewsAPI interface {
	// Search performs an ad-hoc article search.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)

	// SearchClustered performs a search with clustering enabled and
	// returns the clustered response shape.
	SearchClustered(ctx context.Context, req domain.SearchRequest) (*domain.ClusteredResponse, error)

	// LatestHeadlines returns recent headlines for the given locations.
	LatestHeadlines(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}
