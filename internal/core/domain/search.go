package domain

// SearchRequest is the outbound payload for the remote Local News API.
// JSON tags match the wire contract; zero-valued optional fields are
// omitted. A request is constructed fresh for each page fetch; only the
// page number varies across pages of the same logical search.
type SearchRequest struct {
	// Q is the search query. Boolean syntax (AND, OR, NOT, quotes,
	// wildcards) is opaque text forwarded verbatim to the API.
	Q string `json:"q,omitempty"`

	// When is the lookback window for latest headlines (e.g. "7d", "24h").
	When string `json:"when,omitempty"`

	// Locations filters to "City, State" or "State" strings.
	Locations []string `json:"locations,omitempty"`

	// Theme filters by a fixed-vocabulary topical tag.
	Theme string `json:"theme,omitempty"`

	// DetectionMethods filters location provenance.
	DetectionMethods []string `json:"detection_methods,omitempty"`

	// From is the search start date, relative or absolute
	// (e.g. "7 days ago", "2024-01-01"). Maximum 30-day lookback.
	From string `json:"from_,omitempty"`

	// PageSize is the number of articles requested per page (1-1000).
	PageSize int `json:"page_size,omitempty"`

	// Clustering asks the API to group same-story articles.
	Clustering bool `json:"clustering,omitempty"`

	// Page is the 1-based page number.
	Page int `json:"page,omitempty"`
}

// WithPage returns a copy of the request with only the page number changed.
func (r SearchRequest) WithPage(page int) SearchRequest {
	r.Page = page
	return r
}

// SearchResponse is the flat (non-clustered) response shape.
type SearchResponse struct {
	Status     string    `json:"status"`
	TotalHits  int       `json:"total_hits"`
	TotalPages int       `json:"total_pages"`
	PageSize   int       `json:"page_size"`
	Page       int       `json:"page"`
	Articles   []Article `json:"articles"`
}

// Cluster is a set of articles the remote API judged to cover the same
// underlying story. Order is the API's stored order; it matters only for
// tie-breaking in the representative selector.
type Cluster struct {
	Articles []Article `json:"articles"`
}

// ClusteredResponse is the response shape when clustering is requested.
// The cluster map is keyed by an opaque identifier assigned by the API.
type ClusteredResponse struct {
	Status        string             `json:"status"`
	TotalHits     int                `json:"total_hits"`
	TotalPages    int                `json:"total_pages"`
	PageSize      int                `json:"page_size"`
	Page          int                `json:"page"`
	ClustersCount int                `json:"clusters_count"`
	Clusters      map[string]Cluster `json:"clusters"`
}

// PaginationInfo is the diagnostic bookkeeping for one aggregation run.
type PaginationInfo struct {
	// PagesFetched is the number of pages actually requested, including a
	// trailing empty page that terminated the loop.
	PagesFetched int `json:"pages_fetched"`

	// TotalArticlesProcessed counts every article seen across pages,
	// before deduplication.
	TotalArticlesProcessed int `json:"total_articles_processed"`

	// UniqueClusters is the number of distinct cluster ids after merging.
	UniqueClusters int `json:"unique_clusters"`
}

// AggregatedResult is the accumulated outcome of fetching 1..N clustered
// pages. Metadata fields are captured from page 1; the cluster map is the
// URL-deduplicated merge of every fetched page. The result exclusively owns
// its clusters and articles for the lifetime of one search call.
type AggregatedResult struct {
	Status        string             `json:"status"`
	TotalHits     int                `json:"total_hits"`
	TotalPages    int                `json:"total_pages"`
	PageSize      int                `json:"page_size"`
	ClustersCount int                `json:"clusters_count"`
	Clusters      map[string]Cluster `json:"clusters"`
	Pagination    PaginationInfo     `json:"pagination_info"`
}

// ClusterRepresentative is a read-only projection of one cluster: its id,
// the single chosen article (annotated with cluster metadata), the cluster
// size, and the blended quality score used for ranking.
type ClusterRepresentative struct {
	ClusterID   string  `json:"cluster_id"`
	Article     Article `json:"article"`
	ClusterSize int     `json:"cluster_size"`
	Score       float64 `json:"cluster_score"`
}
