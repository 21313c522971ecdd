package domain

// Article is a single news item as returned by the remote Local News API.
// The canonical URL (Link) is the dedup key when merging clustered pages.
type Article struct {
	// Title is the article headline.
	Title string `json:"title"`

	// Domain is the publishing source domain (wire field: domain_url).
	Domain string `json:"domain_url"`

	// PublishedDate is the publication timestamp as reported by the API.
	PublishedDate string `json:"published_date"`

	// Description is the free-text article description.
	Description string `json:"description"`

	// Link is the canonical article URL. Used as the dedup key within a
	// cluster; the same URL may still appear in two different clusters if
	// the API is inconsistent.
	Link string `json:"link"`

	// Score is the relevance score assigned by the API. Higher is better.
	// Missing scores decode as 0.
	Score float64 `json:"score"`

	// Locations lists the detected location mentions, if any.
	Locations []ArticleLocation `json:"locations,omitempty"`

	// NLP carries optional NLP-derived enrichment.
	NLP *ArticleNLP `json:"nlp,omitempty"`

	// ClusterID and ClusterRank are attached by the representative
	// selector; they are never present on the wire.
	ClusterID   string `json:"cluster_id,omitempty"`
	ClusterRank int    `json:"cluster_rank,omitempty"`
}

// ArticleLocation is a detected location mention with its provenance.
type ArticleLocation struct {
	// Name is the location in "City, State" or "State" form.
	Name string `json:"name"`

	// DetectionMethods lists how the location was attributed to the article.
	DetectionMethods []string `json:"detection_methods,omitempty"`
}

// ArticleNLP holds optional NLP enrichment attached to an article.
type ArticleNLP struct {
	// Summary is a machine-generated article summary.
	Summary string `json:"summary,omitempty"`

	// Sentiment scores the title and content in [-1, 1].
	Sentiment *Sentiment `json:"sentiment,omitempty"`

	// Themes are topical tags assigned to the article.
	Themes []string `json:"theme,omitempty"`
}

// Sentiment is a pair of signed sentiment scores.
type Sentiment struct {
	Title   float64 `json:"title"`
	Content float64 `json:"content"`
}

// Summary returns the best available short text for the article:
// the NLP summary when present, otherwise the description.
func (a *Article) Summary() string {
	if a.NLP != nil && a.NLP.Summary != "" {
		return a.NLP.Summary
	}
	return a.Description
}
