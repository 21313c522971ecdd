package services

import (
	"context"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
)

// mockNewsAPI is a scripted implementation of driven.NewsAPI.
// Clustered pages are served by page number so tests can exercise the
// aggregation loop.
type mockNewsAPI struct {
	searchResp    *domain.SearchResponse
	searchErr     error
	headlinesResp *domain.SearchResponse
	headlinesErr  error

	pages    map[int]*domain.ClusteredResponse
	pageErrs map[int]error

	searchCalls    int
	headlineCalls  int
	clusteredCalls []int
}

func (m *mockNewsAPI) Search(
	_ context.Context, _ domain.SearchRequest,
) (*domain.SearchResponse, error) {
	m.searchCalls++
	return m.searchResp, m.searchErr
}

func (m *mockNewsAPI) SearchClustered(
	_ context.Context, req domain.SearchRequest,
) (*domain.ClusteredResponse, error) {
	m.clusteredCalls = append(m.clusteredCalls, req.Page)
	if err, ok := m.pageErrs[req.Page]; ok {
		return nil, err
	}
	if resp, ok := m.pages[req.Page]; ok {
		return resp, nil
	}
	return &domain.ClusteredResponse{Status: "ok"}, nil
}

func (m *mockNewsAPI) LatestHeadlines(
	_ context.Context, _ domain.SearchRequest,
) (*domain.SearchResponse, error) {
	m.headlineCalls++
	return m.headlinesResp, m.headlinesErr
}

func clusteredPage(totalPages int, clusters map[string]domain.Cluster) *domain.ClusteredResponse {
	return &domain.ClusteredResponse{
		Status:        "ok",
		TotalHits:     100,
		TotalPages:    totalPages,
		PageSize:      10,
		ClustersCount: len(clusters),
		Clusters:      clusters,
	}
}

func article(link string, score float64) domain.Article {
	return domain.Article{Title: link, Link: link, Score: score}
}
