package mcp

import (
	"context"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driving"
)

// mockNewsService is a mock implementation of driving.NewsService.
type mockNewsService struct {
	searchResp    *domain.SearchResponse
	headlinesResp *domain.SearchResponse
	intelligent   *driving.IntelligentSearchResult
	err           error

	lastSearchReq      domain.SearchRequest
	lastHeadlinesReq   domain.SearchRequest
	lastIntelligentReq driving.IntelligentSearchRequest
}

func (m *mockNewsService) SearchNews(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.lastSearchReq = req
	return m.searchResp, m.err
}

func (m *mockNewsService) LatestHeadlines(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.lastHeadlinesReq = req
	return m.headlinesResp, m.err
}

func (m *mockNewsService) IntelligentSearch(_ context.Context, req driving.IntelligentSearchRequest) (*driving.IntelligentSearchResult, error) {
	m.lastIntelligentReq = req
	return m.intelligent, m.err
}

// mockGuideStore is a mock implementation of driven.GuideStore.
type mockGuideStore struct {
	guides   map[string]string
	err      error
	reloaded bool
}

func (m *mockGuideStore) Load(name string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.guides[name], nil
}

func (m *mockGuideStore) Reload() { m.reloaded = true }
