package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/localnews-labs/localnews-cli/internal/adapters/driven/config/file"
	"github.com/localnews-labs/localnews-cli/internal/core/domain"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driving"
)

// mockCLINewsService is a canned driving.NewsService for command tests.
type mockCLINewsService struct {
	searchResp    *domain.SearchResponse
	headlinesResp *domain.SearchResponse
	intelligent   *driving.IntelligentSearchResult
	err           error
}

func (m *mockCLINewsService) SearchNews(_ context.Context, _ domain.SearchRequest) (*domain.SearchResponse, error) {
	return m.searchResp, m.err
}

func (m *mockCLINewsService) LatestHeadlines(_ context.Context, _ domain.SearchRequest) (*domain.SearchResponse, error) {
	return m.headlinesResp, m.err
}

func (m *mockCLINewsService) IntelligentSearch(_ context.Context, _ driving.IntelligentSearchRequest) (*driving.IntelligentSearchResult, error) {
	return m.intelligent, m.err
}

func sampleResponse() *domain.SearchResponse {
	return &domain.SearchResponse{
		Status:    "ok",
		TotalHits: 2,
		Articles: []domain.Article{
			{
				Title:         "River Cleanup Funded",
				Domain:        "citynews.example.com",
				PublishedDate: "2025-03-01 08:00:00",
				Description:   "The council approved cleanup funding.",
				Link:          "https://citynews.example.com/cleanup",
				Score:         0.9,
			},
			{
				Title: "Second Story",
				Link:  "https://example.com/second",
			},
		},
	}
}

// resetFlags clears cobra's changed-state on a shared command so flag
// groups (mutually exclusive and friends) validate fresh in later tests.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		f.Changed = false
	})
}

// setupTestServices swaps in mock services so commands run without I/O.
// The returned cleanup restores the previous wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	oldNews := newsService
	oldConfig := configStore
	oldGuides := guideStore

	newsService = &mockCLINewsService{
		searchResp:    sampleResponse(),
		headlinesResp: sampleResponse(),
		intelligent:   &driving.IntelligentSearchResult{Flat: sampleResponse()},
	}

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store

	guides, err := file.NewGuideStore(t.TempDir())
	require.NoError(t, err)
	guideStore = guides

	return func() {
		newsService = oldNews
		configStore = oldConfig
		guideStore = oldGuides
	}
}
