package mcp

import (
	"context"
	"errors"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
)

func readResourceRequest(uri string) *sdk.ReadResourceRequest {
	return &sdk.ReadResourceRequest{
		Params: &sdk.ReadResourceParams{URI: uri},
	}
}

func TestServer_guideResources(t *testing.T) {
	ctx := context.Background()

	t.Run("serves query syntax guide", func(t *testing.T) {
		guides := &mockGuideStore{guides: map[string]string{
			driven.GuideQuerySyntax: "# Query Syntax\nUse AND, OR, NOT.",
		}}
		server, err := NewServer(&Ports{News: &mockNewsService{}, Guides: guides})
		require.NoError(t, err)

		handler := server.guideResourceHandler(driven.GuideQuerySyntax)
		result, err := handler(ctx, readResourceRequest(URIQuerySyntax))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, URIQuerySyntax, result.Contents[0].URI)
		assert.Equal(t, "text/markdown", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "Use AND, OR, NOT.")
	})

	t.Run("serves workflow guide", func(t *testing.T) {
		guides := &mockGuideStore{guides: map[string]string{
			driven.GuideWorkflow: "# Workflow\nEnhance first, then search.",
		}}
		server, err := NewServer(&Ports{News: &mockNewsService{}, Guides: guides})
		require.NoError(t, err)

		handler := server.guideResourceHandler(driven.GuideWorkflow)
		result, err := handler(ctx, readResourceRequest(URIWorkflow))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "Enhance first")
	})

	t.Run("missing guide store yields not found", func(t *testing.T) {
		server, err := NewServer(&Ports{News: &mockNewsService{}})
		require.NoError(t, err)

		handler := server.guideResourceHandler(driven.GuideQuerySyntax)
		_, err = handler(ctx, readResourceRequest(URIQuerySyntax))

		require.Error(t, err)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		guides := &mockGuideStore{err: errors.New("disk gone")}
		server, err := NewServer(&Ports{News: &mockNewsService{}, Guides: guides})
		require.NoError(t, err)

		handler := server.guideResourceHandler(driven.GuideWorkflow)
		_, err = handler(ctx, readResourceRequest(URIWorkflow))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk gone")
	})
}
