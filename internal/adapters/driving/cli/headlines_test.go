package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
)

func TestHeadlinesCmd_Use(t *testing.T) {
	assert.Equal(t, "headlines", headlinesCmd.Use)
}

func TestHeadlinesCmd_HasFlags(t *testing.T) {
	flag := headlinesCmd.Flags().Lookup("when")
	require.NotNil(t, flag)
	assert.Equal(t, "w", flag.Shorthand)

	assert.NotNil(t, headlinesCmd.Flags().Lookup("locations"))
	assert.NotNil(t, headlinesCmd.Flags().Lookup("theme"))
}

func TestHeadlinesCmd_Executes(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"headlines", "--locations", "Denver, Colorado", "--when", "24h"})
	defer func() {
		rootCmd.SetArgs(nil)
		headlinesLocations = nil
		headlinesWhen = ""
		resetFlags(headlinesCmd)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "River Cleanup Funded")
}

func TestHeadlinesCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	newsService = &mockCLINewsService{err: domain.ErrNoResults}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"headlines"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No headlines found")
}
