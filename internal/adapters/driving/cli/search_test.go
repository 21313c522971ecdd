package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Long(t *testing.T) {
	assert.Contains(t, searchCmd.Long, "boolean query syntax")
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasFlags(t *testing.T) {
	flag := searchCmd.Flags().Lookup("locations")
	require.NotNil(t, flag)
	assert.Equal(t, "l", flag.Shorthand)

	flag = searchCmd.Flags().Lookup("page-size")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)

	assert.NotNil(t, searchCmd.Flags().Lookup("theme"))
	assert.NotNil(t, searchCmd.Flags().Lookup("from"))
	assert.NotNil(t, searchCmd.Flags().Lookup("json"))
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "river cleanup"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Found 2 articles")
	assert.Contains(t, buf.String(), "River Cleanup Funded")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "river cleanup"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false
		resetFlags(searchCmd)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"total_hits"`)
	assert.Contains(t, buf.String(), `"River Cleanup Funded"`)
}

func TestSearchCmd_NoResultsIsNotAnError(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	newsService = &mockCLINewsService{err: domain.ErrNoResults}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "nothing here"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No articles found")
}

func TestSearchCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	newsService = &mockCLINewsService{err: errors.New("boom")}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search failed")
}
