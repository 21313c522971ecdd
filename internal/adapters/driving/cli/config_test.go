package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
)

func TestConfigCmd_ShowWithoutKey(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	t.Setenv("LOCAL_NEWS_API_KEY", "")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "API key: (not set)")
}

func TestConfigCmd_SetKeyThenShowMasked(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	t.Setenv("LOCAL_NEWS_API_KEY", "")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set-key", "secret-token-12345"})
	err := rootCmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "API key saved.")

	assert.Equal(t, "secret-token-12345", configStore.GetString(driven.ConfigAPIKey))

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "secr...2345")
	assert.NotContains(t, buf.String(), "secret-token-12345")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "****", maskAPIKey("12345678"))
	assert.Equal(t, "abcd...wxyz", maskAPIKey("abcdefgh-long-wxyz"))
}
