// Package cli implements the command-line interface for localnews.
// Commands are wired against the core service ports; services are
// initialised once before any command runs.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/localnews-labs/localnews-cli/internal/adapters/driven/config/file"
	"github.com/localnews-labs/localnews-cli/internal/adapters/driven/newscatcher"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driving"
	"github.com/localnews-labs/localnews-cli/internal/core/services"
	"github.com/localnews-labs/localnews-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verboseFlag bool

// Package-level services shared by all commands. Populated by
// initServices before any RunE executes.
var (
	configStore *file.ConfigStore
	guideStore  driven.GuideStore
	newsService driving.NewsService
)

var rootCmd = &cobra.Command{
	Use:   "localnews",
	Short: "Local news search from the command line",
	Long: `localnews searches hyperlocal news coverage through the Local News API.

It supports boolean query syntax, location and theme filters, and an
intelligent search mode that clusters same-story coverage across pages
and surfaces one representative article per story.

The MCP server ('localnews mcp serve') exposes the same capabilities to
AI assistants over the Model Context Protocol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose diagnostics on stderr")
}

// initServices builds the config store, guide store, API client and news
// service. Idempotent so tests can call it after swapping stores.
func initServices() error {
	if newsService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = store

	guides, err := file.NewGuideStore("")
	if err != nil {
		return fmt.Errorf("opening guide store: %w", err)
	}
	guideStore = guides

	client := newscatcher.NewClient(newscatcher.Config{
		APIToken: store.APIKey(),
		BaseURL:  store.GetString(driven.ConfigBaseURL),
		Timeout:  30 * time.Second,
	})

	newsService = services.NewNewsService(client)
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
