package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/localnews-labs/localnews-cli/internal/adapters/driven/config/file"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage localnews configuration",
	Long: `View and configure the API credential and search defaults.

The API key can also be supplied via the ` + file.EnvAPIKey + ` environment
variable, which takes precedence over the config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [api-key]",
	Short: "Store the Local News API key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()
	cmd.Printf("  Config file: %s\n", configStore.Path())

	if key := configStore.APIKey(); key != "" {
		cmd.Printf("  API key: %s\n", maskAPIKey(key))
	} else {
		cmd.Printf("  API key: (not set)\n")
		cmd.Printf("  Set one with 'localnews config set-key' or the %s environment variable.\n", file.EnvAPIKey)
	}

	if base := configStore.GetString(driven.ConfigBaseURL); base != "" {
		cmd.Printf("  Base URL: %s\n", base)
	}
	if size := configStore.GetInt(driven.ConfigDefaultPageSize); size > 0 {
		cmd.Printf("  Default page size: %d\n", size)
	}
	if pages := configStore.GetInt(driven.ConfigMaxPages); pages > 0 {
		cmd.Printf("  Max pages: %d\n", pages)
	}

	return nil
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(driven.ConfigAPIKey, args[0]); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	cmd.Println("API key saved.")
	return nil
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
