package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change configuration",
	Long: `View and change the settings stored in ~/.lorequery/config.toml.

Missing or invalid values fall back to defaults.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. Run 'lorequery config keys' to list the keys.

Examples:
  lorequery config set cache.backend redis
  lorequery config set cache.redis_url redis://cache:6379/0
  lorequery config set open5e.requests_per_second 2`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Open5e]")
	cmd.Printf("  Base URL: %s\n", settings.Open5e.BaseURL)
	cmd.Printf("  Timeout: %s\n", settings.Open5e.Timeout)
	cmd.Printf("  Rate: %.1f req/s (burst %d)\n", settings.Open5e.RequestsPerSecond, settings.Open5e.Burst)
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  Backend: %s\n", settings.Cache.Backend.Description())
	cmd.Printf("  TTL: %s\n", settings.Cache.TTL)
	cmd.Printf("  Size: %d\n", settings.Cache.Size)
	cmd.Printf("  Redis URL: %s\n", settings.Cache.RedisURL)
	cmd.Printf("  SQLite Dir: %s\n", settings.Cache.SQLiteDir)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}
