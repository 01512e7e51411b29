package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheStatsJSON bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the search result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached search result",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache usage",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

func init() {
	cacheStatsCmd.Flags().BoolVar(&cacheStatsJSON, "json", false, "output stats as JSON")
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	if err := searchService.ClearCache(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	cmd.Println("Cache cleared.")
	return nil
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	stats, err := searchService.CacheStats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read cache stats: %w", err)
	}

	if cacheStatsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Backend: %s\n", stats.Backend)
	cmd.Printf("Keys:    %d\n", stats.Keys)
	cmd.Printf("Hits:    %d\n", stats.Hits)
	cmd.Printf("Misses:  %d\n", stats.Misses)
	return nil
}
