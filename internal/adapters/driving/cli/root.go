// Package cli provides the lorequery command line interface.
package cli

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lorequery/internal/core/ports/driving"
	"github.com/custodia-labs/lorequery/internal/logger"
)

// version is set at build time.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services used by commands. Tests replace them with mocks; otherwise they
// are built from the config file before the first command runs.
var (
	searchService   driving.UnifiedSearchService
	settingsService driving.SettingsService
	metricsHandler  http.Handler
	closeServices   func()
)

var rootCmd = &cobra.Command{
	Use:   "lorequery",
	Short: "Unified D&D 5e reference search",
	Long: `lorequery searches spells, monsters, races, classes, equipment, feats,
conditions, backgrounds, rules sections and spell lists from Open5e in a
single query, with fuzzy matching, relevance ranking and cross-references.

Run it from the terminal or serve it to AI assistants over MCP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.lorequery)")
}

// SetVersion sets the version reported by the version command and MCP server.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	defer func() {
		if closeServices != nil {
			closeServices()
		}
	}()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// setupServices builds the services unless they are already set.
func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if !needsServices(cmd) || (searchService != nil && settingsService != nil) {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := buildApp(ctx, configDir)
	if err != nil {
		return err
	}

	searchService = a.search
	settingsService = a.settings
	metricsHandler = a.observer.Handler()
	closeServices = a.close
	return nil
}

// needsServices reports whether cmd touches configuration or the network.
func needsServices(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", cobra.ShellCompRequestCmd, "completion":
			return false
		}
	}
	return true
}
