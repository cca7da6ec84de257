package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/castkeep/catalog-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalog-api",
	Short: "Podcast Catalog API server",
	Long: `Podcast Catalog API - a catalog manager for podcasts and episodes

This API manages a catalog of podcasts and their episodes: create,
list, update and delete podcasts (with cover image), manage episodes
nested under a podcast, and search episodes with free text.

Features:
  • Podcast CRUD with uploaded or linked cover images
  • Episode CRUD nested under podcasts
  • Free-text episode search across titles and descriptions
  • Episode audio referenced by URL for client-side playback`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help don't need config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
