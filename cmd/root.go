package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sproutedu/sprout/internal/config"
	"github.com/sproutedu/sprout/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Adaptive tutoring engine",
	Long:  "Sprout is an adaptive tutoring and assessment engine for children's learning apps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPROUT_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a sprout.yaml config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default
// search path when the flag is unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
