package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/pathway/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Browse and track a learning roadmap",
	Long:  "Pathway shows a learner's roadmap grouped by track, as a nested list or a tree, and records step completion with the roadmap provider.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config.yaml (default $XDG_CONFIG_HOME/pathway/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite journal file (overrides PATHWAY_DB env var)")
	rootCmd.PersistentFlags().String("provider-url", "", "Roadmap provider base URL (overrides PATHWAY_PROVIDER_URL env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.Flags().String("view", "list", "Initial track view: list or tree")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
