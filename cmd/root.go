package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tsarev/lernio/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lernio",
	Short: "Adaptive lesson engine for diabetes self-management education",
	Long: "Lernio drives chat-based lessons: curated lesson packs with quizzes,\n" +
		"or model-generated courses tailored to the learner.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LERNIO_DB env var)")
	rootCmd.PersistentFlags().String("learner", "local", "Learner ID to act as")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LERNIO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
