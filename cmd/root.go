package cmd

import (
	"go.uber.org/zap"

	"github.com/abhisek/tutorlens/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tutorlens",
	Short: "Turn tutoring transcripts into structured student insights",
	Long: "TutorLens analyzes 1-to-1 math tutoring transcripts into learning goals,\n" +
		"topic mastery signals, mental block detection, and session narratives,\n" +
		"tracking student progress across sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORLENS_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TUTORLENS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the command logger. Quiet by default so report
// output stays clean; --verbose switches to development logging.
func newLogger(cmd *cobra.Command) *zap.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		if log, err := zap.NewDevelopment(); err == nil {
			return log
		}
	}
	return zap.NewNop()
}
