package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "strem PATTERN [STREAM...]",
	Short: "Spatial regular expression matching over perception streams",
	Long: `strem searches perception data streams for Spatial Regular
Expressions (SpREs): classical regex operators over per-frame spatial
formulas. Matches are reported as half-open frame intervals with
grep-like semantics (leftmost, longest, non-overlapping).

With no STREAM argument, the stream is read from standard input.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runMatch,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	rootCmd.AddCommand(queriesCmd)
	rootCmd.AddCommand(versionCmd)
}

// configureLogging installs the tint slog handler at the level implied
// by the verbosity flags.
func configureLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
