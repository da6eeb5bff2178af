// Package app contains the Cobra command tree for solvetrace.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solvetrace/solvetrace/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

// logger is initialized in PersistentPreRunE and shared by all commands.
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "solvetrace",
	Short: "Coding pattern analysis for practice-platform activity",
	Long: `solvetrace ingests coding practice events (runs and submissions),
aggregates them into a statistical profile, and produces a pattern analysis
with ratings, strengths, weaknesses, and improvement suggestions. Analyses
use a language model when configured and fall back to heuristics otherwise.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = buildLogger(flagVerbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		if flagNoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			output.SetNoColor(true)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("solvetrace", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Analyze one user's coding patterns")
		fmt.Println("  batch     Analyze every recently active user")
		fmt.Println("  ingest    Load coding events from a JSONL file")
		fmt.Println("  history   Show a user's past analyses")
		fmt.Println("  serve     Run the HTTP API")
		return nil
	},
}

// buildLogger constructs the production zap logger; --verbose lowers the
// level to debug.
func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/solvetrace/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
