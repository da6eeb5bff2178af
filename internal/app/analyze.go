package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solvetrace/solvetrace/internal/analyzer"
	"github.com/solvetrace/solvetrace/internal/engine"
	"github.com/solvetrace/solvetrace/internal/output"
)

var (
	analyzePeriod int
	analyzeFull   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <user-id>",
	Short: "Analyze one user's coding patterns",
	Long: `Run a full pattern analysis for a user over the trailing period:
aggregate their run and submit events, produce ratings and narrative
assessment, persist the result, and render a report.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzePeriod, "period", 30, "Analysis window in days (1-365)")
	analyzeCmd.Flags().BoolVar(&analyzeFull, "full", false, "Print the full narrative analysis")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDeps()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	eng := buildEngine(cfg, db)
	result := eng.Analyze(cmd.Context(), args[0], analyzePeriod)

	switch result.Outcome {
	case engine.Success:
	case engine.Rejected:
		return errors.New(result.Reason)
	default:
		return fmt.Errorf("analysis failed: %s", result.Reason)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"analysis":        result.Record,
			"summary":         result.Summary,
			"recommendations": result.Recommendations,
		})
	}

	fmt.Println(output.RenderAnalysis(result.Record, result.Summary, result.Recommendations))

	if analyzeFull {
		fmt.Println(output.Section("Full Narrative"))
		fmt.Println()
		fmt.Println(analyzer.NarrativeFallback(result.Profile))
	}

	return nil
}
