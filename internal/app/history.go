package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solvetrace/solvetrace/internal/output"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history <user-id>",
	Short: "Show a user's past analyses",
	Long: `List a user's stored analyses, most recent first, with score trends
between consecutive runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of analyses to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, db, err := openDeps()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	records, err := db.AnalysisHistory(args[0], historyLimit)
	if err != nil {
		return fmt.Errorf("loading analysis history: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"analyses": records})
	}

	if len(records) == 0 {
		fmt.Println("No analyses found. Run 'solvetrace analyze' first.")
		return nil
	}

	fmt.Println(output.Section(fmt.Sprintf("Analysis History — %s", args[0])))
	fmt.Println()

	tbl := output.NewTable("Date", "Period", "Problems", "Runs", "Submits", "Approach", "Quality", "Trend", "Model")
	for i, r := range records {
		// Trend against the next row, which is the chronologically previous run.
		trend := ""
		if i+1 < len(records) {
			trend = output.TrendArrow(r.QualityScore - records[i+1].QualityScore)
		}
		tbl.AddRow(
			r.AnalysisDate.Format("2006-01-02"),
			fmt.Sprintf("%dd", r.PeriodDays),
			fmt.Sprintf("%d", r.TotalProblems),
			fmt.Sprintf("%d", r.TotalRuns),
			fmt.Sprintf("%d", r.TotalSubmits),
			fmt.Sprintf("%.1f", r.ApproachRating),
			fmt.Sprintf("%.1f", r.QualityScore),
			trend,
			r.AIModelUsed,
		)
	}
	tbl.Print()
	return nil
}
