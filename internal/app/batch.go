package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/solvetrace/solvetrace/internal/engine"
)

var (
	batchPeriod      int
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every recently active user",
	Long: `Find every user with run or submit activity in the trailing period and
run an analysis for each. Users are processed concurrently; one user's
failure does not stop the rest.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchPeriod, "period", 30, "Analysis window in days (1-365)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of users analyzed in parallel")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDeps()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	since := time.Now().AddDate(0, 0, -batchPeriod)
	users, err := db.ListActiveUsers(since)
	if err != nil {
		return fmt.Errorf("listing active users: %w", err)
	}
	if len(users) == 0 {
		fmt.Println("No active users found in the period.")
		return nil
	}

	eng := buildEngine(cfg, db)

	var g errgroup.Group
	g.SetLimit(batchConcurrency)

	results := make([]engine.Result, len(users))
	for i, userID := range users {
		g.Go(func() error {
			results[i] = eng.Analyze(cmd.Context(), userID, batchPeriod)
			return nil
		})
	}
	_ = g.Wait()

	var succeeded, skipped, failed int
	for i, r := range results {
		switch r.Outcome {
		case engine.Success:
			succeeded++
		case engine.Rejected:
			skipped++
			logger.Info("user skipped", zap.String("user_id", users[i]), zap.String("reason", r.Reason))
		default:
			failed++
			logger.Error("user analysis failed", zap.String("user_id", users[i]), zap.String("reason", r.Reason))
		}
	}

	fmt.Printf("Analyzed %d users: %d succeeded, %d skipped, %d failed\n",
		len(users), succeeded, skipped, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d analyses failed", failed, len(users))
	}
	return nil
}
