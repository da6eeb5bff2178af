package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/solvetrace/solvetrace/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file.jsonl>",
	Short: "Load coding events from a JSONL file",
	Long: `Read coding events from a JSONL file (one event object per line) and
insert them into the database. Events missing a user ID or event type are
rejected; events missing a timestamp get the current time.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	_, db, err := openDeps()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening events file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var inserted, rejected int
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var e store.CodingEvent
		if err := json.Unmarshal(raw, &e); err != nil {
			rejected++
			fmt.Fprintf(os.Stderr, "line %d: invalid JSON: %v\n", line, err)
			continue
		}
		if e.UserID == "" || e.EventType == "" {
			rejected++
			fmt.Fprintf(os.Stderr, "line %d: missing user_id or event_type\n", line)
			continue
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now()
		}

		if _, err := db.InsertEvent(&e); err != nil {
			return fmt.Errorf("inserting event at line %d: %w", line, err)
		}
		inserted++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading events file: %w", err)
	}

	fmt.Printf("Ingested %d events (%d rejected)\n", inserted, rejected)
	return nil
}
