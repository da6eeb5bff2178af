package app

import (
	"github.com/spf13/cobra"

	"github.com/solvetrace/solvetrace/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the analysis API over HTTP: trigger analyses, read past results,
and report service health.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDeps()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	eng := buildEngine(cfg, db)
	srv := server.New(eng, db, appVersion, logger)
	return srv.Run(addr)
}
