package app

import (
	"fmt"

	"github.com/solvetrace/solvetrace/internal/config"
	"github.com/solvetrace/solvetrace/internal/engine"
	"github.com/solvetrace/solvetrace/internal/insight"
	"github.com/solvetrace/solvetrace/internal/store"
)

// openDeps loads config and opens the database. The caller closes the DB.
func openDeps() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	return cfg, db, nil
}

// buildEngine wires the analysis engine from loaded dependencies.
func buildEngine(cfg *config.Config, db *store.DB) *engine.Engine {
	provider := insight.NewProvider(cfg.InsightConfig(), nil, logger)
	return engine.New(db, db, provider, logger)
}
