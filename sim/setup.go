package sim

import (
	"fmt"
	"log/slog"

	"github.com/rustyeddy/lifesim/config"
	"github.com/rustyeddy/lifesim/game"
	"github.com/rustyeddy/lifesim/journal"
	"github.com/rustyeddy/lifesim/refdata"
)

// OpenJournal creates the journal the config asks for.
func OpenJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "csv":
		return journal.NewCSV(cfg.TurnsFile, cfg.CashFlowFile)
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	case "none", "":
		return journal.Noop{}, nil
	}
	return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
}

func NewPolicy(cfg config.PolicyConfig) (Policy, error) {
	switch cfg.Type {
	case "saver":
		return Saver{KeepCash: cfg.KeepCash}, nil
	case "none", "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown policy %q", cfg.Type)
}

// NewRunner wires a game, its journal and policy from cfg. The caller
// closes Runner.Journal.
func NewRunner(cfg *config.Config, log *slog.Logger) (*Runner, error) {
	data, err := refdata.Load(cfg.Data.Path)
	if err != nil {
		return nil, err
	}

	opts := cfg.GameOptions()
	opts.Logger = log
	g, err := game.New(data, opts)
	if err != nil {
		return nil, err
	}

	pol, err := NewPolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	j, err := OpenJournal(cfg.Journal)
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}

	return &Runner{
		Game:     g,
		Journal:  j,
		Policy:   pol,
		MaxTurns: cfg.Simulation.MaxTurns,
	}, nil
}
