// Package cmd wires the daybook commands together.
package cmd

import (
	"fmt"
	"os"

	"daybook/internal/cli"
	"daybook/internal/config"
	"daybook/internal/model"
	"daybook/internal/seed"
	"daybook/internal/store"

	"github.com/spf13/cobra"
)

var flagDB string

var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "Personal day planner and finance ledger",
	Long:  "Plan your day and track your money: tasks, transactions, and auto-allocated funds, all in one local document.",
	RunE:  runDay,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Document database path (default: XDG data dir)")
}

// openStore loads config, opens the document store, and seeds the
// default categories and funds on first use.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	cli.SetColorEnabled(cfg.Appearance.Color)

	path := flagDB
	if path == "" {
		path = config.DataPath(cfg)
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, cfg, fmt.Errorf("opening store at %s: %w", path, err)
	}

	if err := ensureSeeded(st); err != nil {
		_ = st.Close()
		return nil, cfg, err
	}
	return st, cfg, nil
}

func ensureSeeded(st *store.Store) error {
	return st.Update("seed.defaults", func(doc model.Document) (model.Document, error) {
		d, changed := seed.Apply(doc)
		if !changed {
			return d, store.ErrNoChange
		}
		return d, nil
	})
}
