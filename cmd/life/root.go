package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tiny-life/internal/config"
	"tiny-life/internal/logging"
	"tiny-life/internal/patterns"
	"tiny-life/internal/session"
	"tiny-life/pkg/life"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life on a fixed-size grid",
		Long: `life runs the B3/S23 automaton on a bounded grid. The grid is seeded
from a 64-bit seed or a named pattern and reseeds itself when it stalls.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
	}
	cfg.Bind(root.PersistentFlags())
	cfg.BindLogging(root.PersistentFlags())

	root.AddCommand(newRunCmd(cfg), newSnapshotCmd(cfg), newPatternsCmd(cfg))
	return root
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
}

func newGrid(cfg *config.Config) (*life.Plane, error) {
	grid, err := life.New(cfg.Width, cfg.Height, cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("create grid: %w", err)
	}
	return grid, nil
}

func loadLibrary(cfg *config.Config) (*patterns.Library, error) {
	lib := patterns.Default()
	if cfg.PatternFile != "" {
		if err := lib.LoadFile(cfg.PatternFile); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// begin fills the grid from the configured pattern or seed and starts the
// session's first lineage.
func begin(s *session.Session, cfg *config.Config, lib *patterns.Library) error {
	if cfg.Pattern != "" {
		p, err := lib.Get(cfg.Pattern)
		if err != nil {
			return err
		}
		return s.StartPattern(p)
	}
	seed := cfg.Seed
	if cfg.ClockSeed {
		var err error
		if seed, err = session.ClockSeed(); err != nil {
			return err
		}
	}
	return s.Start(seed)
}
