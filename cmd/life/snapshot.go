package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tiny-life/internal/config"
	"tiny-life/internal/render"
	"tiny-life/internal/session"
)

func newSnapshotCmd(cfg *config.Config) *cobra.Command {
	var (
		generations int
		out         string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Advance the grid and write it as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return snapshot(cfg, generations, out)
		},
	}
	cmd.Flags().IntVarP(&generations, "generations", "n", 100, "generations to advance before writing")
	cmd.Flags().StringVarP(&out, "out", "o", "life.png", "output file")
	return cmd
}

func snapshot(cfg *config.Config, generations int, path string) error {
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	grid, err := newGrid(cfg)
	if err != nil {
		return err
	}
	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}
	live, err := cfg.Live()
	if err != nil {
		return err
	}

	// reseeds follow the configured seed so snapshots are reproducible
	sess := session.New(grid, cfg.Session(),
		session.WithLogger(log),
		session.WithSeedSource(session.SequenceSeed(cfg.Seed+1)),
	)
	if err := begin(sess, cfg, lib); err != nil {
		return err
	}
	for i := 0; i < generations; i++ {
		if _, err := sess.Step(); err != nil {
			return err
		}
	}

	painter := render.NewPainter(live, cfg.Scale)
	b := painter.Bounds(grid)
	target := render.NewImageTarget(b.Dx(), b.Dy())
	if _, err := painter.PaintAll(grid, target); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := target.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	log.Info("snapshot written", "path", path, "generation", grid.Generation(), "population", grid.Population())
	return nil
}
