package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tiny-life/internal/config"
	"tiny-life/internal/core"
	"tiny-life/internal/metrics"
	"tiny-life/internal/render"
	"tiny-life/internal/session"
)

func newRunCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the grid in the terminal",
		Long: `run animates the grid in the terminal, one two-column glyph per cell.
--scale only sizes pixel output (snapshot and the window front-end); the
terminal always draws one glyph per cell.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	return cmd
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
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

	reg := prometheus.NewRegistry()
	term := render.NewTermTarget(out, cfg.Width, cfg.Height, cfg.Scale, cfg.Color)
	sess := session.New(grid, cfg.Session(),
		session.WithTarget(term, render.NewPainter(live, cfg.Scale)),
		session.WithLogger(log),
		session.WithMetrics(metrics.New(reg)),
		session.WithSeedSource(session.CryptoSeed),
		session.OnStep(func(r session.Report) {
			if err := term.Status("generation %d  population %d  seed %d", r.Generation, r.Population, r.Seed); err != nil {
				log.Warn("status line", "error", err)
			}
		}),
	)
	if err := begin(sess, cfg, lib); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			log.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdown)
		})
	}

	g.Go(func() error {
		// a finished run must also stop the metrics server
		defer stop()
		ticker := time.NewTicker(core.NewFixedStep(cfg.TPS).Interval())
		defer ticker.Stop()
		return sess.Run(ctx, ticker.C)
	})
	return g.Wait()
}
