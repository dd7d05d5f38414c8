//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"tiny-life/internal/app"
	"tiny-life/internal/config"
	"tiny-life/internal/logging"
	"tiny-life/internal/patterns"
	"tiny-life/internal/render"
	"tiny-life/internal/session"
	"tiny-life/pkg/life"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(pflag.CommandLine)
	cfg.BindLogging(pflag.CommandLine)
	pflag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatal(err)
	}
	grid, err := life.New(cfg.Width, cfg.Height, cfg.Capacity)
	if err != nil {
		log.Fatal(err)
	}
	live, err := cfg.Live()
	if err != nil {
		log.Fatal(err)
	}

	painter := render.NewPainter(live, cfg.Scale)
	bounds := painter.Bounds(grid)
	canvas := render.NewEbitenTarget(bounds.Dx(), bounds.Dy())
	sess := session.New(grid,
		cfg.Session(),
		session.WithTarget(canvas, painter),
		session.WithLogger(logger),
		session.WithSeedSource(session.ClockSeed),
	)

	seed := cfg.Seed
	if cfg.ClockSeed {
		if seed, err = session.ClockSeed(); err != nil {
			log.Fatal(err)
		}
	}
	if err := begin(sess, cfg, seed); err != nil {
		log.Fatal(err)
	}

	game := app.New(sess, canvas, cfg.TPS, seed)

	ebiten.SetWindowTitle("tiny-life")
	ebiten.SetWindowSize(bounds.Dx(), bounds.Dy())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func begin(sess *session.Session, cfg *config.Config, seed uint64) error {
	if cfg.Pattern == "" {
		return sess.Start(seed)
	}
	lib := patterns.Default()
	if cfg.PatternFile != "" {
		if err := lib.LoadFile(cfg.PatternFile); err != nil {
			return err
		}
	}
	p, err := lib.Get(cfg.Pattern)
	if err != nil {
		return err
	}
	return sess.StartPattern(p)
}
