// Package session drives a Life grid the way a display loop does: advance
// on every tick, redraw only the cells that changed, and reseed when the
// grid stalls, dies out or falls into a short cycle.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"

	"tiny-life/internal/core"
	"tiny-life/internal/logging"
	"tiny-life/internal/metrics"
	"tiny-life/internal/patterns"
	"tiny-life/internal/render"
)

// Config holds the reseed policy.
type Config struct {
	// AutoReseed reseeds from the seed source whenever a stall is seen.
	AutoReseed bool
	// HistoryDepth is how many generation fingerprints are kept for cycle
	// detection. Zero disables cycle detection.
	HistoryDepth int
	// MaxGenerations ends Run after this many steps. Zero runs forever.
	MaxGenerations uint64
}

// Report describes one step.
type Report struct {
	Step       uint64
	Generation uint64
	Population int
	Changed    bool
	Fills      int
	// Stall is empty, or the metrics reason that ended the lineage.
	Stall    string
	Reseeded bool
	Seed     uint64
	Finished bool
}

// Option configures a Session.
type Option func(*Session)

// WithTarget paints every generation onto t.
func WithTarget(t render.Target, p *render.Painter) Option {
	return func(s *Session) {
		s.target = t
		s.painter = p
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithMetrics records steps and reseeds on m.
func WithMetrics(m *metrics.Collectors) Option {
	return func(s *Session) { s.metrics = m }
}

// WithSeedSource sets where reseeds draw their seed.
func WithSeedSource(src SeedSource) Option {
	return func(s *Session) { s.seeds = src }
}

// OnStep registers a callback run after every step.
func OnStep(fn func(Report)) Option {
	return func(s *Session) { s.onStep = fn }
}

// Session owns the loop state around one grid. It is not safe for
// concurrent use.
type Session struct {
	grid    core.Automaton
	cfg     Config
	target  render.Target
	painter *render.Painter
	log     *slog.Logger
	metrics *metrics.Collectors
	seeds   SeedSource
	onStep  func(Report)

	seed    uint64
	steps   uint64
	paused  bool
	history []uint64
	filled  int
	cursor  int
	scratch []byte
}

// New wraps grid. Without options the session is headless, logs nothing
// and reseeds from the wall clock.
func New(grid core.Automaton, cfg Config, opts ...Option) *Session {
	s := &Session{
		grid:  grid,
		cfg:   cfg,
		log:   logging.Discard(),
		seeds: ClockSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.HistoryDepth > 0 {
		s.history = make([]uint64, cfg.HistoryDepth)
		s.scratch = make([]byte, grid.Width()*grid.Height())
	}
	return s
}

// Grid returns the driven grid.
func (s *Session) Grid() core.Automaton { return s.grid }

// Seed returns the seed of the current lineage.
func (s *Session) Seed() uint64 { return s.seed }

// Steps returns the number of steps taken.
func (s *Session) Steps() uint64 { return s.steps }

// Paused reports whether Run skips ticks.
func (s *Session) Paused() bool { return s.paused }

// Pause stops Run from stepping.
func (s *Session) Pause() { s.paused = true }

// Resume lets Run step again.
func (s *Session) Resume() { s.paused = false }

// TogglePause flips the paused state.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Start seeds the grid with seed and draws it.
func (s *Session) Start(seed uint64) error {
	s.grid.Seed(seed)
	s.seed = seed
	return s.Begin()
}

// Begin starts a new lineage from the grid's current cells, for grids
// filled by hand or from a pattern, and draws it.
func (s *Session) Begin() error {
	s.filled, s.cursor = 0, 0
	if len(s.history) > 0 {
		s.remember(s.fingerprint())
	}
	_, err := s.paint()
	return err
}

// StartPattern clears the grid, stamps p in its centre and draws it.
func (s *Session) StartPattern(p patterns.Pattern) error {
	s.grid.Clear()
	ox, oy := patterns.Center(p, s.grid.Width(), s.grid.Height())
	patterns.Place(s.grid, p, ox, oy)
	return s.Begin()
}

// Reseed draws a seed from the seed source and starts over. reason is
// recorded in metrics and logs.
func (s *Session) Reseed(reason string) error {
	seed, err := s.seeds()
	if err != nil {
		return fmt.Errorf("reseed: %w", err)
	}
	prev := s.grid.Generation()
	if err := s.Start(seed); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.Reseeds.WithLabelValues(reason).Inc()
	}
	s.log.Info("reseeded", "reason", reason, "seed", seed, "after_generations", prev)
	return nil
}

// Step advances one generation, draws the changes and applies the reseed
// policy. Paint errors are returned unchanged in the error chain.
func (s *Session) Step() (Report, error) {
	start := time.Now()
	changed := s.grid.Advance()
	s.steps++

	rep := Report{
		Step:       s.steps,
		Generation: s.grid.Generation(),
		Population: s.grid.Population(),
		Changed:    changed,
		Seed:       s.seed,
	}

	fills, err := s.paint()
	rep.Fills = fills
	if err != nil {
		s.log.Error("paint failed", "generation", rep.Generation, "error", err)
		return rep, fmt.Errorf("paint generation %d: %w", rep.Generation, err)
	}

	var fp uint64
	if len(s.history) > 0 {
		fp = s.fingerprint()
	}
	switch {
	case rep.Population == 0:
		rep.Stall = metrics.ReasonExtinct
	case !changed:
		rep.Stall = metrics.ReasonStill
	case s.seen(fp):
		rep.Stall = metrics.ReasonCycle
	}
	s.remember(fp)

	if s.metrics != nil {
		s.metrics.Generations.Inc()
		s.metrics.Population.Set(float64(rep.Population))
		s.metrics.ChangedCells.Observe(float64(fills))
		s.metrics.StepDuration.Observe(time.Since(start).Seconds())
	}

	if rep.Stall != "" {
		s.log.Debug("grid stalled", "reason", rep.Stall, "generation", rep.Generation, "population", rep.Population)
		if s.cfg.AutoReseed {
			if err := s.Reseed(rep.Stall); err != nil {
				return rep, err
			}
			rep.Reseeded = true
			rep.Seed = s.seed
		}
	}

	if s.cfg.MaxGenerations > 0 && s.steps >= s.cfg.MaxGenerations {
		rep.Finished = true
	}
	if s.onStep != nil {
		s.onStep(rep)
	}
	return rep, nil
}

// Run steps once per tick until ctx is done, ticks is closed or the
// generation limit is reached. Ticks arriving while paused are dropped.
func (s *Session) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if s.paused {
				continue
			}
			rep, err := s.Step()
			if err != nil {
				return err
			}
			if rep.Finished {
				s.log.Info("generation limit reached", "steps", rep.Step)
				return nil
			}
		}
	}
}

func (s *Session) paint() (int, error) {
	if s.target == nil || s.painter == nil {
		return 0, nil
	}
	return s.painter.Paint(s.grid, s.target)
}

func (s *Session) fingerprint() uint64 {
	w, h := s.grid.Width(), s.grid.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var b byte
			if s.grid.Point(x, y) {
				b = 1
			}
			s.scratch[y*w+x] = b
		}
	}
	return xxhash.Sum64(s.scratch)
}

// seen reports whether fp matches a remembered generation.
func (s *Session) seen(fp uint64) bool {
	for _, h := range s.history[:s.filled] {
		if h == fp {
			return true
		}
	}
	return false
}

func (s *Session) remember(fp uint64) {
	if len(s.history) == 0 {
		return
	}
	s.history[s.cursor] = fp
	s.cursor = (s.cursor + 1) % len(s.history)
	if s.filled < len(s.history) {
		s.filled++
	}
}
