//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tiny-life/internal/core"
	"tiny-life/internal/metrics"
	"tiny-life/internal/render"
	"tiny-life/internal/session"
	"tiny-life/internal/ui"
)

// Game adapts a session to the ebiten.Game interface. Update runs at the
// ebiten tick rate; generations advance at their own fixed rate.
type Game struct {
	sess   *session.Session
	canvas *render.EbitenTarget
	hud    *ui.HUD
	step   *core.FixedStep

	tickOnce bool
	seed     uint64
}

// New constructs a Game drawing sess onto canvas at tps generations per
// second. R restarts from seed.
func New(sess *session.Session, canvas *render.EbitenTarget, tps int, seed uint64) *Game {
	return &Game{
		sess:   sess,
		canvas: canvas,
		hud:    ui.NewHUD(sess),
		step:   core.NewFixedStep(tps),
		seed:   seed,
	}
}

// Update handles input and advances the grid when a generation is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.sess.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sess.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sess.Start(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.sess.Reseed(metrics.ReasonManual); err != nil {
			return err
		}
	}
	g.hud.Update()

	due := g.step.Due()
	if g.sess.Paused() {
		due = 0
	}
	if g.tickOnce {
		due = max(due, 1)
		g.tickOnce = false
	}
	for ; due > 0; due-- {
		if _, err := g.sess.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Draw blits the persistent canvas and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Blit(screen)
	g.hud.Draw(screen)
}

// Layout returns the canvas size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Size()
}
