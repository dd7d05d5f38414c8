//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"tiny-life/internal/session"
)

const hudHeight = 18

// HUD draws a status strip with generation, population and seed. H
// toggles it.
type HUD struct {
	sess    *session.Session
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a visible HUD for sess.
func NewHUD(sess *session.Session) *HUD {
	return &HUD{sess: sess, visible: true}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the strip across the top of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	w := screen.Bounds().Dx()
	if h.panel == nil || h.panel.Bounds().Dx() != w {
		h.panel = ebiten.NewImage(w, hudHeight)
		h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
	text.Draw(screen, h.status(), basicfont.Face7x13, 4, 13, color.White)
}

func (h *HUD) status() string {
	g := h.sess.Grid()
	s := fmt.Sprintf("gen %d  pop %d  seed %d", g.Generation(), g.Population(), h.sess.Seed())
	if h.sess.Paused() {
		s += "  [paused]"
	}
	return s
}
