package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"arenasurvivor/sim"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

const (
	hudMargin    = 12.0
	hudBarWidth  = 220.0
	hudBarHeight = 14.0
	hudLine      = 16.0
)

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

// drawTextCentered draws s centered horizontally on x.
func drawTextCentered(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	w, _ := text.Measure(s, hudFace, hudLine)
	drawText(screen, s, x-w/2, y, clr)
}

// drawBar draws a labelled progress bar with its fill graded by clr.
func drawBar(screen *ebiten.Image, x, y, w, h, frac float64, clr color.Color, label string) {
	frac = max(0, min(frac, 1))
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorBarBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*frac), float32(h), clr, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorText, false)
	if label != "" {
		drawText(screen, label, x+4, y+1, colorText)
	}
}

// objectiveText is the objective bar caption for the director's stage.
func objectiveText(d *sim.Director) string {
	switch d.Objective() {
	case sim.ObjectiveClearBasics:
		return fmt.Sprintf("Defeat Basic Enemies: %d/%d", d.Kills(), d.KillThreshold())
	case sim.ObjectiveDefeatBoss:
		return "Defeat the Final Boss"
	default:
		return "Objective Complete"
	}
}

// renderHUD draws the player health, objective, boss bar, counters and the
// optional debug readouts.
func renderHUD(screen *ebiten.Image, s *sim.Session, debug DebugState, width float64) {
	p := s.Player()
	d := s.Director()

	x, y := hudMargin, hudMargin
	healthFrac := float64(p.Health()) / float64(max(p.MaxHealth(), 1))
	drawBar(screen, x, y, hudBarWidth, hudBarHeight, healthFrac, healthColor(healthFrac),
		fmt.Sprintf("HP %d/%d", p.Health(), p.MaxHealth()))

	y += hudBarHeight + 6
	drawBar(screen, x, y, hudBarWidth, hudBarHeight, d.Progress(), color.RGBA{90, 140, 220, 255}, objectiveText(d))

	y += hudBarHeight + 8
	drawText(screen, fmt.Sprintf("Kills: %d  Enemies: %d", d.Kills(), len(s.Enemies())), x, y, colorText)

	if boss := s.Boss(); boss != nil {
		bw := width * 0.5
		bx := (width - bw) / 2
		drawBar(screen, bx, hudMargin, bw, hudBarHeight+4, boss.HealthFraction(), ColorFor(RoleBoss),
			fmt.Sprintf("Final Boss %d/%d", boss.Health(), boss.MaxHealth()))
	}

	if debug.ShowCoords {
		y += hudLine
		pos := p.Position()
		drawText(screen, fmt.Sprintf("X: %.1f  Y: %.1f  %s", pos.X, pos.Y, p.State()), x, y, colorText)
	}
	if debug.ShowFPS {
		y += hudLine
		drawText(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), x, y, colorText)
	}
}

// renderOverlay dims the screen and prints a centered title and hint.
func renderOverlay(screen *ebiten.Image, title, hint string, width, height float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), colorOverlay, false)
	drawTextCentered(screen, title, width/2, height/2-hudLine, colorText)
	if hint != "" {
		drawTextCentered(screen, hint, width/2, height/2+hudLine, colorText)
	}
}
