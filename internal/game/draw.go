package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-calc/internal/config"
	"github.com/iburimskiy/particle-calc/internal/layout"
)

func (g *game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawParticles(screen)

	scientific := g.calc.Scientific()
	fillRect(screen, g.pad.Panel(scientific), config.WithAlpha(g.palette.Panel, config.PanelOpacity))

	g.drawHeader(screen)
	g.drawDisplay(screen)

	for _, cell := range g.pad.Standard {
		g.drawButton(screen, cell)
	}
	if scientific {
		for _, cell := range g.pad.Scientific {
			g.drawButton(screen, cell)
		}
	}
}

func (g *game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.WindowHeight; y++ {
		ratio := float64(y) / float64(config.WindowHeight)
		clr := config.Lerp(g.palette.BackgroundTop, g.palette.BackgroundBottom, ratio)
		vector.StrokeLine(screen, 0, float32(y), config.WindowWidth, float32(y), 1, clr, false)
	}
}

func (g *game) drawParticles(screen *ebiten.Image) {
	pulse := 1 + g.audio.Energy()*config.ClickPulseGain
	clr := config.WithAlpha(g.palette.Particle, config.ParticleOpacity)
	for _, p := range g.field.Particles {
		r := p.Size / 2 * pulse
		vector.DrawFilledCircle(screen, float32(p.X+p.Size/2), float32(p.Y+p.Size/2), float32(r), clr, true)
	}
}

func (g *game) drawHeader(screen *ebiten.Image) {
	mode := g.pad.ModeToggle
	label, bg := "Standard", g.palette.ModeStandard
	if g.calc.Scientific() {
		label, bg = "Scientific", g.palette.ModeScientific
	}
	if g.hovered.Kind == layout.TargetModeToggle {
		bg = config.Lerp(bg, color.RGBA{A: 255}, 0.15)
	}
	fillRect(screen, mode, bg)
	drawText(screen, label, g.faces.label, mode.X+mode.W/2, mode.Y+mode.H/2, text.AlignCenter, color.White)

	theme := g.pad.ThemeToggle
	if g.hovered.Kind == layout.TargetThemeToggle {
		fillRect(screen, theme, config.WithAlpha(g.palette.ButtonHover, 0.5))
	}
	cx, cy := float32(theme.X+theme.W/2), float32(theme.Y+theme.H/2)
	if g.calc.Dark() {
		drawSun(screen, cx, cy, g.palette.Icon)
	} else {
		drawMoon(screen, cx, cy, g.palette.Icon, g.palette.Panel)
	}
}

func drawSun(dst *ebiten.Image, cx, cy float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, 5, clr, true)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		sin, cos := float32(math.Sin(a)), float32(math.Cos(a))
		vector.StrokeLine(dst, cx+cos*8, cy+sin*8, cx+cos*11, cy+sin*11, 2, clr, true)
	}
}

func drawMoon(dst *ebiten.Image, cx, cy float32, clr, bg color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, 9, clr, true)
	vector.DrawFilledCircle(dst, cx+5, cy-4, 8, bg, true)
}

// drawDisplay slides a changed display in from below while fading it in.
func (g *game) drawDisplay(screen *ebiten.Image) {
	r := g.pad.Display
	fillRect(screen, r, g.palette.Display)

	progress := clamp01(float64(g.tick-g.changedAt) / config.DisplaySlideTicks)
	offset := config.DisplaySlideDist * (1 - progress)

	clip := screen.SubImage(image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))).(*ebiten.Image)
	clr := config.WithAlpha(g.palette.DisplayText, progress)
	drawText(clip, g.shownDisplay, g.faces.display, r.X+r.W-20, r.Y+r.H/2+offset, text.AlignEnd, clr)
}

func (g *game) drawButton(screen *ebiten.Image, cell layout.Cell) {
	target := layout.Target{Kind: layout.TargetButton, Token: cell.Token}

	bg := g.palette.Button
	switch {
	case g.pressed == target && g.hovered == target:
		bg = g.palette.ButtonPressed
	case g.hovered == target:
		bg = g.palette.ButtonHover
	}
	fillRect(screen, cell.Rect, bg)

	if g.calc.LastToken() == cell.Token {
		ring := cell.Rect
		ring.X, ring.Y, ring.W, ring.H = ring.X-2, ring.Y-2, ring.W+4, ring.H+4
		strokeRect(screen, ring, 2, g.palette.Ring)
	}

	r := cell.Rect
	drawText(screen, cell.Token, g.faces.button, r.X+r.W/2, r.Y+r.H/2, text.AlignCenter, g.palette.ButtonText)
}
