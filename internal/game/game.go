package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-calc/internal/calc"
	"github.com/iburimskiy/particle-calc/internal/config"
	"github.com/iburimskiy/particle-calc/internal/layout"
	"github.com/iburimskiy/particle-calc/internal/particles"
	"github.com/iburimskiy/particle-calc/internal/sound"
)

type game struct {
	calc    *calc.Calculator
	pad     layout.Pad
	field   *particles.Field
	tracker particles.Tracker
	palette config.Palette
	faces   faces
	audio   *sound.Player
	log     *slog.Logger

	// input edge detection
	hovered layout.Target
	pressed layout.Target

	// display slide-in
	tick         int
	shownDisplay string
	changedAt    int
}

func padMetrics() layout.Metrics {
	return layout.Metrics{
		Padding:       config.PanelPadding,
		Columns:       config.ButtonColumns,
		CellWidth:     config.ButtonWidth,
		CellHeight:    config.ButtonHeight,
		Gap:           config.ButtonGap,
		HeaderHeight:  config.HeaderHeight,
		DisplayHeight: config.DisplayHeight,
		SectionGap:    config.SectionGap,
	}
}

func newGame(cfg config.Config, dark bool, log *slog.Logger) (*game, error) {
	fs, err := loadFaces()
	if err != nil {
		return nil, err
	}

	g := &game{
		faces:   fs,
		log:     log,
		palette: config.PaletteFor(dark),
	}
	g.calc = calc.New(
		calc.WithLogger(log),
		calc.WithScientific(cfg.Scientific),
		calc.WithDarkTheme(dark),
		calc.WithThemeHook(func(dark bool) {
			g.palette = config.PaletteFor(dark)
			g.log.Info("Theme changed", "dark", dark)
		}),
	)

	m := padMetrics()
	panelX := (config.WindowWidth - (m.Width() + 2*m.Padding)) / 2
	g.pad = layout.NewPad(panelX, config.PanelY, m, calc.StandardButtons, calc.ScientificButtons, calc.Span)

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	g.field = particles.New(cfg.Particles, config.WindowWidth, config.WindowHeight, rng)

	if cfg.Sound {
		g.audio, err = newClicker(config.SampleRate)
		if err != nil {
			log.Warn("Sound disabled", "error", err)
		}
	}

	g.shownDisplay = g.calc.Display()
	return g, nil
}

func (g *game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	dirX, dirY := g.tracker.Observe(mouseX, mouseY)

	g.hovered = g.pad.Hit(float64(mouseX), float64(mouseY), g.calc.Scientific())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.hovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed.Kind != layout.TargetNone && g.pressed == g.hovered {
			g.activate(g.pressed)
		}
		g.pressed = layout.Target{}
	}

	g.field.Step(dirX, dirY)

	g.tick++
	if d := g.calc.Display(); d != g.shownDisplay {
		g.shownDisplay = d
		g.changedAt = g.tick
	}
	return nil
}

func (g *game) activate(t layout.Target) {
	switch t.Kind {
	case layout.TargetButton:
		g.calc.Press(t.Token)
		g.audio.Click()
	case layout.TargetModeToggle:
		on := g.calc.ToggleScientific()
		g.log.Info("Mode changed", "scientific", on)
	case layout.TargetThemeToggle:
		g.calc.ToggleTheme()
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Run opens the calculator window and blocks until it is closed.
func Run(cfg config.Config, dark bool, log *slog.Logger) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Calculator")

	g, err := newGame(cfg, dark, log)
	if err != nil {
		return err
	}
	defer g.audio.Close()

	log.Debug("Opening window", "scientific", cfg.Scientific, "dark", dark, "particles", cfg.Particles)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
